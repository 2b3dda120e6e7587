package domain

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Trial 单次试验结果，产出后立即并入结果集
type Trial struct {
	Success  bool
	OilPrice float64
	NPV      float64
}

// ResultSet 按试验顺序排列的 NPV 序列
type ResultSet []float64

// Engine 蒙特卡洛模拟引擎。无跨 Run 状态，仅随机源内部状态单调推进。
type Engine struct {
	params SimulationParameters
	rng    RandomSource
}

// NewEngine 创建模拟引擎，参数在构造期一次性校验
func NewEngine(params SimulationParameters, rng RandomSource) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSeededSource(time.Now().UnixNano())
	}
	return &Engine{params: params, rng: rng}, nil
}

// Parameters 返回引擎持有的场景参数
func (e *Engine) Parameters() SimulationParameters {
	return e.params
}

// SampleSuccess 伯努利抽样：均匀抽样小于成功概率即为打井成功
func (e *Engine) SampleSuccess() bool {
	return e.rng.Float64() < e.params.SuccessProbability
}

// SampleOilPrice 正态抽样实现油价，均值为预期油价，标准差为预期油价乘以波动率。
// 默认不截断，负价与零价原样返回。
func (e *Engine) SampleOilPrice() float64 {
	sigma := e.params.ExpectedOilPrice * e.params.PriceFluctuation
	price := e.params.ExpectedOilPrice + sigma*e.rng.NormFloat64()
	if e.params.ClampNegativePrice && price < 0 {
		price = 0
	}
	return price
}

// ComputeNPV 单期折现 NPV。失败井无收入路径，恒等于负的初始投资。
func (e *Engine) ComputeNPV(success bool, oilPrice float64) float64 {
	if !success {
		return -e.params.InitialInvestment
	}
	revenue := oilPrice * e.params.ProductionVolume
	totalCost := e.params.InitialInvestment + e.params.DrillingCost
	cashFlow := revenue - totalCost
	return cashFlow / (1 + e.params.DiscountRate)
}

// NextTrial 抽取一次独立试验。成功与油价各消耗一次随机抽样，失败时油价照常抽取。
func (e *Engine) NextTrial() Trial {
	success := e.SampleSuccess()
	price := e.SampleOilPrice()
	return Trial{
		Success:  success,
		OilPrice: price,
		NPV:      e.ComputeNPV(success, price),
	}
}

// Run 顺序执行 numSimulations 次独立试验并归约统计量。
// numSimulations 小于 1 时在消耗任何随机数之前快速失败。
func (e *Engine) Run(ctx context.Context, numSimulations int) (ResultSet, *Statistics, error) {
	if numSimulations < 1 {
		return nil, nil, fmt.Errorf("%w: num_simulations must be >= 1, got %d", ErrInvalidConfiguration, numSimulations)
	}

	results := make(ResultSet, 0, numSimulations)
	for i := 0; i < numSimulations; i++ {
		trial := e.NextTrial()
		results = append(results, trial.NPV)
	}

	stats, err := Reduce(results)
	if err != nil {
		return nil, nil, err
	}
	return results, stats, nil
}

// RunParallel 将试验分片到 workers 个协程并行执行。
// 各分片持有由 baseSeed 派生的独立随机源，最终统计量在合并后的完整结果集上归约。
// workers 小于等于 1 时退化为顺序执行。
func RunParallel(ctx context.Context, params SimulationParameters, baseSeed int64, numSimulations, workers int) (ResultSet, *Statistics, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if numSimulations < 1 {
		return nil, nil, fmt.Errorf("%w: num_simulations must be >= 1, got %d", ErrInvalidConfiguration, numSimulations)
	}
	if workers <= 1 {
		engine, err := NewEngine(params, NewSeededSource(baseSeed))
		if err != nil {
			return nil, nil, err
		}
		return engine.Run(ctx, numSimulations)
	}
	if workers > numSimulations {
		workers = numSimulations
	}

	results := make(ResultSet, numSimulations)
	g, _ := errgroup.WithContext(ctx)

	chunk := numSimulations / workers
	remainder := numSimulations % workers
	offset := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < remainder {
			size++
		}
		lo, hi := offset, offset+size
		offset = hi

		shard := w
		g.Go(func() error {
			engine, err := NewEngine(params, NewSeededSource(shardSeed(baseSeed, shard)))
			if err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				results[i] = engine.NextTrial().NPV
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats, err := Reduce(results)
	if err != nil {
		return nil, nil, err
	}
	return results, stats, nil
}
