// Package domain 石油勘探投资模拟的领域模型。
// 通过蒙特卡洛方法反复抽样钻探结果与实现油价，将单期折现 NPV 归约为描述性统计量。
package domain

import "fmt"

// DefaultDiscountRate 单期折现模型的默认年化折现率
const DefaultDiscountRate = 0.10

// SimulationParameters 模拟场景参数，构造后不再变更
type SimulationParameters struct {
	// InitialInvestment 初始投资（百万美元）
	InitialInvestment float64
	// DrillingCost 单井钻探成本（百万美元）
	DrillingCost float64
	// ExpectedOilPrice 预期油价（美元/桶）
	ExpectedOilPrice float64
	// SuccessProbability 钻探成功概率 [0,1]
	SuccessProbability float64
	// ProductionVolume 成功井产量（百万桶）
	ProductionVolume float64
	// PriceFluctuation 油价相对波动率 [0,1]
	PriceFluctuation float64
	// DiscountRate 折现率
	DiscountRate float64
	// ClampNegativePrice 将抽样得到的负油价截断为 0。
	// 源模型不做截断，负价属于可接受的输入域行为；该开关是显式声明的偏离项，默认关闭。
	ClampNegativePrice bool
}

// DefaultParameters 返回基准勘探场景
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		InitialInvestment:  20.0,
		DrillingCost:       10.0,
		ExpectedOilPrice:   70.0,
		SuccessProbability: 0.60,
		ProductionVolume:   1.0,
		PriceFluctuation:   0.05,
		DiscountRate:       DefaultDiscountRate,
	}
}

// Validate 校验参数合法性，返回首个违反约束的字段
func (p SimulationParameters) Validate() error {
	if p.SuccessProbability < 0 || p.SuccessProbability > 1 {
		return fmt.Errorf("%w: success_probability must be within [0,1], got %v", ErrInvalidConfiguration, p.SuccessProbability)
	}
	if p.PriceFluctuation < 0 || p.PriceFluctuation > 1 {
		return fmt.Errorf("%w: price_fluctuation must be within [0,1], got %v", ErrInvalidConfiguration, p.PriceFluctuation)
	}
	if p.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial_investment must be >= 0, got %v", ErrInvalidConfiguration, p.InitialInvestment)
	}
	if p.DrillingCost < 0 {
		return fmt.Errorf("%w: drilling_cost must be >= 0, got %v", ErrInvalidConfiguration, p.DrillingCost)
	}
	if p.ExpectedOilPrice < 0 {
		return fmt.Errorf("%w: expected_oil_price must be >= 0, got %v", ErrInvalidConfiguration, p.ExpectedOilPrice)
	}
	if p.ProductionVolume < 0 {
		return fmt.Errorf("%w: production_volume must be >= 0, got %v", ErrInvalidConfiguration, p.ProductionVolume)
	}
	if p.DiscountRate <= -1 {
		return fmt.Errorf("%w: discount_rate must be > -1, got %v", ErrInvalidConfiguration, p.DiscountRate)
	}
	return nil
}
