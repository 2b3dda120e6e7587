// Package application 勘探投资分析的应用服务层
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/wyfcoding/oilexploration/internal/exploration/domain"
)

// AnalysisService 投资可行性分析服务
type AnalysisService struct {
	logger *slog.Logger
}

// NewAnalysisService 创建分析服务实例
func NewAnalysisService(logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{logger: logger}
}

// RunAnalysis 执行一次完整的蒙特卡洛分析。
// 参数校验失败在抽取任何随机数之前返回，不做部分计算。
func (s *AnalysisService) RunAnalysis(ctx context.Context, cmd RunAnalysisCommand) (*AnalysisReportDTO, error) {
	params := domain.SimulationParameters{
		InitialInvestment:  cmd.InitialInvestment,
		DrillingCost:       cmd.DrillingCost,
		ExpectedOilPrice:   cmd.ExpectedOilPrice,
		SuccessProbability: cmd.SuccessProbability,
		ProductionVolume:   cmd.ProductionVolume,
		PriceFluctuation:   cmd.PriceFluctuation,
		DiscountRate:       cmd.DiscountRate,
		ClampNegativePrice: cmd.ClampNegativePrice,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.logger.InfoContext(ctx, "starting analysis",
		"num_simulations", cmd.NumSimulations,
		"seed", seed,
		"workers", cmd.Workers,
		"success_probability", params.SuccessProbability,
		"expected_oil_price", params.ExpectedOilPrice,
	)

	start := time.Now()
	results, statistics, err := domain.RunParallel(ctx, params, seed, cmd.NumSimulations, cmd.Workers)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	report := &AnalysisReportDTO{
		NumSimulations:         len(results),
		Seed:                   seed,
		MeanNPV:                statistics.MeanNPV,
		StdNPV:                 statistics.StdNPV,
		MinNPV:                 statistics.MinNPV,
		MaxNPV:                 statistics.MaxNPV,
		ProbabilityPositiveNPV: statistics.ProbabilityPositiveNPV,
		ElapsedMs:              elapsed.Milliseconds(),
	}

	// 尾部风险为补充指标，样本量不足时跳过而不判失败
	if profile, err := domain.ComputeRiskProfile(results); err == nil {
		report.VaR95 = profile.VaR95.StringFixed(2)
		report.VaR99 = profile.VaR99.StringFixed(2)
		report.ES95 = profile.ES95.StringFixed(2)
		report.ES99 = profile.ES99.StringFixed(2)
	}

	s.logger.InfoContext(ctx, "analysis finished",
		"num_simulations", len(results),
		"mean_npv", statistics.MeanNPV,
		"probability_positive_npv", statistics.ProbabilityPositiveNPV,
		"duration", elapsed,
	)

	return report, nil
}
