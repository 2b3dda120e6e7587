package domain

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Statistics 一次模拟运行的描述性统计量
type Statistics struct {
	// MeanNPV NPV 均值（百万美元）
	MeanNPV float64
	// StdNPV NPV 总体标准差
	StdNPV float64
	// MinNPV NPV 最小值
	MinNPV float64
	// MaxNPV NPV 最大值
	MaxNPV float64
	// ProbabilityPositiveNPV NPV 严格大于 0 的试验占比，NPV 等于 0 不计入
	ProbabilityPositiveNPV float64
}

// Reduce 将结果集归约为统计量。空结果集无法归约，由调用方的参数校验保证不会出现。
func Reduce(results ResultSet) (*Statistics, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: cannot reduce statistics", ErrEmptyResultSet)
	}

	data := stats.Float64Data(results)

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("reduce mean: %w", err)
	}
	std, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return nil, fmt.Errorf("reduce std: %w", err)
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, fmt.Errorf("reduce min: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, fmt.Errorf("reduce max: %w", err)
	}

	positive := 0
	for _, npv := range results {
		if npv > 0 {
			positive++
		}
	}

	return &Statistics{
		MeanNPV:                mean,
		StdNPV:                 std,
		MinNPV:                 min,
		MaxNPV:                 max,
		ProbabilityPositiveNPV: float64(positive) / float64(len(results)),
	}, nil
}
