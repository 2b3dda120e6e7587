package domain

import "errors"

var (
	// ErrInvalidConfiguration 配置参数非法（概率越界、负成本、模拟次数小于 1 等）
	ErrInvalidConfiguration = errors.New("invalid simulation configuration")
	// ErrInsufficientSamples 样本量不足以计算尾部风险分位数
	ErrInsufficientSamples = errors.New("insufficient samples for tail risk quantiles")
	// ErrEmptyResultSet 结果集为空，无法归约统计量
	ErrEmptyResultSet = errors.New("empty result set")
)
