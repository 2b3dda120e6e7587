package domain

import (
	"math/rand"
)

// RandomSource 随机源接口，注入引擎以便固定种子复现与并行分流
type RandomSource interface {
	// Float64 返回 [0,1) 均匀分布抽样
	Float64() float64
	// NormFloat64 返回标准正态分布抽样
	NormFloat64() float64
}

// SeededSource 基于 math/rand 的可复现随机源
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource 创建固定种子随机源
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Float64() float64 { return s.rng.Float64() }

func (s *SeededSource) NormFloat64() float64 { return s.rng.NormFloat64() }

// shardSeed 按固定步长偏移基准种子，为第 shard 个分片派生独立随机流
func shardSeed(baseSeed int64, shard int) int64 {
	return baseSeed + int64(shard)*1000
}
