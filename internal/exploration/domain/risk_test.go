package domain

import (
	"context"
	"errors"
	"testing"
)

func TestComputeRiskProfile_RejectsSmallSamples(t *testing.T) {
	results := make(ResultSet, 99)
	if _, err := ComputeRiskProfile(results); !errors.Is(err, ErrInsufficientSamples) {
		t.Errorf("expected ErrInsufficientSamples for 99 samples, got %v", err)
	}
}

func TestComputeRiskProfile_KnownQuantiles(t *testing.T) {
	// NPV 取 -500..499，排序后分位数可手工推出
	results := make(ResultSet, 1000)
	for i := range results {
		results[i] = float64(i) - 500
	}

	profile, err := ComputeRiskProfile(results)
	if err != nil {
		t.Fatalf("ComputeRiskProfile: %v", err)
	}

	if got := profile.VaR95.InexactFloat64(); got != 450 {
		t.Errorf("VaR95 = %v, want 450", got)
	}
	if got := profile.VaR99.InexactFloat64(); got != 490 {
		t.Errorf("VaR99 = %v, want 490", got)
	}
	// ES 为超出 VaR 部分的平均损失
	if got := profile.ES95.InexactFloat64(); got != 475.5 {
		t.Errorf("ES95 = %v, want 475.5", got)
	}
	if got := profile.ES99.InexactFloat64(); got != 495.5 {
		t.Errorf("ES99 = %v, want 495.5", got)
	}
}

func TestComputeRiskProfile_TailOrdering(t *testing.T) {
	engine, err := NewEngine(DefaultParameters(), NewSeededSource(21))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	results, _, err := engine.Run(context.Background(), 5000)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	profile, err := ComputeRiskProfile(results)
	if err != nil {
		t.Fatalf("ComputeRiskProfile: %v", err)
	}

	if profile.ES95.LessThan(profile.VaR95) {
		t.Errorf("ES95 %s must be >= VaR95 %s", profile.ES95, profile.VaR95)
	}
	if profile.ES99.LessThan(profile.VaR99) {
		t.Errorf("ES99 %s must be >= VaR99 %s", profile.ES99, profile.VaR99)
	}
	if profile.VaR99.LessThan(profile.VaR95) {
		t.Errorf("VaR99 %s must be >= VaR95 %s", profile.VaR99, profile.VaR95)
	}
}
