package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// 尾部分位数计算至少需要的样本量，低于该值时 1% 分位索引退化为 0
const minRiskSamples = 100

// RiskProfile NPV 分布的尾部风险指标
// VaR 与 ES 均以正数表示损失金额
type RiskProfile struct {
	VaR95 decimal.Decimal // 95% 置信度在险价值
	VaR99 decimal.Decimal // 99% 置信度在险价值
	ES95  decimal.Decimal // 95% 置信度预期亏损
	ES99  decimal.Decimal // 99% 置信度预期亏损
}

// ComputeRiskProfile 从结果集计算尾部风险指标。
// 取排序后 NPV 的左尾分位数为 VaR，尾部均值为 ES。
func ComputeRiskProfile(results ResultSet) (*RiskProfile, error) {
	n := len(results)
	if n < minRiskSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, got %d", ErrInsufficientSamples, minRiskSamples, n)
	}

	pnl := make([]float64, n)
	copy(pnl, results)
	sort.Float64s(pnl)

	idx95 := int(float64(n) * 0.05)
	idx99 := int(float64(n) * 0.01)

	var95 := -pnl[idx95]
	var99 := -pnl[idx99]

	var sumTail95, sumTail99 float64
	for i := 0; i < idx95; i++ {
		sumTail95 += pnl[i]
	}
	for i := 0; i < idx99; i++ {
		sumTail99 += pnl[i]
	}

	es95 := -sumTail95 / float64(idx95)
	es99 := -sumTail99 / float64(idx99)

	return &RiskProfile{
		VaR95: decimal.NewFromFloat(var95),
		VaR99: decimal.NewFromFloat(var99),
		ES95:  decimal.NewFromFloat(es95),
		ES99:  decimal.NewFromFloat(es99),
	}, nil
}
