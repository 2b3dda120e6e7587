package application

// RunAnalysisCommand 发起一次投资可行性分析的全部输入
type RunAnalysisCommand struct {
	InitialInvestment  float64 `json:"initial_investment"`
	DrillingCost       float64 `json:"drilling_cost"`
	ExpectedOilPrice   float64 `json:"expected_oil_price"`
	SuccessProbability float64 `json:"success_probability"`
	ProductionVolume   float64 `json:"production_volume"`
	PriceFluctuation   float64 `json:"price_fluctuation"`
	DiscountRate       float64 `json:"discount_rate"`
	ClampNegativePrice bool    `json:"clamp_negative_price"`

	NumSimulations int   `json:"num_simulations"`
	Seed           int64 `json:"seed"`
	Workers        int   `json:"workers"`
}

// AnalysisReportDTO 分析结果报告
type AnalysisReportDTO struct {
	NumSimulations int   `json:"num_simulations"`
	Seed           int64 `json:"seed"`

	MeanNPV                float64 `json:"mean_npv"`
	StdNPV                 float64 `json:"std_npv"`
	MinNPV                 float64 `json:"min_npv"`
	MaxNPV                 float64 `json:"max_npv"`
	ProbabilityPositiveNPV float64 `json:"probability_positive_npv"`

	// 尾部风险指标，两位小数字符串；样本量不足时为空
	VaR95 string `json:"var_95,omitempty"`
	VaR99 string `json:"var_99,omitempty"`
	ES95  string `json:"es_95,omitempty"`
	ES99  string `json:"es_99,omitempty"`

	ElapsedMs int64 `json:"elapsed_ms"`
}
