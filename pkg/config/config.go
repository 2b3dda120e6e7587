// Package config 提供环境变量配置加载与默认值管理。
// 不读取任何配置文件，所有覆盖均通过 OILX_ 前缀的环境变量完成。
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wyfcoding/oilexploration/pkg/logging"
)

// Config 应用配置
type Config struct {
	// ServiceName 服务名称
	ServiceName string `mapstructure:"service_name"`
	// Simulation 模拟场景配置
	Simulation SimulationConfig `mapstructure:"simulation"`
	// Logger 日志配置
	Logger logging.Config `mapstructure:"logger"`
}

// SimulationConfig 模拟场景配置
type SimulationConfig struct {
	// NumSimulations 模拟次数
	NumSimulations int `mapstructure:"num_simulations"`
	// Seed 随机种子，0 表示取当前时间
	Seed int64 `mapstructure:"seed"`
	// Workers 并行分片数，1 表示顺序执行
	Workers int `mapstructure:"workers"`
	// InitialInvestment 初始投资（百万美元）
	InitialInvestment float64 `mapstructure:"initial_investment"`
	// DrillingCost 钻探成本（百万美元）
	DrillingCost float64 `mapstructure:"drilling_cost"`
	// ExpectedOilPrice 预期油价（美元/桶）
	ExpectedOilPrice float64 `mapstructure:"expected_oil_price"`
	// SuccessProbability 钻探成功概率
	SuccessProbability float64 `mapstructure:"success_probability"`
	// ProductionVolume 成功井产量（百万桶）
	ProductionVolume float64 `mapstructure:"production_volume"`
	// PriceFluctuation 油价相对波动率
	PriceFluctuation float64 `mapstructure:"price_fluctuation"`
	// DiscountRate 折现率
	DiscountRate float64 `mapstructure:"discount_rate"`
	// ClampNegativePrice 负油价截断开关
	ClampNegativePrice bool `mapstructure:"clamp_negative_price"`
}

// Load 加载配置：默认值 + 环境变量覆盖
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("OILX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults 设置默认值，基准场景与默认勘探项目一致
func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "oil-exploration")

	v.SetDefault("simulation.num_simulations", 10000)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.workers", 1)
	v.SetDefault("simulation.initial_investment", 20.0)
	v.SetDefault("simulation.drilling_cost", 10.0)
	v.SetDefault("simulation.expected_oil_price", 70.0)
	v.SetDefault("simulation.success_probability", 0.60)
	v.SetDefault("simulation.production_volume", 1.0)
	v.SetDefault("simulation.price_fluctuation", 0.05)
	v.SetDefault("simulation.discount_rate", 0.10)
	v.SetDefault("simulation.clamp_negative_price", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.file_path", "logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 10)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
}
