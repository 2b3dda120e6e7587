package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/oilexploration/internal/exploration/application"
	"github.com/wyfcoding/oilexploration/pkg/config"
	"github.com/wyfcoding/oilexploration/pkg/logging"
)

func main() {
	// 1. Config：默认值 + 环境变量，再由命令行标志覆盖
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	sim := cfg.Simulation
	flag.IntVar(&sim.NumSimulations, "simulations", sim.NumSimulations, "number of Monte Carlo trials")
	flag.Int64Var(&sim.Seed, "seed", sim.Seed, "random seed, 0 means time-based")
	flag.IntVar(&sim.Workers, "workers", sim.Workers, "parallel shards, 1 means sequential")
	flag.Float64Var(&sim.InitialInvestment, "investment", sim.InitialInvestment, "initial investment in million dollars")
	flag.Float64Var(&sim.DrillingCost, "drilling-cost", sim.DrillingCost, "drilling cost per well in million dollars")
	flag.Float64Var(&sim.ExpectedOilPrice, "oil-price", sim.ExpectedOilPrice, "expected oil price in dollars per barrel")
	flag.Float64Var(&sim.SuccessProbability, "success-probability", sim.SuccessProbability, "probability of a producing well")
	flag.Float64Var(&sim.ProductionVolume, "volume", sim.ProductionVolume, "production volume in million barrels")
	flag.Float64Var(&sim.PriceFluctuation, "fluctuation", sim.PriceFluctuation, "relative price fluctuation")
	flag.Float64Var(&sim.DiscountRate, "discount-rate", sim.DiscountRate, "single period discount rate")
	flag.BoolVar(&sim.ClampNegativePrice, "clamp-negative-price", sim.ClampNegativePrice, "clamp sampled oil price at zero")
	flag.Parse()

	// 2. Logger
	if err := logging.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}

	// 3. Application
	svc := application.NewAnalysisService(logging.Get())

	report, err := svc.RunAnalysis(context.Background(), application.RunAnalysisCommand{
		InitialInvestment:  sim.InitialInvestment,
		DrillingCost:       sim.DrillingCost,
		ExpectedOilPrice:   sim.ExpectedOilPrice,
		SuccessProbability: sim.SuccessProbability,
		ProductionVolume:   sim.ProductionVolume,
		PriceFluctuation:   sim.PriceFluctuation,
		DiscountRate:       sim.DiscountRate,
		ClampNegativePrice: sim.ClampNegativePrice,
		NumSimulations:     sim.NumSimulations,
		Seed:               sim.Seed,
		Workers:            sim.Workers,
	})
	if err != nil {
		slog.Error("analysis failed", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printReport(report)
}

func printReport(r *application.AnalysisReportDTO) {
	money := func(v float64) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	}

	fmt.Println()
	fmt.Println("Monte Carlo Simulation Results:")
	fmt.Printf("Mean NPV: $%s million\n", money(r.MeanNPV))
	fmt.Printf("Standard Deviation: $%s million\n", money(r.StdNPV))
	fmt.Printf("Minimum NPV: $%s million\n", money(r.MinNPV))
	fmt.Printf("Maximum NPV: $%s million\n", money(r.MaxNPV))
	fmt.Printf("Probability of Positive NPV: %.1f%%\n", r.ProbabilityPositiveNPV*100)

	if r.VaR95 != "" {
		fmt.Println()
		fmt.Println("Tail Risk:")
		fmt.Printf("VaR 95%%: $%s million\n", r.VaR95)
		fmt.Printf("VaR 99%%: $%s million\n", r.VaR99)
		fmt.Printf("ES 95%%: $%s million\n", r.ES95)
		fmt.Printf("ES 99%%: $%s million\n", r.ES99)
	}
}
