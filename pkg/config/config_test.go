package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ServiceName != "oil-exploration" {
		t.Errorf("service_name = %q", cfg.ServiceName)
	}

	sim := cfg.Simulation
	if sim.NumSimulations != 10000 {
		t.Errorf("num_simulations = %d, want 10000", sim.NumSimulations)
	}
	if sim.InitialInvestment != 20.0 || sim.DrillingCost != 10.0 {
		t.Errorf("cost defaults mismatch: %+v", sim)
	}
	if sim.ExpectedOilPrice != 70.0 || sim.SuccessProbability != 0.60 {
		t.Errorf("price defaults mismatch: %+v", sim)
	}
	if sim.ProductionVolume != 1.0 || sim.PriceFluctuation != 0.05 || sim.DiscountRate != 0.10 {
		t.Errorf("model defaults mismatch: %+v", sim)
	}
	if sim.ClampNegativePrice {
		t.Errorf("clamp_negative_price must default to false")
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("logger level = %q, want info", cfg.Logger.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OILX_SIMULATION_NUM_SIMULATIONS", "500")
	t.Setenv("OILX_SIMULATION_SUCCESS_PROBABILITY", "0.8")
	t.Setenv("OILX_LOGGER_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.NumSimulations != 500 {
		t.Errorf("num_simulations = %d, want env override 500", cfg.Simulation.NumSimulations)
	}
	if cfg.Simulation.SuccessProbability != 0.8 {
		t.Errorf("success_probability = %v, want env override 0.8", cfg.Simulation.SuccessProbability)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("logger level = %q, want env override debug", cfg.Logger.Level)
	}
}
