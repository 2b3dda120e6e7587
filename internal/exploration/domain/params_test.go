package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultParameters_Valid(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Fatalf("default parameters should validate, got %v", err)
	}
}

func TestSimulationParameters_Validate_RejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimulationParameters)
		field  string
	}{
		{"negative success probability", func(p *SimulationParameters) { p.SuccessProbability = -0.1 }, "success_probability"},
		{"success probability above one", func(p *SimulationParameters) { p.SuccessProbability = 1.1 }, "success_probability"},
		{"negative price fluctuation", func(p *SimulationParameters) { p.PriceFluctuation = -0.01 }, "price_fluctuation"},
		{"price fluctuation above one", func(p *SimulationParameters) { p.PriceFluctuation = 2.0 }, "price_fluctuation"},
		{"negative initial investment", func(p *SimulationParameters) { p.InitialInvestment = -20 }, "initial_investment"},
		{"negative drilling cost", func(p *SimulationParameters) { p.DrillingCost = -1 }, "drilling_cost"},
		{"negative expected oil price", func(p *SimulationParameters) { p.ExpectedOilPrice = -70 }, "expected_oil_price"},
		{"negative production volume", func(p *SimulationParameters) { p.ProductionVolume = -1 }, "production_volume"},
		{"discount rate at negative one", func(p *SimulationParameters) { p.DiscountRate = -1 }, "discount_rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParameters()
			tc.mutate(&params)

			err := params.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should name field %q, got %q", tc.field, err.Error())
			}
		})
	}
}

func TestSimulationParameters_Validate_AcceptsBoundaries(t *testing.T) {
	params := DefaultParameters()
	params.SuccessProbability = 0
	params.PriceFluctuation = 0
	if err := params.Validate(); err != nil {
		t.Errorf("lower boundary should validate, got %v", err)
	}

	params = DefaultParameters()
	params.SuccessProbability = 1
	params.PriceFluctuation = 1
	if err := params.Validate(); err != nil {
		t.Errorf("upper boundary should validate, got %v", err)
	}
}
