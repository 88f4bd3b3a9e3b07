package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{
		ReorderPoint: 10,
		OrderUpTo:    40,
		Horizon:      100,
		ArrivalRate:  2.0,
		MeanDemand:   1.0,
		LeadTime:     2.0,
		UnitPrice:    50,
		UnitCost:     20,
		FixedCost:    100,
		HoldingRate:  1.0,
		Seed:         42,
	}
}

func TestParams_Validate_Accepts(t *testing.T) {
	require.NoError(t, validParams().Validate())

	// Zero reorder point and zero lead time are legal boundary values.
	p := validParams()
	p.ReorderPoint = 0
	p.LeadTime = 0
	assert.NoError(t, p.Validate())
}

func TestParams_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative s", func(p *Params) { p.ReorderPoint = -1 }},
		{"S equal to s", func(p *Params) { p.OrderUpTo = p.ReorderPoint }},
		{"S below s", func(p *Params) { p.OrderUpTo = p.ReorderPoint - 5 }},
		{"zero horizon", func(p *Params) { p.Horizon = 0 }},
		{"negative horizon", func(p *Params) { p.Horizon = -10 }},
		{"zero arrival rate", func(p *Params) { p.ArrivalRate = 0 }},
		{"zero mean demand", func(p *Params) { p.MeanDemand = 0 }},
		{"negative lead time", func(p *Params) { p.LeadTime = -1 }},
		{"zero holding rate", func(p *Params) { p.HoldingRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestNewSimulator_RejectsBeforeAnyState(t *testing.T) {
	p := validParams()
	p.OrderUpTo = p.ReorderPoint // would loop forever if accepted
	s, err := NewSimulator(p)
	require.Error(t, err)
	assert.Nil(t, s)
}
