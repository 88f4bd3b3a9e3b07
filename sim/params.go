package sim

import "fmt"

// Params holds the full parameter set for one simulation run.
// Params are immutable once a run starts: the engine copies them at
// construction and never writes back. Two runs with equal Params
// (including Seed) produce identical logs and summaries.
type Params struct {
	ReorderPoint int     // s: reorder when on-hand inventory falls below this
	OrderUpTo    int     // S: order quantity raises nominal inventory to this level
	Horizon      float64 // T: simulated time span, in time units
	ArrivalRate  float64 // λ: customer arrival rate (Poisson process)
	MeanDemand   float64 // μ_D: mean per-customer demand size (Poisson, floored at 1)
	LeadTime     float64 // L: deterministic order delivery delay
	UnitPrice    float64 // r: revenue per unit sold
	UnitCost     float64 // c₀: variable ordering cost per unit
	FixedCost    float64 // K: fixed ordering cost per order
	HoldingRate  float64 // h: holding cost per unit on hand per time unit
	Seed         int64   // seed for the variate generator
}

// Validate checks the policy and environment invariants before a run
// starts. A violated invariant would either make the model meaningless
// or break loop termination (S <= s causes an immediate reorder loop),
// so the engine rejects it up front instead of producing a nonsense
// trajectory.
func (p Params) Validate() error {
	if p.ReorderPoint < 0 {
		return fmt.Errorf("reorder point s must be >= 0, got %d", p.ReorderPoint)
	}
	if p.OrderUpTo <= p.ReorderPoint {
		return fmt.Errorf("order-up-to level S (%d) must exceed reorder point s (%d)", p.OrderUpTo, p.ReorderPoint)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("horizon T must be > 0, got %v", p.Horizon)
	}
	if p.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate lambda must be > 0, got %v", p.ArrivalRate)
	}
	if p.MeanDemand <= 0 {
		return fmt.Errorf("mean demand must be > 0, got %v", p.MeanDemand)
	}
	if p.LeadTime < 0 {
		return fmt.Errorf("lead time L must be >= 0, got %v", p.LeadTime)
	}
	if p.HoldingRate <= 0 {
		return fmt.Errorf("holding rate h must be > 0, got %v", p.HoldingRate)
	}
	return nil
}
