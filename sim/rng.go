package sim

import (
	"math"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical parameters
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === VariateGenerator ===

// VariateGenerator produces the two random inputs of the model,
// customer inter-arrival times and per-customer demand sizes, from a
// single seeded stream. All draws consume that one stream in a fixed
// order (the first inter-arrival at initialization, then a demand draw
// followed by an inter-arrival draw per customer event), which is what
// makes a run reproducible from its seed alone.
//
// Thread-safety: NOT thread-safe. Each run owns its own generator.
type VariateGenerator struct {
	key        SimulationKey
	rng        *rand.Rand
	rate       float64 // customer arrival rate λ
	meanDemand float64 // demand size mean μ_D
}

// NewVariateGenerator creates a generator seeded from key.
func NewVariateGenerator(key SimulationKey, rate, meanDemand float64) *VariateGenerator {
	return &VariateGenerator{
		key:        key,
		rng:        rand.New(rand.NewSource(int64(key))),
		rate:       rate,
		meanDemand: meanDemand,
	}
}

// Key returns the SimulationKey used to seed this generator.
func (g *VariateGenerator) Key() SimulationKey {
	return g.key
}

// NextInterarrival returns the next customer inter-arrival time via
// inverse transform: Δt = -(1/λ)·ln(U) with U ~ Uniform(0,1).
// A uniform draw of exactly 0 would yield an infinite inter-arrival,
// so the draw is retried until U > 0. Always returns a positive value.
func (g *VariateGenerator) NextInterarrival() float64 {
	u := g.rng.Float64()
	for u == 0 {
		u = g.rng.Float64()
	}
	return -math.Log(u) / g.rate
}

// NextDemand returns the next customer demand size, drawn from
// Poisson(μ_D) and floored at 1: every arrival represents strictly
// positive demand, a zero-demand "customer" is excluded by construction.
func (g *VariateGenerator) NextDemand() int {
	d := poissonRand(g.rng, g.meanDemand)
	if d < 1 {
		return 1
	}
	return d
}

// poissonRand samples from Poisson(mean) using Knuth's multiplication
// method: multiply uniforms until the product drops below e^-mean.
// Exact for the modest means this model uses (per-customer demand);
// runtime grows linearly with mean.
func poissonRand(rng *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
