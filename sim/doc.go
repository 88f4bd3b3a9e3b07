// Package sim provides the discrete-event simulation engine for an
// (s, S) continuous-review inventory policy with lost sales.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - params.go: the immutable per-run parameter set and its invariants
//   - rng.go: the seeded variate generator (exponential inter-arrivals,
//     Poisson demand sizes) and the fixed draw order behind reproducibility
//   - simulator.go: the two-timer event loop, the customer-arrival and
//     order-arrival handlers, and the cost/revenue accounting
//
// # Architecture
//
// The engine is pure computation: one run is fully determined by its
// Params (including the seed), owns its state exclusively, and returns
// its event log and summary as values. Supporting packages:
//   - sim/trace: pure-data event log entries, run summaries, aggregation
//   - sim/sweep: batch runner for sensitivity sweeps and (s, S) grid
//     optimization over repeated engine runs
//
// The model: customers arrive as a Poisson process with rate λ; each
// demands a Poisson(μ_D) quantity floored at 1. Demand beyond on-hand
// stock is lost, never backordered. When on-hand inventory drops below
// the reorder point s with no order in transit, an order for S − x
// units is placed and delivered after a deterministic lead time L, paid
// on delivery (fixed cost K plus c₀ per unit). Holding cost accrues
// continuously at h per unit per time unit. Profit is revenue minus
// ordering and holding cost.
package sim
