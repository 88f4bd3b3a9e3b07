// sim/simulator.go
package sim

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/stocksim/stocksim/sim/trace"
)

// Simulator is the core object that holds simulation time, inventory
// state, and the event loop for one (s, S) policy run.
//
// The event "queue" is deliberately two scalar timers, nextCustomer and
// nextOrder: with exactly two event kinds and at most one outstanding
// order, min() over two scalars is the whole scheduling problem. An
// explicit priority queue becomes worthwhile only if more event kinds
// (e.g. concurrent in-flight orders) are ever added.
//
// A Simulator owns its state exclusively for the duration of one run
// and holds no cross-run memory. Independent runs are safe to execute
// concurrently because no state is shared between instances.
type Simulator struct {
	params Params
	gen    *VariateGenerator

	// clock and pending event times
	clock        float64
	nextCustomer float64 // t_C: always defined once the run starts
	nextOrder    float64 // t_O: +Inf while no order is outstanding

	// inventory state
	onHand    int // x: never negative, excess demand is lost
	inTransit int // y: at most one outstanding order, so 0 or one order's quantity

	// cumulative accounting, all monotonically non-decreasing
	revenue      float64 // R
	orderingCost float64 // C, charged on delivery
	holdingCost  float64 // H, integrated continuously over on-hand stock

	log trace.Log
}

// NewSimulator validates the parameters and prepares a run. Validation
// happens here, before any state exists, so an invalid parameter set
// never produces a partial trajectory.
func NewSimulator(params Params) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{params: params}, nil
}

// Params returns the immutable parameter set of this run.
func (s *Simulator) Params() Params {
	return s.params
}

// Run executes the full simulation and returns the event log and the
// run summary. Run resets all state first, so calling it again replays
// the identical run: every run is fully determined by its Params,
// including the seed.
func (s *Simulator) Run() (trace.Log, trace.Summary) {
	p := s.params

	s.gen = NewVariateGenerator(NewSimulationKey(p.Seed), p.ArrivalRate, p.MeanDemand)
	s.clock = 0
	s.onHand = p.OrderUpTo
	s.inTransit = 0
	s.revenue = 0
	s.orderingCost = 0
	s.holdingCost = 0
	s.nextCustomer = s.gen.NextInterarrival()
	s.nextOrder = math.Inf(1)
	s.log = trace.Log{{
		Time:   0,
		Kind:   trace.KindInit,
		OnHand: s.onHand,
	}}

	logrus.Debugf("run start: s=%d S=%d T=%v seed=%d", p.ReorderPoint, p.OrderUpTo, p.Horizon, p.Seed)

	for {
		next := math.Min(s.nextCustomer, s.nextOrder)
		if next > p.Horizon {
			break
		}
		// Tie-break favors the customer arrival.
		if s.nextCustomer <= s.nextOrder {
			s.handleCustomerArrival()
		} else {
			s.handleOrderArrival()
		}
	}

	// Tail accrual: holding cost covers [0, T] with no gaps, including
	// the interval between the last event and the horizon.
	s.accrueHolding(p.Horizon)

	summary := trace.Summary{
		FinalProfit:       s.revenue - s.orderingCost - s.holdingCost,
		TotalRevenue:      s.revenue,
		TotalOrderingCost: s.orderingCost,
		TotalHoldingCost:  s.holdingCost,
	}
	logrus.Debugf("run end: %d log entries, profit=%.2f", len(s.log), summary.FinalProfit)
	return s.log, summary
}

// accrueHolding integrates holding cost over [clock, until] at the
// current on-hand level and advances the clock.
func (s *Simulator) accrueHolding(until float64) {
	s.holdingCost += s.params.HoldingRate * float64(s.onHand) * (until - s.clock)
	s.clock = until
}

// handleCustomerArrival processes the next customer: sell what stock
// allows, lose the rest, and place a replenishment order if on-hand
// inventory fell below the reorder point while nothing is in transit.
func (s *Simulator) handleCustomerArrival() {
	s.accrueHolding(s.nextCustomer)

	demand := s.gen.NextDemand()
	fulfilled := min(demand, s.onHand)
	lost := demand - fulfilled

	s.revenue += s.params.UnitPrice * float64(fulfilled)
	s.onHand -= fulfilled

	// (s, S) reorder rule. At most one outstanding order: while an
	// order is in transit the rule stays silent no matter how low
	// on-hand falls, so repeated stockouts before delivery are possible.
	reordered := false
	if s.onHand < s.params.ReorderPoint && s.inTransit == 0 {
		s.inTransit = s.params.OrderUpTo - s.onHand
		s.nextOrder = s.clock + s.params.LeadTime
		reordered = true
	}

	s.nextCustomer = s.clock + s.gen.NextInterarrival()

	// Stockout wins the classification when both facts coincide; the
	// entry still records the reorder through ReorderPlaced.
	kind := trace.KindPurchase
	switch {
	case lost > 0:
		kind = trace.KindPurchaseStockout
	case reordered:
		kind = trace.KindPurchaseReorder
	}
	entry := trace.Entry{
		Time:          s.clock,
		Kind:          kind,
		OnHand:        s.onHand,
		InTransit:     s.inTransit,
		Profit:        s.revenue - s.orderingCost - s.holdingCost,
		Delta:         -fulfilled,
		ReorderPlaced: reordered,
	}
	if lost > 0 {
		entry.Stockout = &trace.Stockout{Requested: demand, Fulfilled: fulfilled, Lost: lost}
	}
	s.log = append(s.log, entry)

	logrus.Debugf("[t %9.3f] customer: demand=%d fulfilled=%d lost=%d onHand=%d inTransit=%d",
		s.clock, demand, fulfilled, lost, s.onHand, s.inTransit)
}

// handleOrderArrival processes the delivery of the outstanding order.
// Ordering cost is pay-on-delivery: the fixed plus variable charge
// accrues now, not at placement time.
func (s *Simulator) handleOrderArrival() {
	s.accrueHolding(s.nextOrder)

	arrived := s.inTransit
	s.orderingCost += s.params.FixedCost + s.params.UnitCost*float64(arrived)
	s.onHand += arrived
	s.inTransit = 0
	s.nextOrder = math.Inf(1)

	s.log = append(s.log, trace.Entry{
		Time:      s.clock,
		Kind:      trace.KindOrderArrival,
		OnHand:    s.onHand,
		InTransit: 0,
		Profit:    s.revenue - s.orderingCost - s.holdingCost,
		Delta:     arrived,
	})

	logrus.Debugf("[t %9.3f] delivery: arrived=%d onHand=%d", s.clock, arrived, s.onHand)
}

// Run is the convenience entry point for callers that do not need to
// hold the Simulator: validate, run once, return log and summary.
func Run(params Params) (trace.Log, trace.Summary, error) {
	s, err := NewSimulator(params)
	if err != nil {
		return nil, trace.Summary{}, err
	}
	log, summary := s.Run()
	return log, summary, nil
}
