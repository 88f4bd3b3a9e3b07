// Package sweep drives repeated engine runs over parameter grids for
// sensitivity analysis and (s, S) policy optimization. The engine
// exposes no iteration logic itself; this package is the batch-runner
// side of that contract: hold everything fixed except the target
// field(s), reuse the same seed per grid point so the varied parameter
// is isolated from randomness, and collect final profit per point.
package sweep

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stocksim/stocksim/sim"
)

// Field names a parameter varied by a one-dimensional sweep.
type Field string

const (
	// FieldReorderPoint varies s with S held fixed.
	FieldReorderPoint Field = "s"
	// FieldOrderUpTo varies S with s held fixed.
	FieldOrderUpTo Field = "S"
	// FieldLeadTime varies L with the policy held fixed.
	FieldLeadTime Field = "L"
)

// Point is one grid point of a 1-D sweep: the varied value and the
// final profit of the run at that value.
type Point struct {
	Value  float64 `json:"value"`
	Profit float64 `json:"profit"`
}

// apply returns base with the target field set to v. Integer fields are
// rounded toward zero; sweeps over them should pass integral values.
func apply(base sim.Params, field Field, v float64) (sim.Params, error) {
	p := base
	switch field {
	case FieldReorderPoint:
		p.ReorderPoint = int(v)
	case FieldOrderUpTo:
		p.OrderUpTo = int(v)
	case FieldLeadTime:
		p.LeadTime = v
	default:
		return p, fmt.Errorf("unknown sweep field %q", field)
	}
	return p, nil
}

// Run1D runs the engine once per value with the target field varied and
// everything else held fixed, seed included, returning the profit per
// grid point in input order. Grid points that violate the parameter
// invariants (e.g. sweeping s past S) are rejected, not skipped, so the
// caller learns about a malformed range immediately.
func Run1D(base sim.Params, field Field, values []float64) ([]Point, error) {
	points := make([]Point, 0, len(values))
	for _, v := range values {
		p, err := apply(base, field, v)
		if err != nil {
			return nil, err
		}
		_, summary, err := sim.Run(p)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%v: %w", field, v, err)
		}
		points = append(points, Point{Value: v, Profit: summary.FinalProfit})
	}
	logrus.Infof("sweep over %s: %d points", field, len(points))
	return points, nil
}

// Peak returns the point with the highest profit, first occurrence
// winning ties. ok is false for an empty sweep.
func Peak(points []Point) (best Point, ok bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best = points[0]
	for _, pt := range points[1:] {
		if pt.Profit > best.Profit {
			best = pt
		}
	}
	return best, true
}
