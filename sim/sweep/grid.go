package sweep

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/stocksim/stocksim/sim"
)

// Grid describes the (s, S) search space for Optimize.
// Cells enumerate s in [0, SMax] by SStep and, for each s,
// S in [s+Margin, UpToMax] by UpToStep.
type Grid struct {
	SMax     int // inclusive upper bound of the reorder-point search
	SStep    int // reorder-point stride (default 2)
	UpToMax  int // inclusive upper bound of the order-up-to search
	UpToStep int // order-up-to stride (default 5)
	Margin   int // minimum S − s gap (default 5, must be >= 1)
	Workers  int // concurrent runs (default 1)
}

// withDefaults fills zero-valued strides with the standard search grid.
func (g Grid) withDefaults() Grid {
	if g.SStep <= 0 {
		g.SStep = 2
	}
	if g.UpToStep <= 0 {
		g.UpToStep = 5
	}
	if g.Margin <= 0 {
		g.Margin = 5
	}
	if g.Workers <= 0 {
		g.Workers = 1
	}
	return g
}

// Cell is one evaluated (s, S) policy with its final profit.
type Cell struct {
	ReorderPoint int     `json:"s"`
	OrderUpTo    int     `json:"S"`
	Profit       float64 `json:"profit"`
}

// Result bundles the full profit table with the best policy found and
// aggregate statistics over the table.
type Result struct {
	Cells      []Cell
	Best       Cell
	MeanProfit float64
	MinProfit  float64
	MaxProfit  float64
}

// Optimize evaluates every (s, S) cell of the grid with the same seed
// and returns the full table plus the profit-maximizing policy.
//
// Cells run on a bounded worker pool. This is safe without locking
// because every run owns fresh state and each worker writes only its
// own result slot; the output order and the argmax tie-break (first
// cell in row-major order) are therefore deterministic regardless of
// worker count.
func Optimize(base sim.Params, grid Grid) (*Result, error) {
	grid = grid.withDefaults()

	cells := make([]Cell, 0, 64)
	for s := 0; s <= grid.SMax; s += grid.SStep {
		for S := s + grid.Margin; S <= grid.UpToMax; S += grid.UpToStep {
			cells = append(cells, Cell{ReorderPoint: s, OrderUpTo: S})
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty search grid: s-max=%d S-max=%d margin=%d", grid.SMax, grid.UpToMax, grid.Margin)
	}

	var (
		wg       sync.WaitGroup
		sem      = make(chan struct{}, grid.Workers)
		firstErr error
		errOnce  sync.Once
	)
	for i := range cells {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			p := base
			p.ReorderPoint = cells[i].ReorderPoint
			p.OrderUpTo = cells[i].OrderUpTo
			_, summary, err := sim.Run(p)
			if err != nil {
				errOnce.Do(func() { firstErr = fmt.Errorf("cell (s=%d, S=%d): %w", p.ReorderPoint, p.OrderUpTo, err) })
				return
			}
			cells[i].Profit = summary.FinalProfit
		}(i)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	profits := make([]float64, len(cells))
	best := 0
	for i, c := range cells {
		profits[i] = c.Profit
		if c.Profit > cells[best].Profit {
			best = i
		}
	}

	res := &Result{
		Cells:      cells,
		Best:       cells[best],
		MeanProfit: stat.Mean(profits, nil),
		MinProfit:  floats.Min(profits),
		MaxProfit:  floats.Max(profits),
	}
	logrus.Infof("optimized %d cells: best (s=%d, S=%d) profit=%.2f",
		len(cells), res.Best.ReorderPoint, res.Best.OrderUpTo, res.Best.Profit)
	return res, nil
}
