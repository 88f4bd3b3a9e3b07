package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stocksim/stocksim/sim/sweep"
)

var (
	sweepTarget string  // which parameter the sweep varies
	sweepFrom   float64 // inclusive lower bound
	sweepTo     float64 // inclusive upper bound
	sweepStep   float64 // grid stride
)

// sweepCmd runs a one-dimensional sensitivity sweep over s, S, or L.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a sensitivity sweep over one parameter",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		base := buildParams(cmd)

		field, err := sweepField(sweepTarget)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		values := gridValues(sweepFrom, sweepTo, sweepStep)
		if len(values) == 0 {
			logrus.Fatalf("empty sweep range: from=%v to=%v step=%v", sweepFrom, sweepTo, sweepStep)
		}

		points, err := sweep.Run1D(base, field, values)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		fmt.Printf("=== Sensitivity: %s ===\n", field)
		fmt.Printf("%10s %12s\n", string(field), "profit")
		for _, pt := range points {
			fmt.Printf("%10.2f %12.2f\n", pt.Value, pt.Profit)
		}
		if best, ok := sweep.Peak(points); ok {
			fmt.Printf("Peak: %s=%.2f profit=%.2f\n", field, best.Value, best.Profit)
		}
	},
}

// sweepField maps the --target flag onto a sweep field.
func sweepField(target string) (sweep.Field, error) {
	switch target {
	case "s":
		return sweep.FieldReorderPoint, nil
	case "S":
		return sweep.FieldOrderUpTo, nil
	case "L":
		return sweep.FieldLeadTime, nil
	}
	return "", fmt.Errorf("unknown sweep target %q (want s, S, or L)", target)
}

// gridValues enumerates from..to inclusive by step.
func gridValues(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}
	values := make([]float64, 0, int((to-from)/step)+1)
	for v := from; v <= to; v += step {
		values = append(values, v)
	}
	return values
}

func init() {
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepTarget, "target", "s", "Parameter to vary (s, S, or L)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "Inclusive lower bound of the sweep range")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 39, "Inclusive upper bound of the sweep range")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "Sweep stride")
}
