package cmd

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stocksim/stocksim/sim/sweep"
)

var (
	optSMax     int  // upper bound of the reorder-point search
	optUpToMax  int  // upper bound of the order-up-to search
	optSStep    int  // reorder-point stride
	optUpToStep int  // order-up-to stride
	optMargin   int  // minimum S − s gap
	optWorkers  int  // concurrent runs (0 = one per CPU)
	optShowGrid bool // print the full profit table
)

// optimizeCmd searches the (s, S) grid for the profit-maximizing policy.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search the (s, S) grid for the profit-maximizing policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		base := buildParams(cmd)

		workers := optWorkers
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		grid := sweep.Grid{
			SMax:     optSMax,
			SStep:    optSStep,
			UpToMax:  optUpToMax,
			UpToStep: optUpToStep,
			Margin:   optMargin,
			Workers:  workers,
		}
		result, err := sweep.Optimize(base, grid)
		if err != nil {
			logrus.Fatalf("optimization failed: %v", err)
		}

		fmt.Println("=== Policy Optimization ===")
		fmt.Printf("Cells Evaluated      : %d\n", len(result.Cells))
		fmt.Printf("Best Policy          : (s=%d, S=%d)\n", result.Best.ReorderPoint, result.Best.OrderUpTo)
		fmt.Printf("Best Profit          : %.2f\n", result.Best.Profit)
		fmt.Printf("Mean Profit          : %.2f\n", result.MeanProfit)
		fmt.Printf("Profit Range         : [%.2f, %.2f]\n", result.MinProfit, result.MaxProfit)

		if optShowGrid {
			fmt.Printf("\n%6s %6s %12s\n", "s", "S", "profit")
			for _, c := range result.Cells {
				fmt.Printf("%6d %6d %12.2f\n", c.ReorderPoint, c.OrderUpTo, c.Profit)
			}
		}
	},
}

func init() {
	addParamFlags(optimizeCmd)
	optimizeCmd.Flags().IntVar(&optSMax, "s-max", 20, "Upper bound of the reorder-point search")
	optimizeCmd.Flags().IntVar(&optUpToMax, "S-max", 60, "Upper bound of the order-up-to search")
	optimizeCmd.Flags().IntVar(&optSStep, "s-step", 2, "Reorder-point stride")
	optimizeCmd.Flags().IntVar(&optUpToStep, "S-step", 5, "Order-up-to stride")
	optimizeCmd.Flags().IntVar(&optMargin, "margin", 5, "Minimum gap between S and s in the grid")
	optimizeCmd.Flags().IntVar(&optWorkers, "workers", 0, "Concurrent simulation runs (0 = one per CPU)")
	optimizeCmd.Flags().BoolVar(&optShowGrid, "show-grid", false, "Print the full profit table")
}
