package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stocksim/stocksim/sim"
	"github.com/stocksim/stocksim/sim/trace"
)

var (
	showLog    bool // print the full event log after the summary
	jsonOutput bool // emit machine-readable JSON instead of tables
)

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one inventory simulation and print its summary",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		params := buildParams(cmd)

		log, summary, err := sim.Run(params)
		if err != nil {
			logrus.Fatalf("invalid parameters: %v", err)
		}

		if jsonOutput {
			printJSON(log, summary)
			return
		}
		printSummary(params, log, summary)
		if showLog {
			printLog(log)
		}
	},
}

// printJSON emits the log and summary as a single JSON document.
func printJSON(log trace.Log, summary trace.Summary) {
	out := struct {
		Summary trace.Summary `json:"summary"`
		Log     trace.Log     `json:"log"`
	}{Summary: summary, Log: log}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logrus.Fatalf("encode output: %v", err)
	}
}

// printSummary displays the run outcome at the end of the simulation.
func printSummary(params sim.Params, log trace.Log, summary trace.Summary) {
	stats := trace.Summarize(log)
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Policy               : (s=%d, S=%d)\n", params.ReorderPoint, params.OrderUpTo)
	fmt.Printf("Final Profit         : %.2f\n", summary.FinalProfit)
	fmt.Printf("Total Revenue        : %.2f\n", summary.TotalRevenue)
	fmt.Printf("Total Ordering Cost  : %.2f\n", summary.TotalOrderingCost)
	fmt.Printf("Total Holding Cost   : %.2f\n", summary.TotalHoldingCost)
	fmt.Printf("Customer Arrivals    : %d\n", stats.Purchases)
	fmt.Printf("Units Sold / Lost    : %d / %d\n", stats.UnitsSold, stats.UnitsLost)
	fmt.Printf("Stockout Events      : %d\n", stats.Stockouts)
	fmt.Printf("Orders Placed        : %d\n", stats.OrdersPlaced)
	fmt.Printf("Orders Received      : %d\n", stats.OrdersReceived)
}

// printLog displays the chronological event log as a table.
func printLog(log trace.Log) {
	fmt.Println("\n=== Event Log ===")
	fmt.Printf("%10s  %-18s %8s %10s %8s %10s\n", "time", "event", "on-hand", "in-transit", "delta", "profit")
	for _, e := range log {
		fmt.Printf("%10.3f  %-18s %8d %10d %8d %10.2f", e.Time, e.Kind, e.OnHand, e.InTransit, e.Delta, e.Profit)
		if e.Stockout != nil {
			fmt.Printf("  demand=%d fulfilled=%d lost=%d", e.Stockout.Requested, e.Stockout.Fulfilled, e.Stockout.Lost)
		}
		fmt.Println()
	}
}

func init() {
	addParamFlags(runCmd)
	runCmd.Flags().BoolVar(&showLog, "show-log", false, "Print the full event log after the summary")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the log and summary as JSON")
}
