package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stocksim/stocksim/sim"
)

var (
	// CLI flags shared by all subcommands: the engine parameter set.
	reorderPoint int     // s: reorder point
	orderUpTo    int     // S: order-up-to level
	horizon      float64 // T: simulated time span
	arrivalRate  float64 // λ: customer arrival rate
	meanDemand   float64 // μ_D: mean per-customer demand size
	leadTime     float64 // L: order delivery delay
	unitPrice    float64 // r: revenue per unit
	unitCost     float64 // c₀: variable ordering cost per unit
	fixedCost    float64 // K: fixed ordering cost per order
	holdingRate  float64 // h: holding cost per unit per time unit
	seed         int64   // Seed for the variate generator
	logLevel     string  // Log verbosity level

	scenarioFile string // YAML file with named parameter presets
	scenarioName string // preset to load from scenarioFile
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "stocksim",
	Short: "Discrete-event simulator for (s, S) inventory policies with lost sales",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag before any subcommand runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildParams assembles the engine parameter set from flags, applying a
// scenario preset first when one is requested. Flags changed on the
// command line win over preset values.
func buildParams(cmd *cobra.Command) sim.Params {
	p := sim.Params{
		ReorderPoint: reorderPoint,
		OrderUpTo:    orderUpTo,
		Horizon:      horizon,
		ArrivalRate:  arrivalRate,
		MeanDemand:   meanDemand,
		LeadTime:     leadTime,
		UnitPrice:    unitPrice,
		UnitCost:     unitCost,
		FixedCost:    fixedCost,
		HoldingRate:  holdingRate,
		Seed:         seed,
	}
	if scenarioName == "" {
		return p
	}
	preset, err := LoadScenario(scenarioFile, scenarioName)
	if err != nil {
		logrus.Fatalf("unable to load scenario %q: %v", scenarioName, err)
	}
	logrus.Infof("Using preset scenario %v", scenarioName)
	return preset.Merge(p, cmd)
}

// addParamFlags registers the engine parameter flags on a subcommand.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&reorderPoint, "s", 10, "Reorder point s")
	cmd.Flags().IntVar(&orderUpTo, "S", 40, "Order-up-to level S (must exceed s)")
	cmd.Flags().Float64Var(&horizon, "horizon", 100, "Simulation horizon T (time units)")
	cmd.Flags().Float64Var(&arrivalRate, "rate", 2.0, "Customer arrival rate lambda")
	cmd.Flags().Float64Var(&meanDemand, "mean-demand", 1.0, "Mean per-customer demand size")
	cmd.Flags().Float64Var(&leadTime, "lead-time", 2.0, "Order lead time L")
	cmd.Flags().Float64Var(&unitPrice, "price", 50.0, "Unit sale price r")
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 20.0, "Variable ordering cost per unit")
	cmd.Flags().Float64Var(&fixedCost, "fixed-cost", 100.0, "Fixed ordering cost per order")
	cmd.Flags().Float64Var(&holdingRate, "holding-rate", 1.0, "Holding cost per unit per time unit")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random variate generation")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file holding named parameter presets")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Named preset to load from the scenario file")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(optimizeCmd)
}
