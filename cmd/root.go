package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by the schedule and replace subcommands
	logLevel     string // log verbosity level
	scenarioPath string // YAML scenario file
	policyID     string // policy to simulate

	// scheduling-only flags
	quantum        int  // Round-Robin family time slice
	higherIsBetter bool // priority direction
	horizon        int  // simulation horizon in time units
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "quantumqueue",
	Short: "Deterministic CPU-scheduling and page-replacement reference simulator",
	Long: "QuantumQueue computes the exact scheduling timeline or page-replacement\n" +
		"trace a solver is expected to reproduce by hand, plus the derived metrics.\n" +
		"Identical inputs always produce identical output.",
}

// setupLogging applies the --log flag before any subcommand runs.
// The engine itself never logs; verbosity only affects the CLI layer.
func setupLogging(*cobra.Command, []string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	scheduleCmd.Flags().StringVar(&policyID, "policy", "", "Scheduling policy id (see `quantumqueue policies`)")
	scheduleCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file with processes and options")
	scheduleCmd.Flags().IntVar(&quantum, "quantum", 0, "Round-Robin time quantum (default 2)")
	scheduleCmd.Flags().BoolVar(&higherIsBetter, "higher-is-better", true, "Treat larger priority numbers as higher priority")
	scheduleCmd.Flags().IntVar(&horizon, "horizon", 0, "Simulation horizon in time units (default 32)")

	replaceCmd.Flags().StringVar(&policyID, "policy", "", "Replacement policy id (see `quantumqueue policies`)")
	replaceCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file with frames and page sequence")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(policiesCmd)
}
