package cmd

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dianbrown/QuantumQueue/sim"
)

// scheduleCmd runs one CPU-scheduling policy over a scenario file and
// prints the reference timeline plus the derived metrics.
var scheduleCmd = &cobra.Command{
	Use:    "schedule",
	Short:  "Run a CPU scheduling simulation",
	PreRun: setupLogging,
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("No scenario file provided (--scenario)")
		}
		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}

		opt := scenario.SchedulingOptions(quantum, higherIsBetter, horizon)
		logrus.Infof("Simulating policy %q over %d processes", policyID, len(scenario.Processes))

		result, err := sim.SimulateScheduling(policyID, scenario.SchedulingInput(), opt)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		printSchedulingResult(result)
	},
}

func printSchedulingResult(res *sim.SchedulingResult) {
	fmt.Printf("=== %s ===\n", res.PolicyName)
	fmt.Print("Timeline :")
	for _, slot := range res.Timeline {
		occ := slot.Occupant
		if occ == "" {
			occ = "-"
		}
		fmt.Printf(" %s", occ)
	}
	fmt.Println()
	if res.Truncated {
		fmt.Println("(truncated at horizon)")
	}

	ids := make([]string, 0, len(res.PerProcess))
	for id := range res.PerProcess {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Process  Start  End  Waiting  Turnaround  Response")
	for _, id := range ids {
		m := res.PerProcess[id]
		if !m.Completed {
			fmt.Printf("%-7s  did not complete\n", id)
			continue
		}
		fmt.Printf("%-7s  %5d  %3d  %7d  %10d  %8d\n",
			id, m.Start, m.Completion, m.Waiting, m.Turnaround, m.Responsiveness)
	}
	fmt.Printf("Averages : waiting=%.2f turnaround=%.2f response=%.2f\n",
		res.Averages.Waiting, res.Averages.Turnaround, res.Averages.Responsiveness)
}
