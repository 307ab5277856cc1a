package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dianbrown/QuantumQueue/sim/paging"
)

// replaceCmd runs one page-replacement policy over a scenario file and
// prints the access log plus the per-step frame grid.
var replaceCmd = &cobra.Command{
	Use:    "replace",
	Short:  "Run a page replacement simulation",
	PreRun: setupLogging,
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("No scenario file provided (--scenario)")
		}
		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}

		logrus.Infof("Simulating policy %q over %d references", policyID, len(scenario.Sequence))

		result, err := paging.SimulateReplacement(policyID, scenario.ReplacementInput(), scenario.Sequence)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		printReplacementResult(result)
	},
}

func printReplacementResult(res *paging.ReplacementResult) {
	fmt.Printf("=== %s ===\n", res.PolicyName)
	for i, access := range res.Log {
		outcome := "fault"
		victim := ""
		if access.Hit {
			outcome = "hit"
		} else {
			victim = fmt.Sprintf(" victim=frame %d", access.VictimFrame)
		}
		fmt.Printf("t=%-2d page %-4s %-5s%s  frames=%v\n",
			access.Time, access.Page, outcome, victim, []string(res.Snapshots[i]))
	}
	fmt.Printf("Hits: %d  Faults: %d  Hit ratio: %.2f  Fault ratio: %.2f\n",
		res.Hits, res.Faults, res.HitRatio, res.FaultRatio)
}
