package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dianbrown/QuantumQueue/sim"
	"github.com/dianbrown/QuantumQueue/sim/paging"
)

// policiesCmd lists both policy registries with their ids.
var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List available scheduling and replacement policies",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Scheduling policies:")
		for _, d := range sim.ListSchedulingPolicies() {
			fmt.Printf("  %-22s %s\n", d.ID, d.Name)
		}
		fmt.Println("Replacement policies:")
		for _, d := range paging.ListReplacementPolicies() {
			fmt.Printf("  %-22s %s\n", d.ID, d.Name)
		}
	},
}
