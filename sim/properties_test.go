package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawProcesses generates a small valid process set with unique IDs.
func drawProcesses(t *rapid.T) []Process {
	n := rapid.IntRange(1, 6).Draw(t, "count")
	processes := make([]Process, n)
	for i := range processes {
		processes[i] = Process{
			ID:       fmt.Sprintf("P%d", i),
			Priority: rapid.IntRange(0, 4).Draw(t, fmt.Sprintf("priority%d", i)),
			Arrival:  rapid.IntRange(1, 8).Draw(t, fmt.Sprintf("arrival%d", i)),
			Burst:    rapid.IntRange(1, 6).Draw(t, fmt.Sprintf("burst%d", i)),
		}
	}
	return processes
}

func drawPolicyID(t *rapid.T) string {
	ids := make([]string, 0, len(schedulingPolicies))
	for _, p := range schedulingPolicies {
		ids = append(ids, p.id)
	}
	return rapid.SampledFrom(ids).Draw(t, "policy")
}

// Identical inputs must produce bit-identical results: no ambient time,
// no randomness, no hidden state across calls.
func TestScheduling_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := drawPolicyID(t)
		processes := drawProcesses(t)

		first, err := SimulateScheduling(policy, processes, Options{})
		require.NoError(t, err)
		second, err := SimulateScheduling(policy, processes, Options{})
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

// Selection is determined by data fields, not input order: reordering
// the process list must not change the timeline.
func TestScheduling_InputOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := drawPolicyID(t)
		processes := drawProcesses(t)

		reversed := make([]Process, len(processes))
		for i, p := range processes {
			reversed[len(processes)-1-i] = p
		}

		a, err := SimulateScheduling(policy, processes, Options{})
		require.NoError(t, err)
		b, err := SimulateScheduling(policy, reversed, Options{})
		require.NoError(t, err)

		require.Equal(t, a.Timeline, b.Timeline)
		require.Equal(t, a.PerProcess, b.PerProcess)
	})
}

// Every process occupies exactly its burst of timeline slots unless the
// run was horizon-truncated, and waiting time is never negative.
func TestScheduling_ConservationAndNonNegativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		policy := drawPolicyID(t)
		processes := drawProcesses(t)

		res, err := SimulateScheduling(policy, processes, Options{})
		require.NoError(t, err)

		occupied := make(map[string]int)
		for _, slot := range res.Timeline {
			if slot.Occupant != "" {
				occupied[slot.Occupant]++
			}
		}

		totalBurst := 0
		for _, p := range processes {
			totalBurst += p.Burst
			m := res.PerProcess[p.ID]
			require.GreaterOrEqual(t, m.Waiting, 0)
			if !res.Truncated {
				require.Equal(t, p.Burst, occupied[p.ID],
					"process %s must occupy exactly its burst", p.ID)
				require.True(t, m.Completed)
			}
		}
		require.LessOrEqual(t, res.Timeline.Occupied(), totalBurst)
	})
}
