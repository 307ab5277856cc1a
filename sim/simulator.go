package sim

import (
	"sort"

	"github.com/dianbrown/QuantumQueue/sim/trace"
)

// SimulateScheduling runs one policy over the given processes and
// returns the finished, immutable result. Inputs are validated before
// any simulation state exists; the caller's slice and records are never
// mutated. An empty process list yields an empty-but-valid result.
func SimulateScheduling(policyID string, processes []Process, opt Options) (*SchedulingResult, error) {
	policy, err := newSchedulingPolicy(policyID)
	if err != nil {
		return nil, err
	}
	ropt, err := opt.normalize()
	if err != nil {
		return nil, err
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	states := newRunStates(processes)
	timeline, truncated := runSchedule(policy, states, ropt)

	return &SchedulingResult{
		PolicyID:   policy.id,
		PolicyName: policy.name,
		Timeline:   timeline,
		PerProcess: perProcessMetrics(states),
		Averages:   averageMetrics(states),
		Truncated:  truncated,
	}, nil
}

// runSchedule is the discrete-time loop shared by all seven variants.
// Per time unit: admit arrivals, test preemption, select an occupant,
// execute one unit, retire on completion. The horizon is the only bound;
// reaching it with work left truncates the timeline without error.
func runSchedule(policy *schedulingPolicy, states []*procState, opt runOptions) (trace.Timeline, bool) {
	pending := make([]*procState, len(states))
	copy(pending, states)
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].Arrival != pending[j].Arrival {
			return pending[i].Arrival < pending[j].Arrival
		}
		return pending[i].ID < pending[j].ID
	})

	var ready []*procState
	var running *procState
	quantumUsed := 0
	timeline := make(trace.Timeline, 0, opt.horizon)
	// time units at which some process re-entered the ready state
	marks := make(map[int]bool)

	for t := 1; t <= opt.horizon && (len(pending) > 0 || len(ready) > 0 || running != nil); t++ {
		// Admit every process that has arrived by now. A preempted
		// process re-stamps its ready-state time at the preemption
		// instant; it does not run this unit.
		for len(pending) > 0 && pending[0].Arrival <= t {
			p := pending[0]
			pending = pending[1:]
			p.readyStateTime = p.Arrival
			ready = append(ready, p)
			if running != nil && policy.preempts != nil && policy.preempts(p, running, opt) {
				running.readyStateTime = t
				ready = append(ready, running)
				marks[t] = true
				running = nil
				quantumUsed = 0
			}
		}

		if running == nil && len(ready) > 0 {
			sort.SliceStable(ready, func(i, j int) bool {
				return policy.less(ready[i], ready[j], opt)
			})
			running = ready[0]
			ready = ready[1:]
			if running.firstStart == 0 {
				running.firstStart = t
			}
			quantumUsed = 0
		}

		slot := trace.Slot{Time: t}
		if marks[t] {
			slot.Marker = trace.MarkerReadyState
		}
		if running != nil {
			slot.Occupant = running.ID
			running.remaining--
			quantumUsed++
			switch {
			case running.remaining == 0:
				// exclusive end: the last executed unit is t
				running.completion = t + 1
				running = nil
				quantumUsed = 0
			case policy.usesQuantum && quantumUsed >= opt.quantum:
				// quantum expiry re-queues even without preemption
				running.readyStateTime = t + 1
				ready = append(ready, running)
				marks[t+1] = true
				running = nil
				quantumUsed = 0
			}
		}
		timeline = append(timeline, slot)
	}

	truncated := running != nil || len(ready) > 0 || len(pending) > 0
	// trailing idle units carry no information for the solver grid
	for len(timeline) > 0 && timeline[len(timeline)-1].Occupant == "" {
		timeline = timeline[:len(timeline)-1]
	}
	return timeline, truncated
}
