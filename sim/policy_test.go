package sim

import (
	"sort"
	"testing"
)

func stateIDs(states []*procState) []string {
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.ID
	}
	return ids
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortWith(states []*procState, less func(a, b *procState, opt runOptions) bool, opt runOptions) {
	sort.SliceStable(states, func(i, j int) bool { return less(states[i], states[j], opt) })
}

func defaultRunOptions() runOptions {
	opt, err := Options{}.normalize()
	if err != nil {
		panic(err)
	}
	return opt
}

func TestFCFSLess_ArrivalThenID(t *testing.T) {
	states := []*procState{
		{Process: Process{ID: "B", Arrival: 2}},
		{Process: Process{ID: "C", Arrival: 1}},
		{Process: Process{ID: "A", Arrival: 2}},
	}
	sortWith(states, fcfsLess, defaultRunOptions())

	got := stateIDs(states)
	want := []string{"C", "A", "B"}
	if !sliceEqual(got, want) {
		t.Errorf("fcfsLess ordering: got %v, want %v", got, want)
	}
}

func TestSJFLess_OriginalBurstNotRemaining(t *testing.T) {
	// A has the larger original burst even though less remains; original
	// burst decides
	states := []*procState{
		{Process: Process{ID: "A", Arrival: 1, Burst: 5}, remaining: 1},
		{Process: Process{ID: "B", Arrival: 1, Burst: 3}, remaining: 3},
	}
	sortWith(states, sjfLess, defaultRunOptions())

	if states[0].ID != "B" {
		t.Errorf("sjfLess must compare original burst: got %v first", states[0].ID)
	}
}

func TestSRTLess_RemainingThenArrivalThenID(t *testing.T) {
	states := []*procState{
		{Process: Process{ID: "A", Arrival: 3}, remaining: 2},
		{Process: Process{ID: "C", Arrival: 1}, remaining: 2},
		{Process: Process{ID: "B", Arrival: 1}, remaining: 1},
	}
	sortWith(states, srtLess, defaultRunOptions())

	got := stateIDs(states)
	want := []string{"B", "C", "A"}
	if !sliceEqual(got, want) {
		t.Errorf("srtLess ordering: got %v, want %v", got, want)
	}
}

func TestFCFSPriorityLess_PriorityThenReadyState(t *testing.T) {
	states := []*procState{
		{Process: Process{ID: "A", Priority: 1}, readyStateTime: 1},
		{Process: Process{ID: "B", Priority: 3}, readyStateTime: 4},
		{Process: Process{ID: "C", Priority: 3}, readyStateTime: 2},
	}
	sortWith(states, fcfsPriorityLess, defaultRunOptions())

	got := stateIDs(states)
	want := []string{"C", "B", "A"}
	if !sliceEqual(got, want) {
		t.Errorf("fcfsPriorityLess ordering: got %v, want %v", got, want)
	}
}

func TestFCFSPriorityLess_LowerIsBetter(t *testing.T) {
	opt := defaultRunOptions()
	opt.higherIsBetter = false

	states := []*procState{
		{Process: Process{ID: "A", Priority: 5}},
		{Process: Process{ID: "B", Priority: 1}},
	}
	sortWith(states, fcfsPriorityLess, opt)

	if states[0].ID != "B" {
		t.Errorf("with lower-is-better, priority 1 must sort first, got %v", states[0].ID)
	}
}

func TestRoundRobinLess_MostRecentArrivalBreaksTies(t *testing.T) {
	// equal ready-state time: the NEWEST arrival wins, preserved from the
	// documented solver behavior rather than textbook arrival order
	states := []*procState{
		{Process: Process{ID: "A", Arrival: 1}, readyStateTime: 3},
		{Process: Process{ID: "B", Arrival: 3}, readyStateTime: 3},
	}
	sortWith(states, roundRobinLess, defaultRunOptions())

	got := stateIDs(states)
	want := []string{"B", "A"}
	if !sliceEqual(got, want) {
		t.Errorf("roundRobinLess tie-break: got %v, want %v", got, want)
	}
}

func TestSJFPriorityPreempts_OriginalBurstComparison(t *testing.T) {
	opt := defaultRunOptions()
	running := &procState{Process: Process{ID: "A", Priority: 2, Burst: 5}, remaining: 2}
	challenger := &procState{Process: Process{ID: "B", Priority: 2, Burst: 4}, remaining: 4}

	// equal priority, original 4 < 5 preempts, even though the running
	// process has less remaining
	if !sjfPriorityPreempts(challenger, running, opt) {
		t.Error("expected preemption on strictly smaller original burst at equal priority")
	}

	equalBurst := &procState{Process: Process{ID: "C", Priority: 2, Burst: 5}, remaining: 5}
	if sjfPriorityPreempts(equalBurst, running, opt) {
		t.Error("equal priority and equal original burst must not preempt")
	}
}

func TestSRTPreempts_StrictOnly(t *testing.T) {
	opt := defaultRunOptions()
	running := &procState{Process: Process{ID: "A"}, remaining: 2}
	equal := &procState{Process: Process{ID: "B"}, remaining: 2}
	shorter := &procState{Process: Process{ID: "C"}, remaining: 1}

	if srtPreempts(equal, running, opt) {
		t.Error("equal remaining time must not preempt")
	}
	if !srtPreempts(shorter, running, opt) {
		t.Error("strictly shorter remaining time must preempt")
	}
}

func TestPriorityPreempts_EqualNeverPreempts(t *testing.T) {
	opt := defaultRunOptions()
	running := &procState{Process: Process{ID: "A", Priority: 3}}
	equal := &procState{Process: Process{ID: "B", Priority: 3}}
	higher := &procState{Process: Process{ID: "C", Priority: 4}}

	if priorityPreempts(equal, running, opt) {
		t.Error("equal priority must not preempt")
	}
	if !priorityPreempts(higher, running, opt) {
		t.Error("strictly higher priority must preempt")
	}
}

func TestListSchedulingPolicies_StableOrder(t *testing.T) {
	descriptors := ListSchedulingPolicies()
	want := []string{"fcfs", "fcfs-priority", "sjf", "sjf-priority", "srt", "round-robin", "round-robin-priority"}

	got := make([]string, len(descriptors))
	for i, d := range descriptors {
		got[i] = d.ID
	}
	if !sliceEqual(got, want) {
		t.Errorf("policy listing: got %v, want %v", got, want)
	}
}
