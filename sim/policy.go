package sim

// PolicyDescriptor identifies one policy for listing/selection in a UI
// or CLI.
type PolicyDescriptor struct {
	ID   string
	Name string
}

// schedulingPolicy bundles everything that distinguishes one variant:
// a total selection order over the ready set, an optional preemption
// predicate applied when a process is admitted while another runs, and
// whether the quantum applies. The shared loop in simulator.go runs all
// seven variants.
type schedulingPolicy struct {
	id   string
	name string
	// less is the full tie-break chain; it must be total and
	// deterministic so that input order never influences selection.
	less func(a, b *procState, opt runOptions) bool
	// preempts reports whether a newly admitted challenger evicts the
	// running process. nil means non-preemptive (quantum expiry aside).
	preempts    func(challenger, running *procState, opt runOptions) bool
	usesQuantum bool
}

// Selection comparators. Ascending unless noted; every chain ends on the
// process ID so ordering is total.

func fcfsLess(a, b *procState, _ runOptions) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

func sjfLess(a, b *procState, _ runOptions) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

func srtLess(a, b *procState, _ runOptions) bool {
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

func fcfsPriorityLess(a, b *procState, opt runOptions) bool {
	if a.Priority != b.Priority {
		return opt.betterPriority(a.Priority, b.Priority)
	}
	if a.readyStateTime != b.readyStateTime {
		return a.readyStateTime < b.readyStateTime
	}
	return a.ID < b.ID
}

func sjfPriorityLess(a, b *procState, opt runOptions) bool {
	if a.Priority != b.Priority {
		return opt.betterPriority(a.Priority, b.Priority)
	}
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

// roundRobinLess orders by ready-state time, then most-recent arrival
// first. The reversed arrival tie-break is deliberate: it matches the
// documented solver behavior, not the textbook convention.
func roundRobinLess(a, b *procState, _ runOptions) bool {
	if a.readyStateTime != b.readyStateTime {
		return a.readyStateTime < b.readyStateTime
	}
	if a.Arrival != b.Arrival {
		return a.Arrival > b.Arrival
	}
	return a.ID < b.ID
}

func roundRobinPriorityLess(a, b *procState, opt runOptions) bool {
	if a.Priority != b.Priority {
		return opt.betterPriority(a.Priority, b.Priority)
	}
	return roundRobinLess(a, b, opt)
}

// Preemption predicates. All triggers are strict: an equal key never
// preempts.

func srtPreempts(challenger, running *procState, _ runOptions) bool {
	return challenger.remaining < running.remaining
}

func priorityPreempts(challenger, running *procState, opt runOptions) bool {
	return opt.betterPriority(challenger.Priority, running.Priority)
}

// sjfPriorityPreempts also fires on equal priority when the challenger's
// original burst is strictly smaller. Original burst, not remaining: the
// comparison must not drift as the running process consumes CPU.
func sjfPriorityPreempts(challenger, running *procState, opt runOptions) bool {
	if opt.betterPriority(challenger.Priority, running.Priority) {
		return true
	}
	return challenger.Priority == running.Priority && challenger.Burst < running.Burst
}

// schedulingPolicies is the registry, in listing order.
var schedulingPolicies = []*schedulingPolicy{
	{id: "fcfs", name: "FCFS", less: fcfsLess},
	{id: "fcfs-priority", name: "FCFS with Priority", less: fcfsPriorityLess, preempts: priorityPreempts},
	{id: "sjf", name: "SJF", less: sjfLess},
	{id: "sjf-priority", name: "SJF with Priority", less: sjfPriorityLess, preempts: sjfPriorityPreempts},
	{id: "srt", name: "SRT", less: srtLess, preempts: srtPreempts},
	{id: "round-robin", name: "Round Robin", less: roundRobinLess, usesQuantum: true},
	{id: "round-robin-priority", name: "Round Robin with Priority", less: roundRobinPriorityLess, preempts: priorityPreempts, usesQuantum: true},
}

// ListSchedulingPolicies returns descriptors for every scheduling policy
// in stable listing order.
func ListSchedulingPolicies() []PolicyDescriptor {
	out := make([]PolicyDescriptor, len(schedulingPolicies))
	for i, p := range schedulingPolicies {
		out[i] = PolicyDescriptor{ID: p.id, Name: p.name}
	}
	return out
}

func newSchedulingPolicy(id string) (*schedulingPolicy, error) {
	for _, p := range schedulingPolicies {
		if p.id == id {
			return p, nil
		}
	}
	return nil, UnknownPolicyError{Kind: "scheduling", ID: id}
}
