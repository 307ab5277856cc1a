package sim

// Process describes one schedulable unit as supplied by the caller.
// The engine never mutates caller records; each run works on private
// copies. Burst is the original total CPU need and stays fixed for the
// whole run — policies that compare "original burst" read this field,
// never the remaining count.
type Process struct {
	ID       string
	Priority int
	Arrival  int
	Burst    int
}

// procState is the private working copy of one Process during a run.
// remaining is monotonically non-increasing and reaches exactly 0 at
// completion. readyStateTime is re-stamped whenever the process becomes
// eligible for re-selection (arrival, preemption, quantum expiry).
type procState struct {
	Process
	remaining      int
	readyStateTime int
	firstStart     int // 1-based time unit of first execution; 0 = never ran
	completion     int // exclusive end time; 0 = not finished
}

// validateProcesses rejects duplicate IDs and out-of-range fields.
// An empty list is valid and yields an empty timeline downstream.
func validateProcesses(processes []Process) error {
	seen := make(map[string]bool, len(processes))
	for _, p := range processes {
		if p.ID == "" {
			return ValidationError{Field: "id", Reason: "must not be empty"}
		}
		if seen[p.ID] {
			return ValidationError{Field: "id", Reason: "duplicate process id " + p.ID}
		}
		seen[p.ID] = true
		if p.Arrival < 1 {
			return ValidationError{Field: "arrival", Reason: "must be >= 1 for process " + p.ID}
		}
		if p.Burst < 1 {
			return ValidationError{Field: "burst", Reason: "must be >= 1 for process " + p.ID}
		}
	}
	return nil
}

// newRunStates builds the private working copies for one run.
func newRunStates(processes []Process) []*procState {
	states := make([]*procState, len(processes))
	for i, p := range processes {
		states[i] = &procState{
			Process:        p,
			remaining:      p.Burst,
			readyStateTime: p.Arrival,
		}
	}
	return states
}
