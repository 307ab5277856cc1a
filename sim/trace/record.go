// Package trace provides the pure record types emitted by the simulation
// engines: scheduling timelines, page-access logs, and per-step frame
// snapshots. This package has no dependencies on sim/ or sim/paging/ — it
// stores pure data types.
package trace

// MarkerReadyState flags a slot at whose time unit at least one process
// re-entered the ready state (quantum expiry or preemption).
const MarkerReadyState = "ready-state"

// Slot captures one discrete time unit of a scheduling timeline.
// Time is 1-based. Occupant is the running process ID, or empty for an
// idle unit.
type Slot struct {
	Time     int
	Occupant string
	Marker   string
}

// Timeline is the ordered slot sequence produced by one scheduling run.
// Index i holds time unit i+1.
type Timeline []Slot

// Occupied returns the number of non-idle slots.
func (tl Timeline) Occupied() int {
	n := 0
	for _, s := range tl {
		if s.Occupant != "" {
			n++
		}
	}
	return n
}

// OccupantAt returns the process ID running at the given 1-based time
// unit, or empty if the unit is idle or beyond the timeline.
func (tl Timeline) OccupantAt(time int) string {
	if time < 1 || time > len(tl) {
		return ""
	}
	return tl[time-1].Occupant
}

// Occupants returns the occupant column as a plain slice, one entry per
// time unit, empty strings for idle units.
func (tl Timeline) Occupants() []string {
	out := make([]string, len(tl))
	for i, s := range tl {
		out[i] = s.Occupant
	}
	return out
}
