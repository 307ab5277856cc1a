package trace

// NoVictim is the VictimFrame value for an access that replaced nothing.
const NoVictim = -1

// Access captures a single page-reference outcome.
// Time is the 1-based position of the reference in the sequence.
// VictimFrame is the ID of the frame whose page was replaced, or NoVictim
// on a hit.
type Access struct {
	Time        int
	Page        string
	Hit         bool
	VictimFrame int
}

// AccessLog collects accesses in reference order.
type AccessLog []Access

// Hits returns the number of hit accesses.
func (l AccessLog) Hits() int {
	n := 0
	for _, a := range l {
		if a.Hit {
			n++
		}
	}
	return n
}

// Faults returns the number of fault accesses.
func (l AccessLog) Faults() int {
	return len(l) - l.Hits()
}

// Snapshot records the resident page of every frame, in ascending
// frame-ID order, after one access. Empty string marks an unloaded frame.
type Snapshot []string
