package sim

// Default option values. A 32-unit horizon matches the solver grid the
// results are compared against.
const (
	DefaultQuantum = 2
	DefaultHorizon = 32
)

// Options tunes a scheduling run. The zero value selects every default.
// HigherIsBetter is a pointer so "not set" is distinct from an explicit
// false (nil means true: larger priority numbers win), following the
// pointer-means-unset convention of the YAML scenario config.
type Options struct {
	Quantum        int   // Round-Robin family time slice; 0 = DefaultQuantum
	HigherIsBetter *bool // priority direction; nil = true
	Horizon        int   // max simulated time units; 0 = DefaultHorizon
}

// runOptions is Options with defaults applied and fields validated.
type runOptions struct {
	quantum        int
	horizon        int
	higherIsBetter bool
}

func (o Options) normalize() (runOptions, error) {
	r := runOptions{
		quantum:        o.Quantum,
		horizon:        o.Horizon,
		higherIsBetter: true,
	}
	if r.quantum == 0 {
		r.quantum = DefaultQuantum
	}
	if r.horizon == 0 {
		r.horizon = DefaultHorizon
	}
	if o.HigherIsBetter != nil {
		r.higherIsBetter = *o.HigherIsBetter
	}
	if r.quantum < 1 {
		return runOptions{}, ValidationError{Field: "quantum", Reason: "must be >= 1"}
	}
	if r.horizon < 1 {
		return runOptions{}, ValidationError{Field: "horizon", Reason: "must be >= 1"}
	}
	return r, nil
}

// betterPriority reports whether priority a strictly beats b under the
// configured direction.
func (r runOptions) betterPriority(a, b int) bool {
	if r.higherIsBetter {
		return a > b
	}
	return a < b
}
