package sim

import "github.com/dianbrown/QuantumQueue/sim/trace"

// ProcessMetrics aggregates the per-process statistics derived from a
// finished timeline. A process cut off by the horizon keeps its Start
// and Responsiveness (both known) but zero Waiting/Turnaround/Completion
// and Completed false.
type ProcessMetrics struct {
	Start          int // first time unit the process ran; 0 = never ran
	Completion     int // exclusive end time; 0 = not finished
	Waiting        int
	Turnaround     int
	Responsiveness int
	Completed      bool
}

// Averages holds the arithmetic means over all input processes.
type Averages struct {
	Waiting        float64
	Turnaround     float64
	Responsiveness float64
}

// SchedulingResult is the immutable bundle handed back to the caller:
// policy identity, timeline, per-process metrics, and averages. Every
// "check my answer" comparison is byte-for-byte against this value.
type SchedulingResult struct {
	PolicyID   string
	PolicyName string
	Timeline   trace.Timeline
	PerProcess map[string]ProcessMetrics
	Averages   Averages
	Truncated  bool
}

// metricsFor derives one process's metrics from its final run state.
// Metrics are computed only after the full timeline is finalized, never
// incrementally: turnaround = completion - arrival, waiting clamps at 0,
// responsiveness = first start - arrival.
func metricsFor(s *procState) ProcessMetrics {
	m := ProcessMetrics{Start: s.firstStart}
	if s.firstStart > 0 {
		m.Responsiveness = s.firstStart - s.Arrival
	}
	if s.completion > 0 {
		m.Completed = true
		m.Completion = s.completion
		m.Turnaround = s.completion - s.Arrival
		if w := m.Turnaround - s.Burst; w > 0 {
			m.Waiting = w
		}
	}
	return m
}

func perProcessMetrics(states []*procState) map[string]ProcessMetrics {
	out := make(map[string]ProcessMetrics, len(states))
	for _, s := range states {
		out[s.ID] = metricsFor(s)
	}
	return out
}

func averageMetrics(states []*procState) Averages {
	if len(states) == 0 {
		return Averages{}
	}
	var a Averages
	for _, s := range states {
		m := metricsFor(s)
		a.Waiting += float64(m.Waiting)
		a.Turnaround += float64(m.Turnaround)
		a.Responsiveness += float64(m.Responsiveness)
	}
	n := float64(len(states))
	a.Waiting /= n
	a.Turnaround /= n
	a.Responsiveness /= n
	return a
}
