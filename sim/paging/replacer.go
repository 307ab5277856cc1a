package paging

import (
	"github.com/dianbrown/QuantumQueue/sim"
	"github.com/dianbrown/QuantumQueue/sim/trace"
)

// replacer is the policy-specific part of the frame-state machine. The
// common loop in run() owns hit detection, page installation, and
// logging; the policy owns ordering state and reference-bit effects.
type replacer interface {
	init(frames []*frameState)
	onHit(frames []*frameState, idx int)
	// selectVictim returns the index of the frame to replace. future
	// holds the references after the current one (Optimal lookahead).
	selectVictim(frames []*frameState, future []string) int
	onLoad(frames []*frameState, idx int)
}

// ReplacementResult is the immutable bundle for one replacement run:
// policy identity, access log, per-step frame snapshots, and hit/fault
// statistics.
type ReplacementResult struct {
	PolicyID   string
	PolicyName string
	Log        trace.AccessLog
	Snapshots  []trace.Snapshot
	Hits       int
	Faults     int
	HitRatio   float64
	FaultRatio float64
}

type replacementPolicy struct {
	id   string
	name string
	make func() replacer
}

// replacementPolicies is the registry, in listing order.
var replacementPolicies = []replacementPolicy{
	{id: "fifo", name: "FIFO", make: func() replacer { return &fifoReplacer{} }},
	{id: "lru", name: "LRU", make: func() replacer { return &lruReplacer{} }},
	{id: "optimal", name: "Optimal", make: func() replacer { return optimalReplacer{} }},
	{id: "second-chance", name: "Second Chance", make: func() replacer { return &secondChanceReplacer{} }},
	{id: "clock", name: "Clock", make: func() replacer { return &clockReplacer{} }},
}

// ListReplacementPolicies returns descriptors for every replacement
// policy in stable listing order.
func ListReplacementPolicies() []sim.PolicyDescriptor {
	out := make([]sim.PolicyDescriptor, len(replacementPolicies))
	for i, p := range replacementPolicies {
		out[i] = sim.PolicyDescriptor{ID: p.id, Name: p.name}
	}
	return out
}

func newReplacementPolicy(id string) (replacementPolicy, error) {
	for _, p := range replacementPolicies {
		if p.id == id {
			return p, nil
		}
	}
	return replacementPolicy{}, sim.UnknownPolicyError{Kind: "replacement", ID: id}
}

// SimulateReplacement runs one policy over the page-reference sequence
// and returns the finished, immutable result. Caller slices are never
// mutated; an empty sequence yields an empty-but-valid result.
func SimulateReplacement(policyID string, frames []Frame, sequence []string) (*ReplacementResult, error) {
	policy, err := newReplacementPolicy(policyID)
	if err != nil {
		return nil, err
	}
	if err := validateFrames(frames); err != nil {
		return nil, err
	}

	states := newFrameStates(frames)
	impl := policy.make()
	impl.init(states)
	log, snapshots := run(impl, states, sequence)

	res := &ReplacementResult{
		PolicyID:   policy.id,
		PolicyName: policy.name,
		Log:        log,
		Snapshots:  snapshots,
		Hits:       log.Hits(),
		Faults:     log.Faults(),
	}
	if len(log) > 0 {
		res.HitRatio = float64(res.Hits) / float64(len(log))
		res.FaultRatio = float64(res.Faults) / float64(len(log))
	}
	return res, nil
}

// run advances the frame-state machine through the reference sequence:
// resident page is a hit plus the policy's hit effect; otherwise the
// policy picks a victim, the page is installed, and the policy applies
// its load effect. Each access also captures a snapshot of all frames in
// ascending ID order.
func run(impl replacer, frames []*frameState, sequence []string) (trace.AccessLog, []trace.Snapshot) {
	log := make(trace.AccessLog, 0, len(sequence))
	snapshots := make([]trace.Snapshot, 0, len(sequence))

	for pos, page := range sequence {
		access := trace.Access{Time: pos + 1, Page: page, VictimFrame: trace.NoVictim}
		if idx := resident(frames, page); idx >= 0 {
			access.Hit = true
			impl.onHit(frames, idx)
		} else {
			idx := impl.selectVictim(frames, sequence[pos+1:])
			access.VictimFrame = frames[idx].id
			frames[idx].page = page
			impl.onLoad(frames, idx)
		}
		log = append(log, access)

		snap := make(trace.Snapshot, len(frames))
		for i, f := range frames {
			snap[i] = f.page
		}
		snapshots = append(snapshots, snap)
	}
	return log, snapshots
}
