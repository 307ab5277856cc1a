// Package paging provides the deterministic page-replacement engine:
// five policy variants (FIFO, LRU, Optimal, Second-Chance, Clock) over a
// common frame-state machine. Like the scheduling engine it is a pure
// function of its input: caller records are copied, nothing is logged,
// and identical inputs produce byte-identical results.
package paging

import (
	"fmt"
	"sort"

	"github.com/dianbrown/QuantumQueue/sim"
)

// Frame describes one memory frame as supplied by the caller. LoadTime
// establishes the initial FIFO/LRU/Clock ordering. Page is the initially
// resident page; empty means the frame starts unloaded.
type Frame struct {
	ID       int
	LoadTime int
	Page     string
}

// frameState is the private working copy of one Frame during a run.
// The reference bit is used only by Second-Chance and Clock and
// initializes to set.
type frameState struct {
	id       int
	loadTime int
	page     string
	refBit   bool
}

func validateFrames(frames []Frame) error {
	if len(frames) == 0 {
		return sim.ValidationError{Field: "frames", Reason: "at least one frame is required"}
	}
	seen := make(map[int]bool, len(frames))
	for _, f := range frames {
		if seen[f.ID] {
			return sim.ValidationError{Field: "frames", Reason: fmt.Sprintf("duplicate frame id %d", f.ID)}
		}
		seen[f.ID] = true
	}
	return nil
}

// newFrameStates builds working copies sorted by ascending frame ID,
// the order in which snapshots and hit scans read the frames.
func newFrameStates(frames []Frame) []*frameState {
	states := make([]*frameState, len(frames))
	for i, f := range frames {
		states[i] = &frameState{id: f.ID, loadTime: f.LoadTime, page: f.Page, refBit: true}
	}
	sort.SliceStable(states, func(i, j int) bool { return states[i].id < states[j].id })
	return states
}

// loadOrder returns frame indices sorted by ascending load time, ties by
// frame ID. This seeds the FIFO/LRU/Second-Chance queues.
func loadOrder(frames []*frameState) []int {
	order := make([]int, len(frames))
	for i := range frames {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := frames[order[i]], frames[order[j]]
		if a.loadTime != b.loadTime {
			return a.loadTime < b.loadTime
		}
		return a.id < b.id
	})
	return order
}

// resident returns the index of the frame holding page, or -1. Frames
// are scanned in ascending ID order so duplicate residencies resolve
// deterministically.
func resident(frames []*frameState, page string) int {
	for i, f := range frames {
		if f.page != "" && f.page == page {
			return i
		}
	}
	return -1
}
