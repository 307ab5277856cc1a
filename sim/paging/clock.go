package paging

import "sort"

// clockReplacer sweeps a fixed circular order with a pointer instead of
// reordering a queue. The circular order is the highest frame ID first,
// then the rest ascending; the pointer starts at the frame with the
// lowest load time. On the very first fault, or whenever every bit is
// set, all bits reset and the victim is the frame at the pointer;
// otherwise the pointer advances clearing set bits until it lands on a
// clear one. After replacement the victim's bit is set and the pointer
// advances one position.
type clockReplacer struct {
	order      []int // frame indices in circular sweep order
	pointer    int   // position within order
	firstFault bool
}

func (r *clockReplacer) init(frames []*frameState) {
	r.order = make([]int, len(frames))
	for i := range frames {
		r.order[i] = i
	}
	// highest frame ID leads, the rest follow ascending
	sort.SliceStable(r.order, func(i, j int) bool {
		return frames[r.order[i]].id < frames[r.order[j]].id
	})
	if len(r.order) > 1 {
		highest := r.order[len(r.order)-1]
		copy(r.order[1:], r.order[:len(r.order)-1])
		r.order[0] = highest
	}

	// pointer starts at the oldest page: lowest load time, ties to the
	// lowest frame ID
	oldest := 0
	for i := 1; i < len(frames); i++ {
		if frames[i].loadTime < frames[oldest].loadTime {
			oldest = i
		}
	}
	for pos, idx := range r.order {
		if idx == oldest {
			r.pointer = pos
			break
		}
	}
	r.firstFault = true
}

func (r *clockReplacer) onHit(frames []*frameState, idx int) {
	// pointer stays put on a hit
	frames[idx].refBit = true
}

func (r *clockReplacer) selectVictim(frames []*frameState, _ []string) int {
	all := true
	for _, idx := range r.order {
		if !frames[idx].refBit {
			all = false
			break
		}
	}
	pos := r.pointer
	if r.firstFault || all {
		for _, idx := range r.order {
			frames[idx].refBit = false
		}
		r.firstFault = false
	} else {
		for frames[r.order[pos]].refBit {
			frames[r.order[pos]].refBit = false
			pos = (pos + 1) % len(r.order)
		}
	}
	r.pointer = pos
	return r.order[pos]
}

func (r *clockReplacer) onLoad(frames []*frameState, idx int) {
	frames[idx].refBit = true
	r.pointer = (r.pointer + 1) % len(r.order)
}
