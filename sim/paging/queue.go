package paging

import "github.com/gammazero/deque"

// The queue-discipline policies keep an explicit deque of frame indices:
// head is the next victim candidate, tail is the most recently loaded
// (or, for LRU, most recently touched) frame. The ordering rule is a
// first-class structure, never an implicit container property.

// fifoReplacer evicts the frame loaded longest ago. Hits leave the
// queue untouched.
type fifoReplacer struct {
	q deque.Deque[int]
}

func (r *fifoReplacer) init(frames []*frameState) {
	for _, i := range loadOrder(frames) {
		r.q.PushBack(i)
	}
}

func (r *fifoReplacer) onHit([]*frameState, int) {}

func (r *fifoReplacer) selectVictim(_ []*frameState, _ []string) int {
	return r.q.PopFront()
}

func (r *fifoReplacer) onLoad(_ []*frameState, idx int) {
	r.q.PushBack(idx)
}

// lruReplacer evicts the least recently used frame: every access, hit
// or load, moves the touched frame to the tail.
type lruReplacer struct {
	q deque.Deque[int]
}

func (r *lruReplacer) init(frames []*frameState) {
	for _, i := range loadOrder(frames) {
		r.q.PushBack(i)
	}
}

func (r *lruReplacer) onHit(_ []*frameState, idx int) {
	pos := r.q.Index(func(i int) bool { return i == idx })
	r.q.Remove(pos)
	r.q.PushBack(idx)
}

func (r *lruReplacer) selectVictim(_ []*frameState, _ []string) int {
	return r.q.PopFront()
}

func (r *lruReplacer) onLoad(_ []*frameState, idx int) {
	r.q.PushBack(idx)
}

// secondChanceReplacer is FIFO with reference bits. A hit sets the
// frame's bit without moving it. On a fault, if every bit is set they
// are all cleared first; then the sweep starts at the head: a set bit is
// cleared and the frame rotates to the tail, and the first clear bit
// marks the victim. The loaded frame's bit is set and it joins the tail.
type secondChanceReplacer struct {
	q deque.Deque[int]
}

func (r *secondChanceReplacer) init(frames []*frameState) {
	for _, i := range loadOrder(frames) {
		r.q.PushBack(i)
	}
}

func (r *secondChanceReplacer) onHit(frames []*frameState, idx int) {
	frames[idx].refBit = true
}

func (r *secondChanceReplacer) selectVictim(frames []*frameState, _ []string) int {
	all := true
	for i := 0; i < r.q.Len(); i++ {
		if !frames[r.q.At(i)].refBit {
			all = false
			break
		}
	}
	if all {
		for i := 0; i < r.q.Len(); i++ {
			frames[r.q.At(i)].refBit = false
		}
	}
	for {
		head := r.q.Front()
		if !frames[head].refBit {
			return r.q.PopFront()
		}
		frames[head].refBit = false
		r.q.Rotate(1)
	}
}

func (r *secondChanceReplacer) onLoad(frames []*frameState, idx int) {
	frames[idx].refBit = true
	r.q.PushBack(idx)
}
