package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadOrder_SortsByLoadTimeThenID(t *testing.T) {
	frames := newFrameStates([]Frame{
		{ID: 0, LoadTime: 3},
		{ID: 1, LoadTime: 1},
		{ID: 2, LoadTime: 3},
	})

	// frame 1 loaded first; frames 0 and 2 tie on load time and fall
	// back to ID order
	assert.Equal(t, []int{1, 0, 2}, loadOrder(frames))
}

func TestNewFrameStates_SortedByIDWithBitsSet(t *testing.T) {
	frames := newFrameStates([]Frame{
		{ID: 2, LoadTime: 1, Page: "c"},
		{ID: 0, LoadTime: 2, Page: "a"},
		{ID: 1, LoadTime: 3, Page: "b"},
	})

	ids := []int{frames[0].id, frames[1].id, frames[2].id}
	assert.Equal(t, []int{0, 1, 2}, ids)
	for _, f := range frames {
		assert.True(t, f.refBit)
	}
}

func TestResident_ScansAscendingIDOrder(t *testing.T) {
	frames := newFrameStates([]Frame{
		{ID: 0, LoadTime: 1, Page: "x"},
		{ID: 1, LoadTime: 2, Page: "y"},
		{ID: 2, LoadTime: 3},
	})

	assert.Equal(t, 1, resident(frames, "y"))
	assert.Equal(t, -1, resident(frames, "z"))
	// an unloaded frame never matches, even against an empty page id
	assert.Equal(t, -1, resident(frames, ""))
}
