package paging

// optimalReplacer evicts the resident page whose next future reference
// is farthest away. A page never referenced again, or an unloaded frame,
// counts as infinitely distant; ties resolve to the lowest frame ID.
// Hits have no side effect — the policy is pure lookahead.
type optimalReplacer struct{}

func (optimalReplacer) init([]*frameState) {}

func (optimalReplacer) onHit([]*frameState, int) {}

func (optimalReplacer) selectVictim(frames []*frameState, future []string) int {
	victim := -1
	victimDist := -1
	for i, f := range frames {
		dist := len(future) + 1 // never referenced again
		if f.page != "" {
			for j, p := range future {
				if p == f.page {
					dist = j + 1
					break
				}
			}
		}
		// frames are in ascending ID order, so strict > keeps the
		// lowest ID among equal distances
		if dist > victimDist {
			victim = i
			victimDist = dist
		}
	}
	return victim
}

func (optimalReplacer) onLoad([]*frameState, int) {}
