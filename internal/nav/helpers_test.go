package nav

const wideViewport = 1000.0

type fixedViewport struct {
	width  float64
	height float64
}

func (v *fixedViewport) Width() float64  { return v.width }
func (v *fixedViewport) Height() float64 { return v.height }

// cardGroups builds count horizontal groups of slots cards each.
func cardGroups(count, slots int) []GroupSpec {
	specs := make([]GroupSpec, count)
	for i := range specs {
		kinds := make([]SlotKind, slots)
		specs[i] = GroupSpec{Horizontal: true, Slots: kinds}
	}
	return specs
}

func newTestRegistry(count, slots int) *Registry {
	reg := NewRegistry(cardGroups(count, slots), nil, 0)
	reg.Rebuild(wideViewport)
	return reg
}

// forwardStates walks Next from the zero position until the end section and
// returns a snapshot of every state visited, the end section included.
func forwardStates(reg *Registry) []*Position {
	pos := NewPosition(reg.GroupCount())
	states := []*Position{pos.Clone()}
	for pos.Vertical != reg.SectionCount()-1 {
		pos.Next(reg)
		states = append(states, pos.Clone())
	}
	return states
}
