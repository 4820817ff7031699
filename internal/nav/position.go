package nav

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports a jump target outside [0, S-1].
var ErrIndexOutOfRange = errors.New("section index out of range")

// UpdateKind says how much of the view a transition invalidated.
type UpdateKind int

const (
	// UpdateFull covers vertical movement and anything that may touch
	// several groups.
	UpdateFull UpdateKind = iota
	// UpdateHorizontal covers a slot move inside the current group body.
	UpdateHorizontal
)

func (k UpdateKind) String() string {
	if k == UpdateHorizontal {
		return "horizontal"
	}
	return "full"
}

// Update describes the effect of one transition.
type Update struct {
	Kind    UpdateKind
	Group   int // group whose horizontal offset must be recomputed, -1 if none
	Wrapped bool
}

// Position is the compound navigation state: the vertical section index and
// a resume slot per group.
type Position struct {
	Vertical   int
	Horizontal []int
}

// NewPosition returns the zero position for groupCount groups.
func NewPosition(groupCount int) *Position {
	return &Position{Horizontal: make([]int, groupCount)}
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	return &Position{Vertical: p.Vertical, Horizontal: append([]int(nil), p.Horizontal...)}
}

// Equal reports whether two positions hold the same indices.
func (p *Position) Equal(other *Position) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Vertical != other.Vertical || len(p.Horizontal) != len(other.Horizontal) {
		return false
	}
	for i := range p.Horizontal {
		if p.Horizontal[i] != other.Horizontal[i] {
			return false
		}
	}
	return true
}

// Slot returns the stored horizontal index for group g.
func (p *Position) Slot(g int) int {
	if g < 0 || g >= len(p.Horizontal) {
		return 0
	}
	return p.Horizontal[g]
}

// Role derives the role of the current vertical index.
func (p *Position) Role(reg *Registry) Role {
	return RoleOf(p.Vertical, reg.SectionCount())
}

// Reset returns to the first section with every group rewound.
func (p *Position) Reset() {
	p.Vertical = 0
	for i := range p.Horizontal {
		p.Horizontal[i] = 0
	}
}

// Next advances one step.
func (p *Position) Next(reg *Registry) Update {
	last := reg.SectionCount() - 1
	if p.Vertical >= last {
		p.Reset()
		return Update{Kind: UpdateFull, Group: -1, Wrapped: true}
	}
	role := p.Role(reg)
	switch role.Kind {
	case RoleGroupIntro:
		p.Vertical++
		p.Horizontal[role.Group] = 0
		return Update{Kind: UpdateFull, Group: role.Group}
	case RoleGroupBody:
		if p.Horizontal[role.Group] < reg.SlotCount(role.Group)-1 {
			p.Horizontal[role.Group]++
			return Update{Kind: UpdateHorizontal, Group: role.Group}
		}
		p.Vertical++
		return Update{Kind: UpdateFull, Group: -1}
	default:
		p.Vertical++
		return Update{Kind: UpdateFull, Group: -1}
	}
}

// Prev retreats one step.
func (p *Position) Prev(reg *Registry) Update {
	if p.Vertical <= 0 {
		p.Vertical = reg.SectionCount() - 1
		return Update{Kind: UpdateFull, Group: -1, Wrapped: true}
	}
	if RoleOf(p.Vertical-1, reg.SectionCount()).Standalone() {
		p.Vertical--
		return Update{Kind: UpdateFull, Group: -1}
	}
	role := p.Role(reg)
	switch role.Kind {
	case RoleGroupBody:
		if p.Horizontal[role.Group] > 0 {
			p.Horizontal[role.Group]--
			return Update{Kind: UpdateHorizontal, Group: role.Group}
		}
		p.Vertical--
		return Update{Kind: UpdateFull, Group: -1}
	default:
		// Intro of group g, or the end section: step back into the body of
		// the group before it, entering from its last slot.
		p.Vertical--
		prev := RoleOf(p.Vertical, reg.SectionCount()).Group
		p.Horizontal[prev] = reg.lastSlot(prev)
		return Update{Kind: UpdateFull, Group: prev}
	}
}

// JumpTo moves directly to section v. The owning group's slot is kept so the
// group resumes where it was left.
func (p *Position) JumpTo(reg *Registry, v int) (Update, error) {
	if v < 0 || v >= reg.SectionCount() {
		return Update{}, fmt.Errorf("jump to %d of %d sections: %w", v, reg.SectionCount(), ErrIndexOutOfRange)
	}
	p.Vertical = v
	return Update{Kind: UpdateFull, Group: RoleOf(v, reg.SectionCount()).Group}, nil
}

// Clamp pulls every index back into range after the registry shrank or grew.
// It reports whether anything changed.
func (p *Position) Clamp(reg *Registry) bool {
	changed := false
	groups := reg.GroupCount()
	if len(p.Horizontal) != groups {
		resized := make([]int, groups)
		copy(resized, p.Horizontal)
		p.Horizontal = resized
		changed = true
	}
	for g := range p.Horizontal {
		if limit := reg.lastSlot(g); p.Horizontal[g] > limit {
			p.Horizontal[g] = limit
			changed = true
		}
		if p.Horizontal[g] < 0 {
			p.Horizontal[g] = 0
			changed = true
		}
	}
	if last := reg.SectionCount() - 1; p.Vertical > last {
		p.Vertical = last
		changed = true
	}
	if p.Vertical < 0 {
		p.Vertical = 0
		changed = true
	}
	return changed
}
