package nav

import "fmt"

// DefaultMobileBreakpoint is the viewport width at or below which connector
// slots are dropped from every group.
const DefaultMobileBreakpoint = 768

// SlotKind distinguishes content cards from the connectors placed between them.
type SlotKind int

const (
	SlotCard SlotKind = iota
	SlotConnector
)

func (k SlotKind) String() string {
	switch k {
	case SlotCard:
		return "card"
	case SlotConnector:
		return "connector"
	default:
		return fmt.Sprintf("slot(%d)", int(k))
	}
}

// GroupSpec is the static, config-time description of one group.
type GroupSpec struct {
	Horizontal bool
	Slots      []SlotKind
}

// Group is the measured form of a GroupSpec for the current viewport.
type Group struct {
	Index      int
	Horizontal bool
	Kinds      []SlotKind
	Widths     []float64
}

// SlotCount returns the number of navigable slots in the group.
func (g Group) SlotCount() int {
	return len(g.Kinds)
}

// Measurer reports slot widths for a group after connector exclusion.
type Measurer interface {
	MeasureSlotWidths(group int, kinds []SlotKind, viewportWidth float64) []float64
}

// ProportionalMeasurer sizes cards to the full viewport and connectors to a
// fraction of it.
type ProportionalMeasurer struct {
	ConnectorRatio float64
}

// DefaultConnectorRatio is the share of the viewport a connector occupies.
const DefaultConnectorRatio = 0.2

func (p ProportionalMeasurer) MeasureSlotWidths(_ int, kinds []SlotKind, viewportWidth float64) []float64 {
	ratio := p.ConnectorRatio
	if ratio <= 0 {
		ratio = DefaultConnectorRatio
	}
	widths := make([]float64, len(kinds))
	for i, kind := range kinds {
		if kind == SlotConnector {
			widths[i] = viewportWidth * ratio
			continue
		}
		widths[i] = viewportWidth
	}
	return widths
}

// Registry holds the measured groups for the current viewport.
type Registry struct {
	specs      []GroupSpec
	groups     []Group
	measurer   Measurer
	breakpoint float64
	width      float64
}

// NewRegistry builds a registry from group specs. A nil measurer falls back to
// ProportionalMeasurer and a breakpoint <= 0 to DefaultMobileBreakpoint. The
// registry starts measured against a zero-width viewport; call Rebuild once
// the real width is known.
func NewRegistry(specs []GroupSpec, measurer Measurer, breakpoint float64) *Registry {
	if measurer == nil {
		measurer = ProportionalMeasurer{}
	}
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	r := &Registry{
		specs:      cloneSpecs(specs),
		measurer:   measurer,
		breakpoint: breakpoint,
	}
	r.Rebuild(0)
	return r
}

// Rebuild recomputes slot counts and widths for the given viewport width.
func (r *Registry) Rebuild(viewportWidth float64) {
	r.width = viewportWidth
	mobile := r.IsMobile(viewportWidth)
	groups := make([]Group, len(r.specs))
	for i, spec := range r.specs {
		kinds := make([]SlotKind, 0, len(spec.Slots))
		for _, kind := range spec.Slots {
			if mobile && kind == SlotConnector {
				continue
			}
			kinds = append(kinds, kind)
		}
		widths := r.measurer.MeasureSlotWidths(i, kinds, viewportWidth)
		if len(widths) != len(kinds) {
			panic(fmt.Sprintf("nav: measurer returned %d widths for %d slots in group %d", len(widths), len(kinds), i))
		}
		groups[i] = Group{Index: i, Horizontal: spec.Horizontal, Kinds: kinds, Widths: widths}
	}
	r.groups = groups
}

// SetSpecs replaces the group specs and re-measures against the last width.
func (r *Registry) SetSpecs(specs []GroupSpec) {
	r.specs = cloneSpecs(specs)
	r.Rebuild(r.width)
}

// IsMobile reports whether the width sits at or below the breakpoint.
func (r *Registry) IsMobile(viewportWidth float64) bool {
	return viewportWidth <= r.breakpoint
}

// Breakpoint returns the mobile breakpoint in viewport units.
func (r *Registry) Breakpoint() float64 {
	return r.breakpoint
}

// ViewportWidth returns the width used by the last Rebuild.
func (r *Registry) ViewportWidth() float64 {
	return r.width
}

func (r *Registry) GroupCount() int {
	return len(r.groups)
}

// SectionCount is the number of vertical sections the registry implies:
// start, intro and body per group, end.
func (r *Registry) SectionCount() int {
	return 2*len(r.groups) + 2
}

func (r *Registry) Group(g int) Group {
	r.mustGroup(g)
	return r.groups[g]
}

func (r *Registry) SlotCount(g int) int {
	r.mustGroup(g)
	return r.groups[g].SlotCount()
}

func (r *Registry) HasHorizontal(g int) bool {
	r.mustGroup(g)
	return r.groups[g].Horizontal
}

// SlotWidths returns a copy of the group's measured slot widths.
func (r *Registry) SlotWidths(g int) []float64 {
	r.mustGroup(g)
	return append([]float64(nil), r.groups[g].Widths...)
}

// SlotKinds returns a copy of the group's slot kinds after exclusion.
func (r *Registry) SlotKinds(g int) []SlotKind {
	r.mustGroup(g)
	return append([]SlotKind(nil), r.groups[g].Kinds...)
}

// lastSlot is the highest valid horizontal index, 0 for empty groups.
func (r *Registry) lastSlot(g int) int {
	if n := r.SlotCount(g); n > 0 {
		return n - 1
	}
	return 0
}

func (r *Registry) mustGroup(g int) {
	if g < 0 || g >= len(r.groups) {
		panic(fmt.Sprintf("nav: group %d out of range [0,%d)", g, len(r.groups)))
	}
}

func cloneSpecs(specs []GroupSpec) []GroupSpec {
	dup := make([]GroupSpec, len(specs))
	for i, spec := range specs {
		dup[i] = GroupSpec{Horizontal: spec.Horizontal, Slots: append([]SlotKind(nil), spec.Slots...)}
	}
	return dup
}
