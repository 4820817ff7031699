package nav

// ActiveSection is the vertical index to flag as active.
func ActiveSection(p *Position) int {
	return p.Vertical
}

// ActiveHeaderIndex maps the position onto a header control. The start and
// end sections own their controls; both sections of a group share the
// group's odd anchor index.
func ActiveHeaderIndex(p *Position, sectionCount int) int {
	v := p.Vertical
	if v == 0 || v == sectionCount-1 {
		return v
	}
	return (v-1)/2*2 + 1
}

// HeaderAnchors lists the jump targets of the header controls in display
// order: start, one anchor per group, end.
func HeaderAnchors(groupCount int) []int {
	anchors := make([]int, 0, groupCount+2)
	anchors = append(anchors, 0)
	for g := 0; g < groupCount; g++ {
		anchors = append(anchors, IntroIndex(g))
	}
	return append(anchors, 2*groupCount+1)
}

// SlotOffsets returns the left edge of each slot within the strip.
func SlotOffsets(widths []float64) []float64 {
	offsets := make([]float64, len(widths))
	cumulative := 0.0
	for i, w := range widths {
		offsets[i] = cumulative
		cumulative += w
	}
	return offsets
}

// HorizontalOffset is the translation that centers slot index within a
// viewport of the given width. The result is not clamped: it goes negative
// near the start of the strip and may pass the strip's end. An empty strip
// or an index outside it yields 0.
func HorizontalOffset(widths []float64, index int, viewportWidth float64) float64 {
	if index < 0 || index >= len(widths) {
		return 0
	}
	offsets := SlotOffsets(widths)
	center := offsets[index] + widths[index]/2
	return center - viewportWidth/2
}

// VerticalOffset is the translation that brings section v into view.
func VerticalOffset(v int, viewportHeight float64) float64 {
	return float64(v) * viewportHeight
}
