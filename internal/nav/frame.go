package nav

// Frame is a Renderer that keeps the most recent value of every push. The UI
// draws from it and tests inspect it.
type Frame struct {
	VerticalOffset    float64
	HorizontalOffsets map[int]float64
	ActiveSection     int
	ActiveSlots       map[int]int
	ActiveHeader      int
	Percent           float64

	// Pushes counts render calls per kind.
	VerticalPushes   int
	HorizontalPushes int
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{
		HorizontalOffsets: make(map[int]float64),
		ActiveSlots:       make(map[int]int),
	}
}

func (f *Frame) SetVerticalTransform(offset float64) {
	f.VerticalOffset = offset
	f.VerticalPushes++
}

func (f *Frame) SetHorizontalTransform(group int, offset float64) {
	if f.HorizontalOffsets == nil {
		f.HorizontalOffsets = make(map[int]float64)
	}
	f.HorizontalOffsets[group] = offset
	f.HorizontalPushes++
}

func (f *Frame) SetActiveSection(index int) {
	f.ActiveSection = index
}

func (f *Frame) SetActiveSlot(group, index int) {
	if f.ActiveSlots == nil {
		f.ActiveSlots = make(map[int]int)
	}
	f.ActiveSlots[group] = index
}

func (f *Frame) SetActiveHeader(index int) {
	f.ActiveHeader = index
}

func (f *Frame) SetProgressPercent(percent float64) {
	f.Percent = percent
}

// Prune drops per-group entries at or beyond groupCount.
func (f *Frame) Prune(groupCount int) {
	for g := range f.HorizontalOffsets {
		if g >= groupCount {
			delete(f.HorizontalOffsets, g)
		}
	}
	for g := range f.ActiveSlots {
		if g >= groupCount {
			delete(f.ActiveSlots, g)
		}
	}
}
