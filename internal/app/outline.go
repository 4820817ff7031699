package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/format/table"
	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/atomicstack/popup-deck/internal/ui"
)

// Step is one position visited by walking the deck forwards.
type Step struct {
	Section int
	Role    nav.Role
	Title   string
	Slot    int // -1 outside a group body
	Label   string
	Percent float64
}

// Outline walks d from the start section to the end section with the same
// transitions and layout rules the player uses at the given width.
func Outline(d *deck.Deck, columns, breakpoint int, ratio float64) []Step {
	measurer := nav.ProportionalMeasurer{ConnectorRatio: ratio}
	reg := nav.NewRegistry(d.Specs(), measurer, float64(breakpoint*ui.UnitsPerCell))
	width := float64(columns * ui.UnitsPerCell)
	reg.Rebuild(width)
	mobile := reg.IsMobile(width)

	pos := nav.NewPosition(reg.GroupCount())
	last := reg.SectionCount() - 1
	steps := make([]Step, 0, reg.SectionCount())
	for {
		steps = append(steps, describeStep(d, reg, pos, mobile))
		if pos.Vertical == last {
			return steps
		}
		pos.Next(reg)
	}
}

func describeStep(d *deck.Deck, reg *nav.Registry, pos *nav.Position, mobile bool) Step {
	role := pos.Role(reg)
	step := Step{
		Section: pos.Vertical,
		Role:    role,
		Title:   d.SectionTitle(pos.Vertical),
		Slot:    -1,
		Percent: nav.Progress(pos, reg),
	}
	if role.Kind != nav.RoleGroupBody {
		return step
	}
	slots := d.VisibleSlots(role.Group, mobile)
	if len(slots) == 0 {
		step.Label = "(no slots)"
		return step
	}
	step.Slot = pos.Slot(role.Group)
	slot := slots[step.Slot]
	if kind, _ := slot.Kind(); kind == nav.SlotConnector {
		step.Label = "→"
		return step
	}
	step.Label = slot.Title
	return step
}

// WriteOutline prints steps as an aligned table.
func WriteOutline(w io.Writer, d *deck.Deck, steps []Step) error {
	title := d.Title
	if title == "" {
		title = "deck"
	}
	if _, err := fmt.Fprintf(w, "%s: %d sections, %d positions\n", title, 2*len(d.Groups)+2, len(steps)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		slot := ""
		if s.Slot >= 0 {
			slot = fmt.Sprintf("%d %s", s.Slot+1, s.Label)
		} else if s.Label != "" {
			slot = s.Label
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Section),
			s.Role.Kind.String(),
			s.Title,
			slot,
			fmt.Sprintf("%.1f%%", s.Percent),
		})
	}
	columns := []table.Column{
		{Title: "#", Align: table.AlignRight},
		{Title: "role"},
		{Title: "section"},
		{Title: "slot"},
		{Title: "progress", Align: table.AlignRight},
	}
	for _, line := range table.Format(columns, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
