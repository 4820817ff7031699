package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/atomicstack/popup-deck/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	stripTitleRows = 2
	minBoxedWidth  = 6
)

// stripLines renders group g's body: a title row and the horizontal strip of
// slots, windowed around the group's horizontal offset.
func (m *Model) stripLines(g, width, height int) []string {
	d := m.Deck()
	reg := m.ctrl.Registry()
	lines := []string{theme.Render(styles.Section, d.Groups[g].Title), ""}
	boxHeight := height - stripTitleRows
	if boxHeight < 1 {
		boxHeight = 1
	}
	slots := d.VisibleSlots(g, reg.IsMobile(reg.ViewportWidth()))
	widths := reg.SlotWidths(g)
	if len(slots) == 0 || len(widths) == 0 {
		empty := lipgloss.Place(width, boxHeight, lipgloss.Center, lipgloss.Center, theme.Render(styles.Info, "(no slots)"))
		return padLines(append(lines, strings.Split(empty, "\n")...), width, height)
	}
	if len(widths) < len(slots) {
		slots = slots[:len(widths)]
	}
	edges := cellEdges(widths[:len(slots)])
	active := m.frame.ActiveSlots[g]
	boxes := make([]string, len(slots))
	for i, slot := range slots {
		boxes[i] = renderSlot(slot, edges[i+1]-edges[i], boxHeight, i == active)
	}
	strip := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, boxes...), "\n")
	left := int(math.Round(m.frame.HorizontalOffsets[g] / UnitsPerCell))
	for _, line := range strip {
		lines = append(lines, cutWindow(line, left, width))
	}
	return padLines(lines, width, height)
}

// cellEdges converts slot widths in layout units into column boundaries.
// Rounding the running sum keeps every slot aligned with the offsets the
// navigation core computes.
func cellEdges(widths []float64) []int {
	edges := make([]int, len(widths)+1)
	sum := 0.0
	for i, w := range widths {
		sum += w
		edges[i+1] = int(math.Round(sum / UnitsPerCell))
	}
	return edges
}

func renderSlot(slot deck.Slot, width, height int, active bool) string {
	if width <= 0 {
		return ""
	}
	if kind, _ := slot.Kind(); kind == nav.SlotConnector {
		return renderConnector(width, height, active)
	}
	if width < minBoxedWidth || height < 3 {
		label := truncate.StringWithTail(slot.Title, uint(width), ellipsis)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
	}
	style := styles.Card
	if active {
		style = styles.ActiveCard
	}
	inner := width - 4
	content := []string{truncate.StringWithTail(theme.Render(styles.CardTitle, slot.Title), uint(inner), ellipsis)}
	if body := strings.TrimSpace(slot.Body); body != "" {
		content = append(content, "")
		for _, line := range strings.Split(wordwrap.String(body, inner), "\n") {
			content = append(content, truncate.StringWithTail(line, uint(inner), ellipsis))
		}
	}
	if len(content) > height-2 {
		content = content[:height-2]
	}
	box := style.Copy().Width(width - 2).Height(height - 2).Render(strings.Join(content, "\n"))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, box)
}

func renderConnector(width, height int, active bool) string {
	style := styles.Connector
	if active {
		style = styles.ActiveConnector
	}
	arrow := "▶"
	if width > 2 {
		arrow = strings.Repeat("─", width-3) + "▶"
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Render(style, arrow))
}

// cutWindow returns the width columns of line starting at column left.
// Columns left of the strip are blank.
func cutWindow(line string, left, width int) string {
	if width <= 0 {
		return ""
	}
	if left >= 0 {
		return ansi.Cut(line, left, left+width)
	}
	pad := -left
	if pad >= width {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat(" ", pad) + ansi.Cut(line, 0, width-pad)
}
