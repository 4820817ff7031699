package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/atomicstack/popup-deck/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	fallbackWidth    = 80
	fallbackHeight   = 24
	minSectionHeight = 3
	chromeRows       = 3 // header bar, progress bar, status line
	introTextMargin  = 4
	ellipsis         = "…"
)

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return fallbackWidth
}

func (m *Model) layoutHeight() int {
	if m.height > 0 {
		return m.height
	}
	return fallbackHeight
}

// sectionHeight is the number of rows each section occupies on screen.
func (m *Model) sectionHeight() int {
	h := m.layoutHeight() - chromeRows - len(m.footerLines(m.layoutWidth()))
	if h < minSectionHeight {
		return minSectionHeight
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.layoutWidth()
	rows := make([]string, 0, m.layoutHeight())
	rows = append(rows, m.headerBar(width))
	if m.mode == ModePicker {
		rows = append(rows, m.pickerLines(width, m.sectionHeight())...)
	} else {
		rows = append(rows, m.deckLines(width, m.sectionHeight())...)
	}
	rows = append(rows, m.progressBar(width))
	rows = append(rows, m.statusLine(width))
	rows = append(rows, m.footerLines(width)...)
	return strings.Join(rows, "\n")
}

func (m *Model) headerBar(width int) string {
	d := m.Deck()
	parts := make([]string, 0, len(d.Groups)+3)
	if title := strings.TrimSpace(d.Title); title != "" {
		parts = append(parts, theme.Render(styles.Title, title)+" ")
	}
	for i, h := range d.Headers() {
		label := fmt.Sprintf("%d %s", i+1, h.Label)
		if h.Anchor == m.frame.ActiveHeader {
			parts = append(parts, theme.Render(styles.ActiveHeader, label))
			continue
		}
		parts = append(parts, theme.Render(styles.Header, label))
	}
	return fitLine(strings.Join(parts, ""), width)
}

// deckLines cuts the vertical stack of sections at the current vertical
// offset.
func (m *Model) deckLines(width, height int) []string {
	sections := m.ctrl.Registry().SectionCount()
	offset := int(math.Round(m.frame.VerticalOffset))
	if offset < 0 {
		offset = 0
	}
	first := offset / height
	within := offset % height
	lines := make([]string, 0, 2*height)
	for v := first; v < sections && len(lines) < within+height; v++ {
		lines = append(lines, m.sectionLines(v, width, height)...)
	}
	if within < len(lines) {
		lines = lines[within:]
	} else {
		lines = nil
	}
	return padLines(lines, width, height)
}

func (m *Model) sectionLines(v, width, height int) []string {
	d := m.Deck()
	role := nav.RoleOf(v, m.ctrl.Registry().SectionCount())
	if role.Kind == nav.RoleGroupBody {
		return m.stripLines(role.Group, width, height)
	}
	title := d.SectionTitle(v)
	if role.Kind == nav.RoleGroupIntro {
		title = fmt.Sprintf("%d. %s", role.Group+1, title)
	}
	block := theme.Render(styles.Section, title)
	if text := strings.TrimSpace(d.SectionText(v)); text != "" {
		wrapAt := width - introTextMargin
		if wrapAt < 1 {
			wrapAt = 1
		}
		block += "\n\n" + theme.Render(styles.Intro, wordwrap.String(text, wrapAt))
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
	return padLines(strings.Split(placed, "\n"), width, height)
}

func (m *Model) progressBar(width int) string {
	m.progress.Width = width
	return fitLine(m.progress.ViewAs(m.frame.Percent/100), width)
}

func (m *Model) statusLine(width int) string {
	if m.errMsg != "" {
		return fitLine(theme.Render(styles.Error, "Error: "+m.errMsg), width)
	}
	if info := m.currentInfo(); info != "" {
		return fitLine(theme.Render(styles.Info, info), width)
	}
	return fitLine(theme.Render(styles.Status, m.statusText()), width)
}

func (m *Model) statusText() string {
	reg := m.ctrl.Registry()
	pos := m.ctrl.Position()
	d := m.Deck()
	v := m.frame.ActiveSection
	current, total := nav.Steps(pos, reg)
	where := d.SectionTitle(v)
	role := nav.RoleOf(v, reg.SectionCount())
	if role.Kind == nav.RoleGroupBody && reg.SlotCount(role.Group) > 0 {
		where = fmt.Sprintf("%s · slot %d/%d", where, pos.Slot(role.Group)+1, reg.SlotCount(role.Group))
	}
	return fmt.Sprintf("%s · section %d/%d · step %d/%d", where, v+1, reg.SectionCount(), current+1, total)
}

// footerLines is the key help, one entry per screen row. The full help
// spans several rows and takes them from the section area.
func (m *Model) footerLines(width int) []string {
	if !m.showFooter {
		return nil
	}
	m.help.Width = width
	view := m.help.View(m.keys)
	if m.mode == ModePicker {
		view = m.help.ShortHelpView(m.keys.pickerHelp())
	}
	return padLines(strings.Split(view, "\n"), width, lipgloss.Height(view))
}

func (m *Model) pickerLines(width, height int) []string {
	lines := []string{fitLine(m.filterPrompt(), width)}
	p := m.picker
	if p == nil {
		return padLines(lines, width, height)
	}
	if len(p.Entries) == 0 {
		msg := fmt.Sprintf("No sections match %q", p.Query.String())
		lines = append(lines, fitLine(theme.Render(styles.Info, msg), width))
		return padLines(lines, width, height)
	}
	p.EnsureCursorVisible(m.maxVisibleEntries())
	end := p.ViewportOffset + height - 1
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	for i := p.ViewportOffset; i < end; i++ {
		entry := p.Entries[i]
		style := styles.PickerItem
		if i == p.Cursor {
			style = styles.PickerSelected
		}
		line := theme.Render(styles.PickerKey, fmt.Sprintf("%2s ", entry.Key)) + theme.Render(style, entry.Label)
		lines = append(lines, fitLine(line, width))
	}
	return padLines(lines, width, height)
}

// fitLine truncates or pads an ANSI-styled line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	if ansi.StringWidth(line) > width {
		line = truncate.StringWithTail(line, uint(width), ellipsis)
	}
	if gap := width - ansi.StringWidth(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}

// padLines returns exactly height lines of width cells.
func padLines(lines []string, width, height int) []string {
	out := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
			continue
		}
		out[i] = blank
	}
	return out
}
