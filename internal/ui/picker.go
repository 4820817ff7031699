package ui

import (
	"fmt"

	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/nav"
	uistate "github.com/atomicstack/popup-deck/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) headerEntries() []uistate.Entry {
	headers := m.Deck().Headers()
	labels := make([]string, len(headers))
	anchors := make([]int, len(headers))
	for i, h := range headers {
		labels[i] = h.Label
		anchors[i] = h.Anchor
	}
	return uistate.EntriesFromLabels(labels, anchors)
}

func (m *Model) openPicker() {
	m.picker = uistate.NewPicker(m.headerEntries(), m.frame.ActiveHeader)
	m.mode = ModePicker
	m.errMsg = ""
	m.forceClearInfo()
	m.syncPickerViewport()
	m.filterCursorDirty = true
	events.UI.PickerOpen(len(m.picker.Full))
}

func (m *Model) closePicker() {
	m.picker = nil
	m.mode = ModeDeck
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closePicker()
		return nil
	case key.Matches(msg, m.keys.Choose):
		m.choosePicker()
		return nil
	case key.Matches(msg, m.keys.Up):
		m.movePickerCursor(m.picker.MoveCursorUp)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.movePickerCursor(m.picker.MoveCursorDown)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.movePickerCursor(func() bool { return m.picker.MoveCursorPageUp(m.maxVisibleEntries()) })
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.movePickerCursor(func() bool { return m.picker.MoveCursorPageDown(m.maxVisibleEntries()) })
		return nil
	case key.Matches(msg, m.keys.Home):
		m.movePickerCursor(m.picker.MoveCursorHome)
		return nil
	case key.Matches(msg, m.keys.End):
		m.movePickerCursor(m.picker.MoveCursorEnd)
		return nil
	}
	m.handleTextInput(msg)
	return nil
}

func (m *Model) movePickerCursor(move func() bool) {
	if m.picker == nil {
		return
	}
	if move() {
		events.UI.PickerCursor(m.picker.Cursor)
	}
	m.syncPickerViewport()
}

func (m *Model) choosePicker() {
	if m.picker == nil {
		return
	}
	entry, ok := m.picker.Selected()
	if !ok {
		msg := fmt.Sprintf("No section matches %q", m.picker.Query.String())
		if near, ok := m.picker.Closest(); ok {
			msg += fmt.Sprintf("; closest is %s", near.Label)
		}
		m.setInfo(msg)
		return
	}
	events.UI.PickerChoose(entry.Label, entry.Anchor, m.picker.Query.String())
	m.closePicker()
	m.step(nav.Intent{Command: nav.CommandJump, Index: entry.Anchor})
}

func (m *Model) syncPickerViewport() {
	if m.picker == nil {
		return
	}
	m.picker.EnsureCursorVisible(m.maxVisibleEntries())
}

// maxVisibleEntries is the number of picker rows that fit in the deck area
// below the filter prompt.
func (m *Model) maxVisibleEntries() int {
	h := m.sectionHeight()
	if h <= 0 {
		return -1
	}
	if h-1 < 1 {
		return 1
	}
	return h - 1
}
