package ui

import (
	"unicode"

	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/theme"
	uistate "github.com/atomicstack/popup-deck/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// queryEdits maps editing keys in the picker to query operations.
var queryEdits = map[string]struct {
	op   string
	edit func(*uistate.Query) bool
}{
	"ctrl+u":    {"clear", (*uistate.Query).Clear},
	"ctrl+w":    {"delete-word", (*uistate.Query).DeleteWord},
	"backspace": {"backspace", (*uistate.Query).Backspace},
	"ctrl+h":    {"backspace", (*uistate.Query).Backspace},
	"ctrl+a":    {"home", (*uistate.Query).Home},
	"ctrl+e":    {"end", (*uistate.Query).End},
	"alt+b":     {"word-left", (*uistate.Query).WordLeft},
	"alt+f":     {"word-right", (*uistate.Query).WordRight},
	"left":      {"left", (*uistate.Query).Left},
	"right":     {"right", (*uistate.Query).Right},
}

// handleTextInput edits the picker query. It reports whether the key was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.picker == nil {
		return false
	}
	if e, ok := queryEdits[msg.String()]; ok {
		return m.editQuery(e.op, e.edit)
	}
	switch msg.Type {
	case tea.KeySpace:
		return m.editQuery("insert", func(q *uistate.Query) bool { return q.Insert(" ") })
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		text := string(msg.Runes)
		return m.editQuery("insert", func(q *uistate.Query) bool { return q.Insert(text) })
	}
	return false
}

func (m *Model) editQuery(op string, edit func(*uistate.Query) bool) bool {
	before := m.picker.Query.Cursor()
	if !m.picker.Edit(edit) {
		return false
	}
	if m.picker.Query.Cursor() != before {
		m.filterCursorDirty = true
	}
	events.Filter.Edit(op, m.picker.Query.String(), m.picker.Query.Cursor())
	m.syncPickerViewport()
	return true
}

func (m *Model) filterPrompt() string {
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	var q uistate.Query
	if m.picker != nil {
		q = m.picker.Query
	}
	if q.String() == "" {
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderFilterCursor("(") + theme.Render(styles.FilterPlaceholder, filterPlaceholder[1:])
	}
	before, at, after := q.Split()
	return prompt + theme.Render(styles.Filter, before) + m.renderFilterCursor(at) + theme.Render(styles.Filter, after)
}

const filterPlaceholder = "(type to find a section)"

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
