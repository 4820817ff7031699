package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(Options{})
	m.openPicker()
	handled := m.handleTextInput(runes("abc"))
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if m.picker.Query.String() != "abc" {
		t.Fatalf("expected filter 'abc', got %q", m.picker.Query.String())
	}
	if pos := m.picker.Query.Cursor(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(Options{})
	m.openPicker()
	m.picker.SetFilter("abc")

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.picker.Query.Cursor(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.picker.Query.Cursor(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestHandleTextInputClearAndBackspace(t *testing.T) {
	m := NewModel(Options{})
	m.openPicker()
	m.picker.SetFilter("design")
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) || m.picker.Query.String() != "desig" {
		t.Fatalf("expected backspace to drop a rune, got %q", m.picker.Query.String())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) || m.picker.Query.String() != "" {
		t.Fatalf("expected ctrl+u to clear, got %q", m.picker.Query.String())
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u on empty filter to be ignored")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(Options{})
	m.openPicker()
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to find a section") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	m.picker.SetFilter("plan")
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "plan") {
		t.Fatalf("expected filter text in prompt, got %q", prompt)
	}
}

func TestHandleTextInputWithoutPicker(t *testing.T) {
	m := NewModel(Options{})
	if m.handleTextInput(runes("x")) {
		t.Fatalf("expected no handling without an open picker")
	}
}

func TestHandleTextInputWordEdits(t *testing.T) {
	m := NewModel(Options{})
	m.openPicker()
	m.picker.SetFilter("problem map")
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) || m.picker.Query.String() != "problem " {
		t.Fatalf("expected ctrl+w to drop the last word, got %q", m.picker.Query.String())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}) {
		t.Fatalf("expected alt+b to move the caret")
	}
	if pos := m.picker.Query.Cursor(); pos != 0 {
		t.Fatalf("expected caret at word start 0, got %d", pos)
	}
}
