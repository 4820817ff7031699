package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs to the model without running the returned commands.
func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

// sizedModel returns a demo-deck model that has seen one resize.
func sizedModel(width, height int) *Model {
	m := NewModel(Options{})
	send(m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func writeDeckFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}
