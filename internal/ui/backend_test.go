package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/atomicstack/popup-deck/internal/backend"
	"github.com/atomicstack/popup-deck/internal/deck"
	tea "github.com/charmbracelet/bubbletea"
)

const twoGroupDeck = `
title = "Review"
start = "Hello"
end = "Bye"

[[group]]
title = "One"
  [[group.slot]]
  title = "A"
  [[group.slot]]
  title = "B"

[[group]]
title = "Two"
  [[group.slot]]
  title = "C"
`

const oneGroupDeck = `
title = "Review"
start = "Hello"
end = "Bye"

[[group]]
title = "One"
  [[group.slot]]
  title = "A"
`

func loadedModel(t *testing.T, content string) (*Model, string) {
	t.Helper()
	path := writeDeckFile(t, "deck.toml", content)
	d, err := deck.Load(path)
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	m := NewModel(Options{Deck: d, Width: 120, Height: 30})
	return m, path
}

func TestBackendEventReloadsDeck(t *testing.T) {
	m, path := loadedModel(t, oneGroupDeck)
	send(m, backendEventMsg{event: backend.Event{Kind: backend.KindDeckChanged, Path: path, Data: []byte(twoGroupDeck)}})
	if got := len(m.Deck().Groups); got != 2 {
		t.Fatalf("expected 2 groups after reload, got %d", got)
	}
	if got := m.ctrl.Registry().SectionCount(); got != 6 {
		t.Fatalf("expected 6 sections, got %d", got)
	}
	if !strings.Contains(m.currentInfo(), "Reloaded") {
		t.Fatalf("expected reload info, got %q", m.currentInfo())
	}
}

func TestBackendEventClampsPosition(t *testing.T) {
	m, path := loadedModel(t, twoGroupDeck)
	send(m, tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.Position().Vertical; got != 5 {
		t.Fatalf("expected end section 5, got %d", got)
	}
	send(m, runes("2"), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Position().Slot(0); got != 1 {
		t.Fatalf("expected slot 1 in group 0, got %d", got)
	}
	send(m, backendEventMsg{event: backend.Event{Kind: backend.KindDeckChanged, Path: path, Data: []byte(oneGroupDeck)}})
	if got := m.Position().Slot(0); got != 0 {
		t.Fatalf("expected slot clamped to 0, got %d", got)
	}
	if _, ok := m.Frame().HorizontalOffsets[1]; ok {
		t.Fatalf("expected frame entries for removed group to be pruned")
	}
}

func TestBackendEventBadDeckKeepsCurrent(t *testing.T) {
	m, path := loadedModel(t, oneGroupDeck)
	send(m, backendEventMsg{event: backend.Event{Kind: backend.KindDeckChanged, Path: path, Data: []byte("[[group]\n")}})
	if got := len(m.Deck().Groups); got != 1 {
		t.Fatalf("expected current deck kept, got %d groups", got)
	}
	if !strings.Contains(m.errMsg, "Reload failed") {
		t.Fatalf("expected reload error, got %q", m.errMsg)
	}
}

func TestReloadKeyReadsDeckFile(t *testing.T) {
	m, path := loadedModel(t, oneGroupDeck)
	if err := os.WriteFile(path, []byte(twoGroupDeck), 0o644); err != nil {
		t.Fatalf("rewrite deck: %v", err)
	}
	send(m, runes("r"))
	if got := len(m.Deck().Groups); got != 2 {
		t.Fatalf("expected reload from disk, got %d groups", got)
	}
}

func TestReloadKeyOnBuiltInDeck(t *testing.T) {
	m := sizedModel(120, 30)
	send(m, runes("r"))
	if !strings.Contains(m.currentInfo(), "Built-in deck") {
		t.Fatalf("expected built-in info, got %q", m.currentInfo())
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	m := sizedModel(120, 30)
	_, cmd := m.Update(backendDoneMsg{})
	if cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
	if m.backend != nil {
		t.Fatalf("expected backend cleared")
	}
}
