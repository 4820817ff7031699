package ui

import (
	"github.com/atomicstack/popup-deck/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the player synchronously so tests can step through a deck
// without a terminal.
type Harness struct {
	model *Model
}

// NewHarness wraps model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes msg through the model and follows the commands it returns.
// Batches are not expanded, which keeps cursor blink timers out of tests.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.apply(msg)
}

// Resize delivers a window size change.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Press sends one key message per name. Names are either special keys known
// to Bubble Tea ("right", "esc", "enter") or literal text.
func (h *Harness) Press(keys ...string) {
	for _, name := range keys {
		h.Send(keyFor(name))
	}
}

func (h *Harness) apply(msg tea.Msg) {
	for msg != nil {
		if _, ok := msg.(tea.BatchMsg); ok {
			return
		}
		mdl, cmd := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func keyFor(name string) tea.KeyMsg {
	for kt, s := range keyNames {
		if s == name {
			return tea.KeyMsg{Type: kt}
		}
	}
	if name == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var keyNames = map[tea.KeyType]string{
	tea.KeyRight:     "right",
	tea.KeyLeft:      "left",
	tea.KeyUp:        "up",
	tea.KeyDown:      "down",
	tea.KeyHome:      "home",
	tea.KeyEnd:       "end",
	tea.KeyPgUp:      "pgup",
	tea.KeyPgDown:    "pgdown",
	tea.KeyEnter:     "enter",
	tea.KeyEsc:       "esc",
	tea.KeyBackspace: "backspace",
	tea.KeyCtrlC:     "ctrl+c",
}

// View returns the rendered screen.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Position is a copy of the current navigation position.
func (h *Harness) Position() *nav.Position {
	return h.model.Position()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
