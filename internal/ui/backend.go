package ui

import (
	"fmt"

	"github.com/atomicstack/popup-deck/internal/backend"
	"github.com/atomicstack/popup-deck/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a changed deck. A deck that fails to load
// leaves the current one on screen.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = fmt.Sprintf("Reload failed: %v", res.Err)
		return
	}
	if !res.DeckUpdated {
		return
	}
	d := m.decks.Deck()
	m.ctrl.Reload(d.Specs())
	m.syncLayout()
	if m.picker != nil {
		m.picker.SetEntries(m.headerEntries())
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Reloaded %s (%d groups)", d.Source, len(d.Groups)))
}

// reloadDeck re-reads the deck file on demand.
func (m *Model) reloadDeck() {
	source := m.Deck().Source
	if source == "" {
		m.setInfo("Built-in deck; nothing to reload")
		return
	}
	m.applyBackendEvent(backend.Snapshot(source))
}
