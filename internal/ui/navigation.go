package ui

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/popup-deck/internal/logging"
	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String(), m.mode.String())
	if m.mode == ModePicker {
		return m.handlePickerKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		m.step(nav.Intent{Command: nav.CommandNext})
	case key.Matches(keyMsg, m.keys.Prev):
		m.step(nav.Intent{Command: nav.CommandPrev})
	case key.Matches(keyMsg, m.keys.First):
		m.step(nav.Intent{Command: nav.CommandJump, Index: 0})
	case key.Matches(keyMsg, m.keys.Last):
		m.step(nav.Intent{Command: nav.CommandJump, Index: m.ctrl.Registry().SectionCount() - 1})
	case key.Matches(keyMsg, m.keys.Jump):
		m.jumpToHeader(keyMsg.String())
	case key.Matches(keyMsg, m.keys.Picker):
		m.openPicker()
	case key.Matches(keyMsg, m.keys.Reload):
		m.reloadDeck()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.showFooter {
			m.reinitialize()
		}
	}
	return nil
}

// step sends one intent through the bus and surfaces failures in the
// status line.
func (m *Model) step(in nav.Intent) bool {
	res := m.bus.Execute(in)
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = res.Err.Error()
		return false
	}
	m.errMsg = ""
	return true
}

func (m *Model) jumpToHeader(pressed string) {
	n, err := strconv.Atoi(pressed)
	if err != nil {
		return
	}
	headers := m.Deck().Headers()
	if n < 1 || n > len(headers) {
		m.setInfo(fmt.Sprintf("No header %d (deck has %d)", n, len(headers)))
		return
	}
	m.step(nav.Intent{Command: nav.CommandJump, Index: headers[n-1].Anchor})
}

// reinitialize re-measures the deck for the current terminal size.
func (m *Model) reinitialize() {
	m.bus.Execute(nav.Intent{Command: nav.CommandReinitialize})
	m.syncLayout()
}

func (m *Model) syncLayout() {
	reg := m.ctrl.Registry()
	m.frame.Prune(reg.GroupCount())
	width := reg.ViewportWidth()
	events.Nav.Reinitialize(width, float64(m.sectionHeight()), reg.IsMobile(width), reg.SectionCount())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.reinitialize()
	if m.picker != nil {
		m.picker.EnsureCursorVisible(m.maxVisibleEntries())
	}
	return nil
}
