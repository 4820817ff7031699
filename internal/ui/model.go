package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-deck/internal/backend"
	"github.com/atomicstack/popup-deck/internal/data/dispatcher"
	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/atomicstack/popup-deck/internal/state"
	"github.com/atomicstack/popup-deck/internal/theme"
	"github.com/atomicstack/popup-deck/internal/ui/command"
	uistate "github.com/atomicstack/popup-deck/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeDeck Mode = iota
	ModePicker
)

func (m Mode) String() string {
	if m == ModePicker {
		return "picker"
	}
	return "deck"
}

// UnitsPerCell converts terminal columns into navigation layout units, so
// the default breakpoint of 768 units lands at 96 columns.
const UnitsPerCell = 8

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Deck           *deck.Deck
	Width          int
	Height         int
	ShowFooter     bool
	Breakpoint     int // columns; 0 keeps the navigation default
	ConnectorRatio float64
	Watcher        *backend.Watcher
}

// Model implements the Bubble Tea model for the deck player.
type Model struct {
	decks      state.DeckStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher

	ctrl  *nav.Controller
	frame *nav.Frame
	bus   *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	mode              Mode
	picker            *uistate.Picker
	filterCursor      cursor.Model
	filterCursorDirty bool

	keys     keyMap
	help     help.Model
	progress progress.Model

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	handlers map[reflect.Type]msgHandler
}

// viewport reports the model's deck area to the navigation controller.
type viewport struct {
	m *Model
}

func (v viewport) Width() float64 {
	return float64(v.m.width * UnitsPerCell)
}

func (v viewport) Height() float64 {
	return float64(v.m.sectionHeight())
}

// NewModel builds the player for opts.Deck, falling back to the demo deck.
func NewModel(opts Options) *Model {
	d := opts.Deck
	if d == nil {
		d = deck.Demo()
	}
	decks := state.NewDeckStore(d)
	m := &Model{
		decks:      decks,
		dispatcher: dispatcher.New(decks),
		backend:    opts.Watcher,
		frame:      nav.NewFrame(),
		showFooter: opts.ShowFooter,
		mode:       ModeDeck,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.progress = progress.New(progress.WithGradient(styles.ProgressStart, styles.ProgressEnd))
	measurer := nav.ProportionalMeasurer{ConnectorRatio: opts.ConnectorRatio}
	registry := nav.NewRegistry(d.Specs(), measurer, float64(opts.Breakpoint*UnitsPerCell))
	m.ctrl = nav.NewController(registry, viewport{m: m}, m.frame)
	m.bus = command.New(m.ctrl)

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.reinitialize()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Deck returns the deck currently on screen.
func (m *Model) Deck() *deck.Deck {
	return m.decks.Deck()
}

// Frame exposes the last rendered navigation state.
func (m *Model) Frame() *nav.Frame {
	return m.frame
}

// Position returns a copy of the navigation position.
func (m *Model) Position() *nav.Position {
	return m.ctrl.Position()
}

func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
