package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atomicstack/popup-deck/internal/backend"
	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/logging"
	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/tmux"
	"github.com/atomicstack/popup-deck/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const (
	watchInterval   = 250 * time.Millisecond
	fallbackColumns = 80
	popupTitle      = " popup-deck "
	envRunID        = "POPUP_DECK_RUN_ID"
)

// Config describes user-provided application options.
type Config struct {
	DeckPath       string
	SocketPath     string
	Width          int
	Height         int
	ShowFooter     bool
	Breakpoint     int
	ConnectorRatio float64
	Watch          bool
	Outline        bool
	Popup          bool
	PopupWidth     int
	PopupHeight    int
	// ChildArgs are passed to the copy of the binary started inside a popup.
	ChildArgs []string
}

// Run executes the mode selected by cfg.
func Run(cfg Config) error {
	switch {
	case cfg.Popup:
		return runPopup(cfg)
	case cfg.Outline:
		return runOutline(cfg)
	}
	return runPlayer(cfg)
}

func loadDeck(path string) (*deck.Deck, error) {
	d, err := deck.LoadOrDemo(path)
	if err != nil {
		events.Deck.Error(path, err)
		return nil, fmt.Errorf("load deck: %w", err)
	}
	source := d.Source
	if source == "" {
		source = "(built-in)"
	}
	events.Deck.Load(source, len(d.Groups))
	return d, nil
}

func runPlayer(cfg Config) error {
	d, err := loadDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(d.Source, watchInterval)
		if err != nil {
			return fmt.Errorf("watch deck: %w", err)
		}
		defer watcher.Stop()
	}
	model := ui.NewModel(ui.Options{
		Deck:           d,
		Width:          cfg.Width,
		Height:         cfg.Height,
		ShowFooter:     cfg.ShowFooter,
		Breakpoint:     cfg.Breakpoint,
		ConnectorRatio: cfg.ConnectorRatio,
		Watcher:        watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func runOutline(cfg Config) error {
	d, err := loadDeck(cfg.DeckPath)
	if err != nil {
		return err
	}
	columns := cfg.Width
	if columns <= 0 {
		columns = terminalColumns()
	}
	steps := Outline(d, columns, cfg.Breakpoint, cfg.ConnectorRatio)
	events.App.Outline(d.Source, len(steps))
	return WriteOutline(os.Stdout, d, steps)
}

func terminalColumns() int {
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return fallbackColumns
}

// runPopup starts this binary again inside a tmux popup and waits for it.
func runPopup(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	opts := popupOptions(cfg, socketPath, exe)
	if width, height, err := tmux.ClientSize(socketPath); err == nil {
		opts.ClientWidth = width
		opts.ClientHeight = height
	} else {
		logging.Error(err)
		events.Popup.Error(err)
	}
	return tmux.LaunchPopup(opts)
}

func popupOptions(cfg Config, socketPath, exe string) tmux.PopupOptions {
	command := append([]string{exe}, cfg.ChildArgs...)
	return tmux.PopupOptions{
		SocketPath:    socketPath,
		Title:         popupTitle,
		WidthPercent:  cfg.PopupWidth,
		HeightPercent: cfg.PopupHeight,
		Env:           map[string]string{envRunID: logging.RunID()},
		Command:       command,
	}
}
