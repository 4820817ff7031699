package dispatcher

import (
	"fmt"

	"github.com/atomicstack/popup-deck/internal/backend"
	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/state"
)

type Result struct {
	DeckUpdated bool
	Err         error
}

// Dispatcher decodes watcher events into the deck store.
type Dispatcher struct {
	decks state.DeckStore
}

func New(decks state.DeckStore) *Dispatcher {
	return &Dispatcher{decks: decks}
}

// Handle applies evt. A failed read or decode keeps the current deck and is
// recorded as the store's last error.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		return d.fail(evt.Path, evt.Err)
	}
	if evt.Kind == backend.KindDeckRemoved {
		return d.fail(evt.Path, fmt.Errorf("deck %s removed", evt.Path))
	}
	format, err := deck.FormatFor(evt.Path)
	if err != nil {
		return d.fail(evt.Path, err)
	}
	next, err := deck.Decode(evt.Data, format)
	if err != nil {
		return d.fail(evt.Path, fmt.Errorf("%s: %w", evt.Path, err))
	}
	next.Source = evt.Path
	d.decks.SetDeck(next)
	events.Deck.Reload(evt.Path, len(next.Groups), d.decks.Version())
	return Result{DeckUpdated: true}
}

func (d *Dispatcher) fail(path string, err error) Result {
	d.decks.SetLastError(err)
	events.Deck.Error(path, err)
	return Result{Err: err}
}
