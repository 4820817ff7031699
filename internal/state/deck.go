package state

import "github.com/atomicstack/popup-deck/internal/deck"

// DeckStore holds the deck currently on screen and how often it was swapped.
type DeckStore interface {
	Deck() *deck.Deck
	SetDeck(*deck.Deck)
	Version() int
	LastError() error
	SetLastError(error)
}

type deckStore struct {
	current *deck.Deck
	version int
	lastErr error
}

func NewDeckStore(initial *deck.Deck) DeckStore {
	return &deckStore{current: initial}
}

func (s *deckStore) Deck() *deck.Deck {
	return s.current
}

// SetDeck replaces the deck, bumps the version and clears the last error.
// Nil decks are ignored.
func (s *deckStore) SetDeck(d *deck.Deck) {
	if d == nil {
		return
	}
	s.current = d
	s.version++
	s.lastErr = nil
}

func (s *deckStore) Version() int {
	return s.version
}

func (s *deckStore) LastError() error {
	return s.lastErr
}

func (s *deckStore) SetLastError(err error) {
	s.lastErr = err
}
