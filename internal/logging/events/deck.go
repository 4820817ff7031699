package events

import "github.com/atomicstack/popup-deck/internal/logging"

type DeckTracer struct{}

var Deck = DeckTracer{}

func (DeckTracer) Load(source string, groups int) {
	logging.Trace("deck.load", map[string]interface{}{"source": source, "groups": groups})
}

func (DeckTracer) Reload(source string, groups int, version int) {
	logging.Trace("deck.reload", map[string]interface{}{"source": source, "groups": groups, "version": version})
}

func (DeckTracer) Watch(path, op string) {
	logging.Trace("deck.watch", map[string]interface{}{"path": path, "op": op})
}

func (DeckTracer) Error(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("deck.error", map[string]interface{}{"source": source, "error": err.Error()})
}
