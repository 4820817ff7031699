package events

import "github.com/atomicstack/popup-deck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Outline(deck string, steps int) {
	logging.Trace("app.outline", map[string]interface{}{"deck": deck, "steps": steps})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
