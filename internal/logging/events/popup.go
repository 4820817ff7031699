package events

import "github.com/atomicstack/popup-deck/internal/logging"

type PopupTracer struct{}

var Popup = PopupTracer{}

func (PopupTracer) ClientSize(width, height int) {
	logging.Trace("popup.client-size", map[string]interface{}{"width": width, "height": height})
}

func (PopupTracer) Launch(args []string) {
	logging.Trace("popup.launch", map[string]interface{}{"args": args})
}

func (PopupTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("popup.error", map[string]interface{}{"error": err.Error()})
}
