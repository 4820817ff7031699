package events

import "github.com/atomicstack/popup-deck/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

// Step records a completed transition.
func (NavTracer) Step(command string, from, to, slot int, kind string, percent float64) {
	logging.Trace("nav.step", map[string]interface{}{
		"command": command,
		"from":    from,
		"to":      to,
		"slot":    slot,
		"update":  kind,
		"percent": percent,
	})
}

func (NavTracer) Wrap(command string, to int) {
	logging.Trace("nav.wrap", map[string]interface{}{"command": command, "to": to})
}

func (NavTracer) Reinitialize(width, height float64, mobile bool, sections int) {
	logging.Trace("nav.reinit", map[string]interface{}{
		"width":    width,
		"height":   height,
		"mobile":   mobile,
		"sections": sections,
	})
}

func (NavTracer) Error(command string, index int, err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.error", map[string]interface{}{"command": command, "index": index, "error": err.Error()})
}
