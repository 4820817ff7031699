package events

import "github.com/atomicstack/popup-deck/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(key, mode string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "mode": mode})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) PickerOpen(entries int) {
	logging.Trace("picker.open", map[string]interface{}{"entries": entries})
}

func (UITracer) PickerCursor(cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) PickerChoose(label string, anchor int, filter string) {
	logging.Trace("picker.choose", map[string]interface{}{"label": label, "anchor": anchor, "filter": filter})
}

func (FilterTracer) Edit(op, query string, cursor int) {
	logging.Trace("filter."+op, map[string]interface{}{"query": query, "cursor": cursor})
}

func (CommandTracer) Queue(command string, index int) {
	logging.Trace("command.queue", map[string]interface{}{"command": command, "index": index})
}

func (CommandTracer) Result(command string, update string, wrapped bool) {
	logging.Trace("command.result", map[string]interface{}{"command": command, "update": update, "wrapped": wrapped})
}

func (CommandTracer) Error(command string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"command": command, "error": err.Error()})
}
