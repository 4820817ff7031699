package command

import (
	"errors"

	"github.com/atomicstack/popup-deck/internal/logging/events"
	"github.com/atomicstack/popup-deck/internal/nav"
)

// Target is the navigation surface the bus drives. *nav.Controller
// satisfies it.
type Target interface {
	Dispatch(nav.Intent) (nav.Update, error)
	Position() *nav.Position
	Progress() float64
}

// Result reports what an intent did.
type Result struct {
	Intent nav.Intent
	Update nav.Update
	From   int
	To     int
	Err    error
}

// Bus routes intents to a navigation target while emitting trace logs.
type Bus struct {
	target Target
}

// New initialises a command bus for target.
func New(target Target) *Bus {
	return &Bus{target: target}
}

// Execute applies one intent synchronously.
func (b *Bus) Execute(in nav.Intent) Result {
	name := in.Command.String()
	events.Command.Queue(name, in.Index)
	if b == nil || b.target == nil {
		err := errors.New("no navigation target")
		events.Command.Error(name, err)
		return Result{Intent: in, Err: err}
	}
	before := b.target.Position()
	upd, err := b.target.Dispatch(in)
	if err != nil {
		events.Command.Error(name, err)
		events.Nav.Error(name, in.Index, err)
		return Result{Intent: in, From: before.Vertical, To: before.Vertical, Err: err}
	}
	after := b.target.Position()
	events.Command.Result(name, upd.Kind.String(), upd.Wrapped)
	slot := -1
	if upd.Group >= 0 {
		slot = after.Slot(upd.Group)
	}
	events.Nav.Step(name, before.Vertical, after.Vertical, slot, upd.Kind.String(), b.target.Progress())
	if upd.Wrapped {
		events.Nav.Wrap(name, after.Vertical)
	}
	return Result{Intent: in, Update: upd, From: before.Vertical, To: after.Vertical}
}
