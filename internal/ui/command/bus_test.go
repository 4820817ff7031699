package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-deck/internal/nav"
)

type viewport struct{ w, h float64 }

func (v viewport) Width() float64  { return v.w }
func (v viewport) Height() float64 { return v.h }

func newTestBus(groups, slots int) (*Bus, *nav.Controller) {
	specs := make([]nav.GroupSpec, groups)
	for i := range specs {
		specs[i] = nav.GroupSpec{Horizontal: true, Slots: make([]nav.SlotKind, slots)}
	}
	ctrl := nav.NewController(nav.NewRegistry(specs, nil, 0), viewport{w: 1000, h: 40}, nav.NewFrame())
	ctrl.Reinitialize()
	return New(ctrl), ctrl
}

func TestExecuteNextReportsMovement(t *testing.T) {
	bus, _ := newTestBus(2, 2)
	res := bus.Execute(nav.Intent{Command: nav.CommandNext})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.From != 0 || res.To != 1 {
		t.Fatalf("expected 0 -> 1, got %d -> %d", res.From, res.To)
	}
	if res.Update.Kind != nav.UpdateFull {
		t.Fatalf("expected full update, got %s", res.Update.Kind)
	}
}

func TestExecuteJumpOutOfRange(t *testing.T) {
	bus, ctrl := newTestBus(1, 1)
	res := bus.Execute(nav.Intent{Command: nav.CommandJump, Index: 99})
	if !errors.Is(res.Err, nav.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", res.Err)
	}
	if ctrl.Position().Vertical != 0 {
		t.Fatalf("expected position unchanged, got %d", ctrl.Position().Vertical)
	}
}

func TestExecuteWrapFromStart(t *testing.T) {
	bus, ctrl := newTestBus(1, 1)
	res := bus.Execute(nav.Intent{Command: nav.CommandPrev})
	last := ctrl.Registry().SectionCount() - 1
	if res.To != last {
		t.Fatalf("expected wrap to %d, got %d", last, res.To)
	}
}

func TestExecuteWithoutTarget(t *testing.T) {
	res := New(nil).Execute(nav.Intent{Command: nav.CommandNext})
	if res.Err == nil {
		t.Fatalf("expected error without a target")
	}
}
