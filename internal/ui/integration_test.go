package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/popup-deck/internal/nav"
)

func TestHarnessWalksWholeDemoDeck(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Resize(120, 30)

	last := harness.Model().ctrl.Registry().SectionCount() - 1
	percent := 0.0
	for guard := 0; harness.Position().Vertical != last; guard++ {
		if guard > 100 {
			t.Fatalf("never reached the end section")
		}
		harness.Press("right")
		next := harness.Model().Frame().Percent
		if next < percent {
			t.Fatalf("progress fell from %v to %v", percent, next)
		}
		percent = next
	}
	if percent != 100 {
		t.Fatalf("expected 100%% at the end, got %v", percent)
	}
	if !strings.Contains(harness.View(), "That's the tour") {
		t.Fatalf("expected end section on screen, got:\n%s", harness.View())
	}

	harness.Press("right")
	pos := harness.Position()
	if pos.Vertical != 0 {
		t.Fatalf("expected wrap to start, got %d", pos.Vertical)
	}
	for g, slot := range pos.Horizontal {
		if slot != 0 {
			t.Fatalf("expected group %d reset to slot 0, got %d", g, slot)
		}
	}
}

func TestHarnessBackwardEntryLandsOnLastSlot(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Resize(120, 30)
	harness.Press("3", "left")

	m := harness.Model()
	if got := m.Position().Vertical; got != nav.BodyIndex(0) {
		t.Fatalf("expected body of group 0, got %d", got)
	}
	lastSlot := m.ctrl.Registry().SlotCount(0) - 1
	if got := m.Frame().ActiveSlots[0]; got != lastSlot {
		t.Fatalf("expected last slot %d active, got %d", lastSlot, got)
	}
	if !strings.Contains(harness.View(), "Problem map") {
		t.Fatalf("expected last card on screen, got:\n%s", harness.View())
	}
}

func TestHarnessPickerJump(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Resize(100, 24)
	harness.Press("/", "l", "a", "u", "n", "c", "h", "enter")

	if got := harness.Position().Vertical; got != nav.IntroIndex(4) {
		t.Fatalf("expected intro of Launch, got %d", got)
	}
	if harness.Model().Mode() != ModeDeck {
		t.Fatalf("expected picker closed, got %s", harness.Model().Mode())
	}
	if !strings.Contains(harness.View(), "Getting it into hands") {
		t.Fatalf("expected Launch intro on screen, got:\n%s", harness.View())
	}
}
