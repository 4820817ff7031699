package nav

import (
	"reflect"
	"testing"
)

func TestActiveHeaderIndexSharesGroupAnchor(t *testing.T) {
	pos := &Position{Vertical: 4}
	if got := ActiveHeaderIndex(pos, 14); got != 3 {
		t.Fatalf("expected body of group 1 to map to 3, got %d", got)
	}
	pos.Vertical = 3
	if got := ActiveHeaderIndex(pos, 14); got != 3 {
		t.Fatalf("expected intro of group 1 to map to 3, got %d", got)
	}
	pos.Vertical = 0
	if got := ActiveHeaderIndex(pos, 14); got != 0 {
		t.Fatalf("expected start to map to itself, got %d", got)
	}
	pos.Vertical = 13
	if got := ActiveHeaderIndex(pos, 14); got != 13 {
		t.Fatalf("expected end to map to itself, got %d", got)
	}
}

func TestHeaderAnchors(t *testing.T) {
	want := []int{0, 1, 3, 5, 7}
	if got := HeaderAnchors(3); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected anchors %v, got %v", want, got)
	}
	for _, anchor := range HeaderAnchors(3)[1:4] {
		if got := ActiveHeaderIndex(&Position{Vertical: anchor}, 8); got != anchor {
			t.Fatalf("expected anchor %d to highlight itself, got %d", anchor, got)
		}
	}
}

func TestHorizontalOffsetCentersActiveSlot(t *testing.T) {
	widths := []float64{100, 100, 200, 100}
	if got := SlotOffsets(widths); !reflect.DeepEqual(got, []float64{0, 100, 200, 400}) {
		t.Fatalf("unexpected offsets %v", got)
	}
	if got := HorizontalOffset(widths, 2, 800); got != -100 {
		t.Fatalf("expected displacement -100, got %v", got)
	}
	if got := HorizontalOffset(widths, 3, 100); got != 400 {
		t.Fatalf("expected unclamped displacement 400, got %v", got)
	}
}

func TestHorizontalOffsetOutsideStrip(t *testing.T) {
	if got := HorizontalOffset(nil, 0, 800); got != 0 {
		t.Fatalf("expected 0 for an empty strip, got %v", got)
	}
	if got := HorizontalOffset([]float64{10}, 3, 800); got != 0 {
		t.Fatalf("expected 0 for an index past the strip, got %v", got)
	}
}

func TestVerticalOffset(t *testing.T) {
	if got := VerticalOffset(3, 24); got != 72 {
		t.Fatalf("expected 72, got %v", got)
	}
}
