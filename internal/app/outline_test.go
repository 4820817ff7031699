package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atomicstack/popup-deck/internal/deck"
	"github.com/atomicstack/popup-deck/internal/nav"
)

func TestOutlineVisitsEveryPosition(t *testing.T) {
	d := deck.Demo()
	steps := Outline(d, 120, 0, 0)
	// start, end, then one intro plus every slot for each group
	want := 2
	for _, g := range d.Groups {
		want += 1 + len(g.Slots)
	}
	if len(steps) != want {
		t.Fatalf("expected %d positions, got %d", want, len(steps))
	}
	if steps[0].Role.Kind != nav.RoleStart || steps[len(steps)-1].Role.Kind != nav.RoleEnd {
		t.Fatalf("expected walk from start to end, got %s .. %s", steps[0].Role, steps[len(steps)-1].Role)
	}
	if steps[len(steps)-1].Percent != 100 {
		t.Fatalf("expected 100%% at the end, got %v", steps[len(steps)-1].Percent)
	}
}

func TestOutlineNarrowDropsConnectors(t *testing.T) {
	d := deck.Demo()
	steps := Outline(d, 40, 0, 0)
	for _, s := range steps {
		if s.Label == "→" {
			t.Fatalf("expected no connectors at 40 columns, found one at section %d", s.Section)
		}
	}
	wide := Outline(d, 120, 0, 0)
	if len(wide) <= len(steps) {
		t.Fatalf("expected more positions when connectors are shown (%d vs %d)", len(wide), len(steps))
	}
}

func TestOutlineEmptyGroup(t *testing.T) {
	d := &deck.Deck{Start: "s", Groups: []deck.Group{{Title: "empty"}}}
	steps := Outline(d, 120, 0, 0)
	if len(steps) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(steps))
	}
	if steps[2].Label != "(no slots)" || steps[2].Slot != -1 {
		t.Fatalf("unexpected empty body step %#v", steps[2])
	}
}

func TestWriteOutlineAlignsColumns(t *testing.T) {
	d := deck.Demo()
	var buf bytes.Buffer
	if err := WriteOutline(&buf, d, Outline(d, 120, 0, 0)); err != nil {
		t.Fatalf("write outline: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"popup-deck: 14 sections", "Interviews", "100.0%", "intro", "body"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in outline, got:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	header := lines[1]
	if !strings.HasPrefix(strings.TrimSpace(header), "#") {
		t.Fatalf("expected table header, got %q", header)
	}
}

func TestPopupOptionsCarryRunIDAndChildArgs(t *testing.T) {
	cfg := Config{PopupWidth: 70, PopupHeight: 60, ChildArgs: []string{"--deck", "d.toml", "--popup=false"}}
	opts := popupOptions(cfg, "/tmp/sock", "/usr/bin/popup-deck")
	if opts.WidthPercent != 70 || opts.HeightPercent != 60 {
		t.Fatalf("unexpected size %d%%x%d%%", opts.WidthPercent, opts.HeightPercent)
	}
	if len(opts.Command) != 4 || opts.Command[0] != "/usr/bin/popup-deck" || opts.Command[3] != "--popup=false" {
		t.Fatalf("unexpected command %v", opts.Command)
	}
	if opts.Env[envRunID] == "" {
		t.Fatalf("expected run id in popup environment")
	}
}

func TestLoadDeckMissingFile(t *testing.T) {
	if _, err := loadDeck("/nonexistent/deck.toml"); err == nil {
		t.Fatalf("expected error for missing deck")
	}
}
