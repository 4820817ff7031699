package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	cols := []Column{{Title: "#", Align: AlignRight}, {Title: "role"}, {Title: "section"}}
	out := Format(cols, [][]string{
		{"1", "intro", "Discover"},
		{"12", "body", "Build"},
	})
	want := []string{
		" #  role   section",
		" 1  intro  Discover",
		"12  body   Build",
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], out[i])
		}
	}
}

func TestFormatMeasuresDisplayWidth(t *testing.T) {
	out := Format([]Column{{Title: "a"}, {Title: "b"}}, [][]string{{"→", "x"}, {"ab", "y"}})
	if out[1] != "→   x" {
		t.Fatalf("expected display-width padding, got %q", out[1])
	}
}

func TestFormatShortRows(t *testing.T) {
	out := Format([]Column{{Title: "a"}, {Title: "b", Align: AlignRight}}, [][]string{{"x"}, {"x", "y", "z"}})
	if out[1] != "x" {
		t.Fatalf("expected missing cell rendered empty, got %q", out[1])
	}
	if out[2] != "x  y" {
		t.Fatalf("expected extra cell dropped, got %q", out[2])
	}
}

func TestFormatNoColumns(t *testing.T) {
	if out := Format(nil, [][]string{{"x"}}); out != nil {
		t.Fatalf("expected nil without columns, got %v", out)
	}
}
