package nav

import (
	"reflect"
	"testing"
)

func mixedSpec() GroupSpec {
	return GroupSpec{Horizontal: true, Slots: []SlotKind{SlotCard, SlotConnector, SlotCard, SlotConnector, SlotCard}}
}

func TestRegistryKeepsConnectorsAboveBreakpoint(t *testing.T) {
	reg := NewRegistry([]GroupSpec{mixedSpec()}, nil, 0)
	width, ratio := 769.0, DefaultConnectorRatio
	reg.Rebuild(width)
	if got := reg.SlotCount(0); got != 5 {
		t.Fatalf("expected 5 slots above breakpoint, got %d", got)
	}
	connector := width * ratio
	want := []float64{width, connector, width, connector, width}
	if got := reg.SlotWidths(0); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected widths %v, got %v", want, got)
	}
}

func TestRegistryDropsConnectorsAtBreakpoint(t *testing.T) {
	reg := NewRegistry([]GroupSpec{mixedSpec()}, nil, 0)
	reg.Rebuild(DefaultMobileBreakpoint)
	if !reg.IsMobile(DefaultMobileBreakpoint) {
		t.Fatalf("expected width equal to breakpoint to count as mobile")
	}
	if got := reg.SlotCount(0); got != 3 {
		t.Fatalf("expected connectors removed, got %d slots", got)
	}
	for i, kind := range reg.SlotKinds(0) {
		if kind != SlotCard {
			t.Fatalf("expected only cards, slot %d is %s", i, kind)
		}
	}
	if widths := reg.SlotWidths(0); len(widths) != reg.SlotCount(0) {
		t.Fatalf("expected one width per slot, got %d widths", len(widths))
	}
}

func TestRegistryCustomBreakpointAndRatio(t *testing.T) {
	reg := NewRegistry([]GroupSpec{mixedSpec()}, ProportionalMeasurer{ConnectorRatio: 0.5}, 60)
	reg.Rebuild(80)
	if reg.Breakpoint() != 60 {
		t.Fatalf("expected breakpoint 60, got %v", reg.Breakpoint())
	}
	if got := reg.SlotWidths(0)[1]; got != 40 {
		t.Fatalf("expected connector width 40, got %v", got)
	}
	reg.Rebuild(60)
	if got := reg.SlotCount(0); got != 3 {
		t.Fatalf("expected 3 slots at custom breakpoint, got %d", got)
	}
}

func TestRegistrySectionCount(t *testing.T) {
	if got := newTestRegistry(6, 4).SectionCount(); got != 14 {
		t.Fatalf("expected 14 sections for 6 groups, got %d", got)
	}
	if got := newTestRegistry(0, 0).SectionCount(); got != 2 {
		t.Fatalf("expected start and end only, got %d", got)
	}
}

func TestRegistryPanicsOnUnknownGroup(t *testing.T) {
	reg := newTestRegistry(2, 3)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown group")
		}
	}()
	reg.SlotCount(2)
}

func TestRegistrySetSpecsKeepsWidth(t *testing.T) {
	reg := newTestRegistry(1, 2)
	reg.SetSpecs(cardGroups(3, 1))
	if reg.GroupCount() != 3 {
		t.Fatalf("expected 3 groups, got %d", reg.GroupCount())
	}
	if got := reg.SlotWidths(2)[0]; got != wideViewport {
		t.Fatalf("expected re-measure at %v, got %v", wideViewport, got)
	}
}

func TestRoleOf(t *testing.T) {
	cases := []struct {
		v    int
		want Role
	}{
		{0, Role{Kind: RoleStart, Group: -1}},
		{1, Role{Kind: RoleGroupIntro, Group: 0}},
		{2, Role{Kind: RoleGroupBody, Group: 0}},
		{3, Role{Kind: RoleGroupIntro, Group: 1}},
		{4, Role{Kind: RoleGroupBody, Group: 1}},
		{13, Role{Kind: RoleEnd, Group: -1}},
	}
	for _, tc := range cases {
		if got := RoleOf(tc.v, 14); got != tc.want {
			t.Fatalf("RoleOf(%d): expected %s, got %s", tc.v, tc.want, got)
		}
	}
	for g := 0; g < 6; g++ {
		if r := RoleOf(IntroIndex(g), 14); r.Kind != RoleGroupIntro || r.Group != g {
			t.Fatalf("expected intro of group %d, got %s", g, r)
		}
		if r := RoleOf(BodyIndex(g), 14); r.Kind != RoleGroupBody || r.Group != g {
			t.Fatalf("expected body of group %d, got %s", g, r)
		}
	}
}
