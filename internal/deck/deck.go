// Package deck loads presentation content and turns it into the group layout
// consumed by the navigation core.
package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/popup-deck/internal/nav"
)

var (
	ErrEmptyDeck         = errors.New("deck has no content")
	ErrUnsupportedFormat = errors.New("unsupported deck format")
	ErrUnknownSlotType   = errors.New("unknown slot type")
	errMissingGroupTitle = errors.New("group title missing")
)

const (
	SlotTypeCard      = "card"
	SlotTypeConnector = "connector"
)

// Slot is a single horizontal step inside a group body.
type Slot struct {
	Type  string `toml:"type" yaml:"type"`
	Title string `toml:"title" yaml:"title"`
	Body  string `toml:"body" yaml:"body"`
}

// Kind maps the textual slot type onto the navigation slot kind. An empty
// type is a card.
func (s Slot) Kind() (nav.SlotKind, error) {
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case "", SlotTypeCard:
		return nav.SlotCard, nil
	case SlotTypeConnector:
		return nav.SlotConnector, nil
	default:
		return nav.SlotCard, fmt.Errorf("%w: %q", ErrUnknownSlotType, s.Type)
	}
}

type Group struct {
	Title string `toml:"title" yaml:"title"`
	Intro string `toml:"intro" yaml:"intro"`
	Slots []Slot `toml:"slot" yaml:"slot"`
}

// Deck is the full presentation: a start section, one intro and one body per
// group, and an end section.
type Deck struct {
	Title  string  `toml:"title" yaml:"title"`
	Start  string  `toml:"start" yaml:"start"`
	End    string  `toml:"end" yaml:"end"`
	Groups []Group `toml:"group" yaml:"group"`

	// Source is the path the deck was read from, empty for the built-in deck.
	Source string `toml:"-" yaml:"-"`
}

// Validate reports structural problems. Groups may be empty.
func (d *Deck) Validate() error {
	if d == nil {
		return ErrEmptyDeck
	}
	if len(d.Groups) == 0 && strings.TrimSpace(d.Start) == "" && strings.TrimSpace(d.End) == "" {
		return ErrEmptyDeck
	}
	for g, group := range d.Groups {
		if strings.TrimSpace(group.Title) == "" {
			return fmt.Errorf("group %d: %w", g+1, errMissingGroupTitle)
		}
		for s, slot := range group.Slots {
			if _, err := slot.Kind(); err != nil {
				return fmt.Errorf("group %d slot %d: %w", g+1, s+1, err)
			}
		}
	}
	return nil
}

// Specs returns the navigation layout for the deck. Every group body is a
// horizontal strip.
func (d *Deck) Specs() []nav.GroupSpec {
	specs := make([]nav.GroupSpec, len(d.Groups))
	for g, group := range d.Groups {
		kinds := make([]nav.SlotKind, 0, len(group.Slots))
		for _, slot := range group.Slots {
			kind, _ := slot.Kind()
			kinds = append(kinds, kind)
		}
		specs[g] = nav.GroupSpec{Horizontal: true, Slots: kinds}
	}
	return specs
}

// VisibleSlots returns the slots of group g that survive the layout rebuild.
// On narrow viewports connectors are dropped so indices line up with the
// navigation registry.
func (d *Deck) VisibleSlots(g int, mobile bool) []Slot {
	if g < 0 || g >= len(d.Groups) {
		return nil
	}
	slots := d.Groups[g].Slots
	out := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if kind, _ := slot.Kind(); mobile && kind == nav.SlotConnector {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// SectionTitle names the section at vertical index v.
func (d *Deck) SectionTitle(v int) string {
	role := nav.RoleOf(v, 2*len(d.Groups)+2)
	switch role.Kind {
	case nav.RoleStart:
		return d.startTitle()
	case nav.RoleEnd:
		return "End"
	default:
		return d.Groups[role.Group].Title
	}
}

// SectionText returns the prose shown for a standalone or intro section.
func (d *Deck) SectionText(v int) string {
	role := nav.RoleOf(v, 2*len(d.Groups)+2)
	switch role.Kind {
	case nav.RoleStart:
		return d.Start
	case nav.RoleEnd:
		return d.End
	case nav.RoleGroupIntro:
		return d.Groups[role.Group].Intro
	}
	return ""
}

// Header is one entry of the header bar: a label and the section it targets.
type Header struct {
	Label  string
	Anchor int
}

// Headers lists the header controls in display order, one per anchor.
func (d *Deck) Headers() []Header {
	anchors := nav.HeaderAnchors(len(d.Groups))
	headers := make([]Header, len(anchors))
	for i, anchor := range anchors {
		headers[i] = Header{Label: d.SectionTitle(anchor), Anchor: anchor}
	}
	return headers
}

func (d *Deck) startTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return "Start"
}
