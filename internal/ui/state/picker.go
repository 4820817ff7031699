// Package state holds the jump picker: a filterable list of header targets
// with its own cursor and scroll window.
package state

import "strconv"

// Entry is one jump target.
type Entry struct {
	Key    string
	Label  string
	Anchor int
}

// Picker tracks the filter query, the filtered entries and the cursor.
type Picker struct {
	Entries        []Entry
	Full           []Entry
	Query          Query
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPicker builds a picker over entries with the cursor on the entry whose
// anchor equals active, or the first entry.
func NewPicker(entries []Entry, active int) *Picker {
	p := &Picker{LastCursor: -1}
	p.SetEntries(entries)
	if idx := p.IndexOfAnchor(active); idx >= 0 {
		p.Cursor = idx
	}
	return p
}

// EntriesFromLabels numbers labels from 1 and pairs them with anchors.
func EntriesFromLabels(labels []string, anchors []int) []Entry {
	n := len(labels)
	if len(anchors) < n {
		n = len(anchors)
	}
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Key: strconv.Itoa(i + 1), Label: labels[i], Anchor: anchors[i]}
	}
	return entries
}

// SetEntries replaces the full entry list and re-applies the filter.
func (p *Picker) SetEntries(entries []Entry) {
	prevOffset := p.ViewportOffset
	p.Full = CloneEntries(entries)
	p.applyFilter()
	if len(p.Entries) == 0 || prevOffset < 0 || prevOffset > len(p.Entries)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

// IndexOfAnchor returns the filtered index targeting anchor, or -1.
func (p *Picker) IndexOfAnchor(anchor int) int {
	for i, entry := range p.Entries {
		if entry.Anchor == anchor {
			return i
		}
	}
	return -1
}

// Selected returns the entry under the cursor.
func (p *Picker) Selected() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.Cursor], true
}

// CloneEntries copies entries into a fresh slice.
func CloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
