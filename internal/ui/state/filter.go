package state

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Edit applies edit to the query and refilters when the text changed. It
// reports whether the edit did anything.
func (p *Picker) Edit(edit func(*Query) bool) bool {
	prev := p.Query.Trimmed()
	if !edit(&p.Query) {
		return false
	}
	if p.Query.Trimmed() != prev {
		p.refilter(prev)
	}
	return true
}

// SetFilter replaces the query and leaves the caret at its end.
func (p *Picker) SetFilter(text string) {
	p.Edit(func(q *Query) bool {
		*q = NewQuery(text, len([]rune(text)))
		return true
	})
}

// refilter recomputes the visible entries. The cursor jumps to the best
// match while a query is set and returns to where it was once the query is
// cleared.
func (p *Picker) refilter(prev string) {
	query := p.Query.Trimmed()
	if query != "" && prev == "" {
		p.LastCursor = p.Cursor
	}
	p.applyFilter()
	switch {
	case query != "":
		p.Cursor = max(BestMatchIndex(p.Entries, query), 0)
	case prev != "":
		if p.LastCursor >= 0 && p.LastCursor < len(p.Entries) {
			p.Cursor = p.LastCursor
		}
		p.LastCursor = -1
	}
}

func (p *Picker) applyFilter() {
	p.Entries = FilterEntries(p.Full, p.Query.Trimmed())
	if len(p.Entries) == 0 {
		p.Cursor, p.ViewportOffset = 0, 0
		return
	}
	p.Cursor = clampInt(p.Cursor, 0, len(p.Entries)-1)
	if p.ViewportOffset >= len(p.Entries) {
		p.ViewportOffset = 0
	}
}

// FilterEntries keeps entries whose label fuzzy-matches query, in their
// original order. A query that is a header number matches that header too.
func FilterEntries(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneEntries(entries)
	}
	keep := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labelsOf(entries)) {
		keep[rank.OriginalIndex] = true
	}
	out := make([]Entry, 0, len(keep)+1)
	for i, entry := range entries {
		if keep[i] || entry.Key == query {
			out = append(out, entry)
		}
	}
	return out
}

// BestMatchIndex picks the entry a query most likely means: an exact label
// or key, then a label prefix, then the closest fuzzy match. It returns -1
// only when entries is empty.
func BestMatchIndex(entries []Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	lower := strings.ToLower(query)
	for i, entry := range entries {
		if entry.Key == query || strings.EqualFold(entry.Label, query) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labelsOf(entries))
	if len(ranks) == 0 {
		return 0
	}
	sort.Stable(ranks)
	return ranks[0].OriginalIndex
}

func labelsOf(entries []Entry) []string {
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	return labels
}

// Closest returns the entry of full whose label is the fewest edits away
// from query. It is the suggestion shown when nothing matches.
func (p *Picker) Closest() (Entry, bool) {
	query := strings.ToLower(p.Query.Trimmed())
	if query == "" || len(p.Full) == 0 {
		return Entry{}, false
	}
	best, bestDist := 0, -1
	for i, entry := range p.Full {
		dist := levenshtein.ComputeDistance(query, strings.ToLower(entry.Label))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return p.Full[best], true
}
