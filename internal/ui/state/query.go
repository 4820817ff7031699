package state

import (
	"strings"
	"unicode"
)

// Query is the picker's single-line filter text with a rune cursor. Every
// edit reports whether anything changed.
type Query struct {
	text   []rune
	cursor int
}

// NewQuery returns a query holding text with the cursor clamped to it.
func NewQuery(text string, cursor int) Query {
	q := Query{text: []rune(text)}
	q.cursor = clampInt(cursor, 0, len(q.text))
	return q
}

func (q Query) String() string {
	return string(q.text)
}

// Trimmed is the text used for matching.
func (q Query) Trimmed() string {
	return strings.TrimSpace(string(q.text))
}

// Cursor is the rune offset of the caret.
func (q Query) Cursor() int {
	return clampInt(q.cursor, 0, len(q.text))
}

// Split returns the text before the caret, the rune under it and the rest.
// The caret rune is empty at the end of the text.
func (q Query) Split() (before, at, after string) {
	pos := q.Cursor()
	if pos == len(q.text) {
		return string(q.text), "", ""
	}
	return string(q.text[:pos]), string(q.text[pos]), string(q.text[pos+1:])
}

func (q *Query) Insert(s string) bool {
	add := []rune(s)
	if len(add) == 0 {
		return false
	}
	pos := q.Cursor()
	text := make([]rune, 0, len(q.text)+len(add))
	text = append(text, q.text[:pos]...)
	text = append(text, add...)
	q.text = append(text, q.text[pos:]...)
	q.cursor = pos + len(add)
	return true
}

func (q *Query) Backspace() bool {
	pos := q.Cursor()
	if pos == 0 {
		return false
	}
	q.text = append(q.text[:pos-1], q.text[pos:]...)
	q.cursor = pos - 1
	return true
}

// DeleteWord removes the word before the caret along with the spaces after it.
func (q *Query) DeleteWord() bool {
	pos := q.Cursor()
	start := wordStart(q.text, pos)
	if start == pos {
		return false
	}
	q.text = append(q.text[:start], q.text[pos:]...)
	q.cursor = start
	return true
}

func (q *Query) Clear() bool {
	if len(q.text) == 0 {
		return false
	}
	q.text, q.cursor = nil, 0
	return true
}

func (q *Query) Home() bool { return q.moveTo(0) }

func (q *Query) End() bool { return q.moveTo(len(q.text)) }

func (q *Query) Left() bool { return q.moveTo(q.Cursor() - 1) }

func (q *Query) Right() bool { return q.moveTo(q.Cursor() + 1) }

func (q *Query) WordLeft() bool { return q.moveTo(wordStart(q.text, q.Cursor())) }

func (q *Query) WordRight() bool { return q.moveTo(wordEnd(q.text, q.Cursor())) }

func (q *Query) moveTo(pos int) bool {
	if pos < 0 || pos > len(q.text) || pos == q.Cursor() {
		return false
	}
	q.cursor = pos
	return true
}

// wordStart skips spaces then a word, moving left from pos.
func wordStart(text []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(text[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd skips a word then spaces, moving right from pos.
func wordEnd(text []rune, pos int) int {
	for pos < len(text) && !unicode.IsSpace(text[pos]) {
		pos++
	}
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	return pos
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
