// Package table lays out plain-text tables for non-interactive output.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column is a table heading and the alignment of the cells beneath it.
type Column struct {
	Title string
	Align Alignment
}

const gap = "  "

// Format renders a heading line followed by rows. Column widths follow the
// widest cell as displayed in a terminal, and trailing blanks are trimmed.
// Missing cells render empty; extra cells are dropped.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	widths := make([]int, len(columns))
	for c, col := range columns {
		widths[c] = ansi.StringWidth(col.Title)
	}
	for _, row := range rows {
		for c := range columns {
			if c < len(row) {
				widths[c] = max(widths[c], ansi.StringWidth(row[c]))
			}
		}
	}
	out := make([]string, 0, len(rows)+1)
	heading := make([]string, len(columns))
	for c, col := range columns {
		heading[c] = col.Title
	}
	out = append(out, line(columns, widths, heading))
	for _, row := range rows {
		out = append(out, line(columns, widths, row))
	}
	return out
}

func line(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for c, col := range columns {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		if c > 0 {
			b.WriteString(gap)
		}
		pad := strings.Repeat(" ", widths[c]-ansi.StringWidth(cell))
		if col.Align == AlignRight {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
