package wrap

import (
	"strings"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/rivo/uniseg"
)

// Wrap word-wraps a styled line into rows of at most width columns.
//
// The plain text of segments is wrapped with Lines. Every line is a
// contiguous run of the plain text, so its byte span selects the styled
// graphemes it covers. Styled grapheme boundaries include every plain
// cluster boundary, which keeps the byte spans aligned even when a segment
// starts with a combining mark. The whitespace a break swallowed is skipped
// and rows made only of whitespace are dropped.
//
// The returned rows do not share capacity, so appending to one row never
// overwrites the next.
func Wrap(segments []domain.Segment, width int) [][]domain.Grapheme {
	graphemes := domain.Expand(segments)
	if len(graphemes) == 0 {
		return nil
	}
	plain := domain.Plain(segments)

	var rows [][]domain.Grapheme
	keep := func(chunk []domain.Grapheme) {
		for _, g := range chunk {
			if !isWhitespace(g.Symbol) {
				rows = append(rows, chunk)
				return
			}
		}
	}

	i, offset := 0, 0
	for _, line := range Lines(plain, width) {
		start := offset
		if k := strings.Index(plain[offset:], line); k >= 0 {
			start = offset + k
		}
		end := start + len(line)

		for i < len(graphemes) && offset < start {
			offset += len(graphemes[i].Symbol)
			i++
		}
		from := i
		for i < len(graphemes) && offset < end {
			offset += len(graphemes[i].Symbol)
			i++
		}
		keep(graphemes[from:i:i])
	}
	keep(graphemes[i:len(graphemes):len(graphemes)])
	return rows
}

// Width returns the display width of a row in terminal columns.
func Width(row []domain.Grapheme) int {
	var w int
	for _, g := range row {
		w += uniseg.StringWidth(g.Symbol)
	}
	return w
}
