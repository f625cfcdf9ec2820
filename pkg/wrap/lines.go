package wrap

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

type cluster struct {
	text  string
	width int
}

// word is the text between two line-break opportunities: visible content
// followed by the whitespace a break may swallow.
type word struct {
	content    []cluster
	width      int
	space      string
	spaceWidth int
	hard       bool // a mandatory break follows
}

func words(text string) []word {
	var (
		out   []word
		w     word
		state = -1
		rest  = text
	)
	for len(rest) > 0 {
		var c string
		var boundaries int
		c, rest, boundaries, state = uniseg.StepString(rest, state)
		width := boundaries >> uniseg.ShiftWidth

		if isWhitespace(c) {
			w.space += c
			w.spaceWidth += width
		} else {
			if w.space != "" {
				// No break opportunity after the whitespace (e.g. before "!"),
				// so it belongs to the content.
				w.content = append(w.content, cluster{text: w.space, width: w.spaceWidth})
				w.width += w.spaceWidth
				w.space, w.spaceWidth = "", 0
			}
			w.content = append(w.content, cluster{text: c, width: width})
			w.width += width
		}

		switch boundaries & uniseg.MaskLine {
		case uniseg.LineMustBreak:
			w.hard = rest != ""
			out = append(out, w)
			w = word{}
		case uniseg.LineCanBreak:
			out = append(out, w)
			w = word{}
		}
	}
	return out
}

type filler struct {
	width int
	lines []string

	line       strings.Builder
	used       int
	open       bool
	space      string
	spaceWidth int
}

func (f *filler) flush() {
	f.lines = append(f.lines, f.line.String())
	f.line.Reset()
	f.used, f.open = 0, false
	f.space, f.spaceWidth = "", 0
}

func (f *filler) add(w word) {
	if f.open && f.used+f.spaceWidth+w.width > f.width {
		f.flush()
	}
	if f.open {
		f.line.WriteString(f.space)
		f.used += f.spaceWidth
	}
	for _, c := range w.content {
		// Only a word wider than the whole line gets here with no room left.
		if f.used > 0 && f.used+c.width > f.width {
			f.flush()
		}
		f.line.WriteString(c.text)
		f.used += c.width
	}
	f.open = true
	f.space, f.spaceWidth = w.space, w.spaceWidth
	if w.hard {
		f.flush()
	}
}

// Lines greedily word-wraps text to at most width columns per line.
//
// Lines break at UAX #14 line-break opportunities from uniseg (whitespace,
// after hyphens, around ideographs) and are measured in grapheme cluster widths; the whitespace at a break is dropped and mandatory
// breaks are honored. Words wider than width are split between grapheme
// clusters. A width below 1 is treated as 1. A single cluster wider than
// width still gets a line of its own.
func Lines(text string, width int) []string {
	f := &filler{width: max(width, 1)}
	for _, w := range words(text) {
		f.add(w)
	}
	if f.open {
		f.flush()
	}
	return f.lines
}

func isWhitespace(s string) bool {
	return s != "" && strings.TrimFunc(s, unicode.IsSpace) == ""
}
