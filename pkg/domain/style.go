package domain

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Color is an optional index into the 256-color terminal palette.
// The zero value means "terminal default".
type Color struct {
	index uint8
	set   bool
}

// Indexed returns the palette color i.
func Indexed(i uint8) Color { return Color{index: i, set: true} }

// Index returns the palette index and whether the color is set.
func (c Color) Index() (uint8, bool) { return c.index, c.set }

// IsSet reports whether c selects a palette entry.
func (c Color) IsSet() bool { return c.set }

// Style is the resolved visual style of a run of text.
// The zero value is the default style.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Fg        Color
	Bg        Color
}

// IsZero reports whether s is the default style.
func (s Style) IsZero() bool { return s == Style{} }

// Segment is a contiguous run of text sharing one style.
type Segment struct {
	Text  string
	Style Style
}

// Grapheme is a single grapheme cluster and the style it inherits from its segment.
type Grapheme struct {
	Symbol string
	Style  Style
}

// Graphemes expands the segment into its grapheme clusters.
func (s Segment) Graphemes() []Grapheme {
	var out []Grapheme
	g := uniseg.NewGraphemes(s.Text)
	for g.Next() {
		out = append(out, Grapheme{Symbol: g.Str(), Style: s.Style})
	}
	return out
}

// Expand concatenates the grapheme expansion of every segment, in order.
// Segments are expanded independently, so a cluster never spans two segments.
func Expand(segments []Segment) []Grapheme {
	var out []Grapheme
	for _, s := range segments {
		out = append(out, s.Graphemes()...)
	}
	return out
}

// Plain returns the concatenated text of segments, ignoring style.
func Plain(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Text returns the concatenated symbols of graphemes.
func Text(graphemes []Grapheme) string {
	var sb strings.Builder
	for _, g := range graphemes {
		sb.WriteString(g.Symbol)
	}
	return sb.String()
}
