package markup

import (
	"maps"
	"slices"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Property is one recognized "style" property with its typed value.
// The set of implementations is closed: Bold, Italic, Underline,
// Foreground, Background and Zalgo.
type Property interface {
	isProperty()
}

// Bold renders the span in bold.
type Bold struct{}

// Italic renders the span in italics.
type Italic struct{}

// Underline underlines the span.
type Underline struct{}

// Foreground sets the span's text color.
type Foreground struct{ Color domain.Color }

// Background sets the span's background color.
type Background struct{ Color domain.Color }

// Zalgo replaces the span's text with its glitched rendition.
type Zalgo struct{}

func (Bold) isProperty()       {}
func (Italic) isProperty()     {}
func (Underline) isProperty()  {}
func (Foreground) isProperty() {}
func (Background) isProperty() {}
func (Zalgo) isProperty()      {}

// DecodeProperty maps a raw key/value pair onto a Property.
// It reports false for unknown keys, mistyped values, false flags,
// and palette indices outside 0..255.
func DecodeProperty(key string, v domain.Value) (Property, bool) {
	switch key {
	case domain.PropertyBold:
		return flag(v, Bold{})
	case domain.PropertyItalic:
		return flag(v, Italic{})
	case domain.PropertyUnderline:
		return flag(v, Underline{})
	case domain.PropertyZalgo:
		return flag(v, Zalgo{})
	case domain.PropertyColor:
		if c, ok := paletteIndex(v); ok {
			return Foreground{Color: c}, true
		}
	case domain.PropertyBackground:
		if c, ok := paletteIndex(v); ok {
			return Background{Color: c}, true
		}
	}
	return nil, false
}

// DecodeProperties decodes a property bag, skipping anything DecodeProperty rejects.
// Keys are visited in sorted order so the result is deterministic.
func DecodeProperties(props map[string]domain.Value) []Property {
	var out []Property
	for _, key := range slices.Sorted(maps.Keys(props)) {
		if p, ok := DecodeProperty(key, props[key]); ok {
			out = append(out, p)
		}
	}
	return out
}

func flag(v domain.Value, p Property) (Property, bool) {
	if b, ok := v.AsBool(); ok && b {
		return p, true
	}
	return nil, false
}

func paletteIndex(v domain.Value) (domain.Color, bool) {
	i, ok := v.AsInt()
	if !ok || i < 0 || i > 255 {
		return domain.Color{}, false
	}
	return domain.Indexed(uint8(i)), true
}

// Apply resolves props over text, returning the text to display and its style.
func Apply(props []Property, text string) (string, domain.Style) {
	var style domain.Style
	for _, p := range props {
		switch p := p.(type) {
		case Bold:
			style.Bold = true
		case Italic:
			style.Italic = true
		case Underline:
			style.Underline = true
		case Foreground:
			style.Fg = p.Color
		case Background:
			style.Bg = p.Color
		case Zalgo:
			text = Glitch(text)
		}
	}
	return text, style
}
