package domain

import (
	"fmt"
	"strings"
)

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindInteger
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a markup property value tagged by its kind.
// Only the field matching Kind is meaningful.
type Value struct {
	Kind    ValueKind
	Bool    bool
	Integer int64
	String  string
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{Kind: KindInteger, Integer: i} }

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, String: s} }

// AsBool reports the boolean payload, or false if v is not a bool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// AsInt reports the integer payload, or false if v is not an integer.
func (v Value) AsInt() (int64, bool) {
	if v.Kind != KindInteger {
		return 0, false
	}
	return v.Integer, true
}

// AsString reports the string payload, or false if v is not a string.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.String, true
}

// Attribute is a named markup annotation over a span of line text.
// Position and Length are measured in code points (runes).
type Attribute struct {
	Name       string
	Position   int
	Length     int
	Properties map[string]Value
}

// End returns the code point offset just past the attribute's span.
func (a Attribute) End() int { return a.Position + a.Length }

// Line is one marked-up line of dialogue.
// Attributes of a single line never overlap.
type Line struct {
	Text       string
	Attributes []Attribute
}

// Span returns the substring of text covering code points [start, end).
// Offsets outside the text are clamped.
func Span(text string, start, end int) string {
	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	return string(runes[start:end])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TextForAttribute returns the text spanned by a.
func (l Line) TextForAttribute(a Attribute) string {
	return Span(l.Text, a.Position, a.End())
}

// CharacterAttribute returns the line's "character" attribute, if present.
func (l Line) CharacterAttribute() (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == AttributeCharacter {
			return a, true
		}
	}
	return Attribute{}, false
}

// CharacterName returns the speaking character's name.
// The "name" property wins; otherwise the spanned prefix is used without its ": " suffix.
func (l Line) CharacterName() (string, bool) {
	a, ok := l.CharacterAttribute()
	if !ok {
		return "", false
	}
	if name, ok := a.Properties[PropertyName].AsString(); ok && name != "" {
		return name, true
	}
	name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(l.TextForAttribute(a)), ":"))
	return name, name != ""
}

// TextWithoutCharacterName returns the line text with the character prefix removed.
func (l Line) TextWithoutCharacterName() string {
	a, ok := l.CharacterAttribute()
	if !ok {
		return l.Text
	}
	return Span(l.Text, 0, a.Position) + Span(l.Text, a.End(), len(l.Text))
}
