package dsl

import (
	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
)

// Markup is a style attribute over a span of a line, in code points.
type Markup struct {
	Position   int
	Length     int
	Properties map[string]any
}

// Style marks a span with arbitrary style properties.
func Style(position, length int, props map[string]any) Markup {
	return Markup{Position: position, Length: length, Properties: props}
}

// Bold marks a span bold.
func Bold(position, length int) Markup {
	return Style(position, length, map[string]any{domain.PropertyBold: true})
}

// Italic marks a span italic.
func Italic(position, length int) Markup {
	return Style(position, length, map[string]any{domain.PropertyItalic: true})
}

// Color paints a span with a 256-color palette index.
func Color(position, length, index int) Markup {
	return Style(position, length, map[string]any{domain.PropertyColor: index})
}

// Zalgo glitches a span.
func Zalgo(position, length int) Markup {
	return Style(position, length, map[string]any{domain.PropertyZalgo: true})
}

// With merges the properties of other into m, for spans carrying several styles.
func (m Markup) With(other Markup) Markup {
	props := make(map[string]any, len(m.Properties)+len(other.Properties))
	for k, v := range m.Properties {
		props[k] = v
	}
	for k, v := range other.Properties {
		props[k] = v
	}
	m.Properties = props
	return m
}

func documents(markup []Markup) []script.AttributeDocument {
	if len(markup) == 0 {
		return nil
	}
	docs := make([]script.AttributeDocument, len(markup))
	for i, m := range markup {
		docs[i] = script.AttributeDocument{
			Name:       domain.AttributeStyle,
			Position:   m.Position,
			Length:     m.Length,
			Properties: m.Properties,
		}
	}
	return docs
}
