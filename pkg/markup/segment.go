package markup

import (
	"cmp"
	"slices"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Segment splits line into styled segments in reading order.
//
// Text outside any attribute becomes default-style segments. A "style"
// attribute resolves its properties over its span; any other attribute name
// keeps its text with the default style. The "character" span is dropped.
// Empty segments are never emitted.
//
// Attributes are sorted by position on a copy; line is not modified.
// Overlapping attributes are clamped so no text is emitted twice.
func Segment(line domain.Line) []domain.Segment {
	if len(line.Attributes) == 0 {
		return appendSegment(nil, domain.Segment{Text: line.TextWithoutCharacterName()})
	}

	attrs := slices.Clone(line.Attributes)
	slices.SortStableFunc(attrs, func(a, b domain.Attribute) int {
		return cmp.Compare(a.Position, b.Position)
	})

	runes := []rune(line.Text)
	var segments []domain.Segment
	cursor := 0
	for _, attr := range attrs {
		start := clamp(attr.Position, cursor, len(runes))
		end := clamp(attr.End(), start, len(runes))

		segments = appendSegment(segments, domain.Segment{Text: string(runes[cursor:start])})
		cursor = end

		if attr.Name == domain.AttributeCharacter {
			continue
		}
		segments = appendSegment(segments, styled(attr, string(runes[start:end])))
	}
	return appendSegment(segments, domain.Segment{Text: string(runes[cursor:])})
}

func styled(attr domain.Attribute, text string) domain.Segment {
	if attr.Name != domain.AttributeStyle {
		return domain.Segment{Text: text}
	}
	text, style := Apply(DecodeProperties(attr.Properties), text)
	return domain.Segment{Text: text, Style: style}
}

func appendSegment(segments []domain.Segment, s domain.Segment) []domain.Segment {
	if s.Text == "" {
		return segments
	}
	return append(segments, s)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
