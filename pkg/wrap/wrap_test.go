package wrap

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowTexts(rows [][]domain.Grapheme) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = domain.Text(row)
	}
	return out
}

func TestWrap_Empty(t *testing.T) {
	assert.Empty(t, Wrap(nil, 20))
	assert.Empty(t, Wrap([]domain.Segment{{Text: ""}}, 20))
	assert.Empty(t, Wrap([]domain.Segment{{Text: "   "}}, 20))
}

func TestWrap_PreservesStyleAcrossRows(t *testing.T) {
	bold := domain.Style{Bold: true, Fg: domain.Indexed(1)}
	segments := []domain.Segment{
		{Text: "Ask about "},
		{Text: "the ledger", Style: bold},
		{Text: " again"},
	}

	rows := Wrap(segments, 10)
	require.Equal(t, []string{"Ask about", "the ledger", "again"}, rowTexts(rows))

	for _, g := range rows[0] {
		assert.True(t, g.Style.IsZero(), "first row is unstyled")
	}
	for _, g := range rows[1] {
		assert.Equal(t, bold, g.Style, "styled span survives the rewrap")
	}
	for _, g := range rows[2] {
		assert.True(t, g.Style.IsZero())
	}
}

func TestWrap_StyleBoundaryInsideRow(t *testing.T) {
	italic := domain.Style{Italic: true}
	rows := Wrap([]domain.Segment{{Text: "ab"}, {Text: "cd", Style: italic}, {Text: " ef"}}, 20)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 7)
	assert.True(t, rows[0][1].Style.IsZero())
	assert.Equal(t, italic, rows[0][2].Style)
	assert.Equal(t, italic, rows[0][3].Style)
	assert.True(t, rows[0][4].Style.IsZero())
}

func TestWrap_MultipleSpacesBetweenWords(t *testing.T) {
	rows := Wrap([]domain.Segment{{Text: "a   b"}}, 1)
	assert.Equal(t, []string{"a", "b"}, rowTexts(rows))
}

func TestWrap_RowsDoNotShareCapacity(t *testing.T) {
	rows := Wrap([]domain.Segment{{Text: "abc def"}}, 3)
	require.Len(t, rows, 2)
	_ = append(rows[0], domain.Grapheme{Symbol: "X"})
	assert.Equal(t, "def", domain.Text(rows[1]))
}

func TestWrap_ZalgoKeepsClusters(t *testing.T) {
	line := domain.Line{
		Text: "the walls are breathing",
		Attributes: []domain.Attribute{{
			Name:       "style",
			Position:   4,
			Length:     5,
			Properties: map[string]domain.Value{"zalgo": domain.Bool(true)},
		}},
	}

	rows := Wrap(markup.Segment(line), 9)
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], 9, "marks collapse into their base clusters")
	assert.Equal(t, "the ", domain.Text(rows[0][:4]))
	assert.Equal(t, markup.Glitch("walls"), domain.Text(rows[0][4:]))
	assert.Equal(t, "are", domain.Text(rows[1]))
	assert.Equal(t, "breathing", domain.Text(rows[2]))
}

func TestWrap_CombiningMarkAtSegmentStart(t *testing.T) {
	// The mark is its own cluster in the styled expansion but joins the
	// previous cluster in the plain text.
	segments := []domain.Segment{{Text: "e"}, {Text: "\u0301 more text", Style: domain.Style{Italic: true}}}

	rows := Wrap(segments, 4)
	require.Equal(t, []string{"e\u0301", "more", "text"}, rowTexts(rows))
	assert.Len(t, rows[0], 2, "both styled clusters stay on the first row")

	var got []domain.Grapheme
	for _, row := range rows {
		got = append(got, row...)
	}
	assert.Equal(t, nonSpace(domain.Expand(segments)), nonSpace(got))
}

const alphabet = "abcdefghijklmnopqrstuvwxyzéü"

var wideWords = []string{"日本", "☕", "🇧🇷", "naïve"}

func randomSegments(rng *rand.Rand) []domain.Segment {
	var segments []domain.Segment
	for range rng.IntN(6) + 1 {
		var words []string
		for range rng.IntN(5) + 1 {
			if rng.IntN(6) == 0 {
				words = append(words, wideWords[rng.IntN(len(wideWords))])
				continue
			}
			letters := []rune(alphabet)
			var sb strings.Builder
			for range rng.IntN(12) + 1 {
				sb.WriteRune(letters[rng.IntN(len(letters))])
			}
			words = append(words, sb.String())
		}
		style := domain.Style{Bold: rng.IntN(2) == 0, Fg: domain.Indexed(uint8(rng.IntN(256)))}
		text := strings.Join(words, " ")
		if len(segments) > 0 {
			text = " " + text
		}
		segments = append(segments, domain.Segment{Text: text, Style: style})
	}
	return segments
}

func nonSpace(graphemes []domain.Grapheme) []domain.Grapheme {
	var out []domain.Grapheme
	for _, g := range graphemes {
		if g.Symbol != " " {
			out = append(out, g)
		}
	}
	return out
}

func TestWrap_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		segments := randomSegments(rng)
		width := rng.IntN(30) + 2

		rows := Wrap(segments, width)

		var flattened []domain.Grapheme
		for _, row := range rows {
			require.NotEmpty(t, row)
			assert.LessOrEqual(t, Width(row), width, "row %q exceeds width %d", domain.Text(row), width)
			assert.False(t, len(row) == 1 && row[0].Symbol == " ", "bare space row")
			assert.NotEqual(t, " ", row[0].Symbol, "row starts with a swallowed separator")
			flattened = append(flattened, row...)
		}

		assert.Equal(t, nonSpace(domain.Expand(segments)), nonSpace(flattened),
			"graphemes and styles survive the rewrap (width %d)", width)
	}
}
