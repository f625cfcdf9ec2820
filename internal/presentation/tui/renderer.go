package tui

import (
	"strconv"
	"strings"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/widget"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	hardwrap "github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
)

// Dialog box limits, in cells.
const (
	DialogMaxWidth  = 100
	DialogMaxHeight = 10

	highlightSymbol = "-> "
)

// Renderer draws widgets as ANSI text for a terminal.
type Renderer struct {
	profile termenv.Profile
	border  lipgloss.Border
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithProfile forces a color profile instead of detecting it from the environment.
func WithProfile(p termenv.Profile) RendererOption {
	return func(r *Renderer) {
		r.profile = p
	}
}

// NewRenderer creates a renderer for the current terminal.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		profile: termenv.EnvColorProfile(),
		border:  lipgloss.NormalBorder(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Graphemes renders styled graphemes, grouping runs that share a style.
func (r *Renderer) Graphemes(graphemes []domain.Grapheme) string {
	var sb strings.Builder
	for start := 0; start < len(graphemes); {
		end := start + 1
		for end < len(graphemes) && graphemes[end].Style == graphemes[start].Style {
			end++
		}
		sb.WriteString(r.styled(domain.Text(graphemes[start:end]), graphemes[start].Style))
		start = end
	}
	return sb.String()
}

// Segments renders styled segments.
func (r *Renderer) Segments(segments []domain.Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(r.styled(s.Text, s.Style))
	}
	return sb.String()
}

func (r *Renderer) styled(text string, style domain.Style) string {
	if style.IsZero() {
		return text
	}
	s := r.profile.String(text)
	if style.Bold {
		s = s.Bold()
	}
	if style.Italic {
		s = s.Italic()
	}
	if style.Underline {
		s = s.Underline()
	}
	if i, ok := style.Fg.Index(); ok {
		s = s.Foreground(r.profile.Color(strconv.Itoa(int(i))))
	}
	if i, ok := style.Bg.Index(); ok {
		s = s.Background(r.profile.Color(strconv.Itoa(int(i))))
	}
	return s.String()
}

// DialogBox draws the revealed part of the current line in a bordered box
// at most DialogMaxWidth wide, titled with the speaker's name.
func (r *Renderer) DialogBox(box *widget.DialogBox, width int) string {
	outer := min(width, DialogMaxWidth)
	inner := max(outer-4, 1)

	text := r.Graphemes(box.Visible())
	text = hardwrap.String(wordwrap.String(text, inner), inner)
	lines := strings.Split(text, "\n")
	if limit := DialogMaxHeight - 2; len(lines) > limit {
		lines = lines[:limit]
	}

	body := lipgloss.NewStyle().
		Border(r.border, false, true, true, true).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))
	return r.titledTop(box.Character(), outer) + "\n" + body
}

// titledTop draws a top border of the given width with title inset after the corner.
func (r *Renderer) titledTop(title string, width int) string {
	fill := max(width-2, 0)
	if title == "" {
		return r.border.TopLeft + strings.Repeat(r.border.Top, fill) + r.border.TopRight
	}
	title = truncate.String(title, uint(max(fill-1, 0)))
	used := lipgloss.Width(title)
	return r.border.TopLeft + title + strings.Repeat(r.border.Top, max(fill-used, 0)) + r.border.TopRight
}

// OptionsBox draws the options list for the available columns. Every row is
// indented by the selection marker; the highlighted option's first row shows it.
func (r *Renderer) OptionsBox(box *widget.OptionsBox, available int) string {
	layout := box.Layout(available)

	var rows []string
	for i, option := range layout.Rows {
		for j, row := range option {
			marker := strings.Repeat(" ", len(highlightSymbol))
			if i == box.SelectedIndex() && j == 0 {
				marker = highlightSymbol
			}
			rows = append(rows, marker+r.Graphemes(row))
		}
	}

	return lipgloss.NewStyle().
		Border(r.border).
		Padding(0, 1).
		Width(layout.Width - 2).
		Render(strings.Join(rows, "\n"))
}

// Tooltip draws the interaction hint as a small centered box.
func (r *Renderer) Tooltip(tip *widget.Tooltip) string {
	return lipgloss.NewStyle().
		Border(r.border).
		Padding(0, 1).
		Width(widget.TooltipWidth - 2).
		Align(lipgloss.Center).
		Render(tip.Key)
}

// Place positions content inside a width x height frame.
func Place(width, height int, h, v lipgloss.Position, content string) string {
	return lipgloss.Place(width, height, h, v, content)
}
