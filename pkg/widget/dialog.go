package widget

import (
	"time"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/markup"
	"github.com/aretw0/termdialog/pkg/reveal"
)

// DialogBox shows the line currently being spoken.
type DialogBox struct {
	// Enabled reports whether the host should draw the box.
	Enabled bool

	character string
	segments  []domain.Segment
	reveal    *reveal.Typewriter
}

// NewDialogBox returns an empty dialog box revealing one grapheme per interval.
func NewDialogBox(interval time.Duration) *DialogBox {
	return &DialogBox{reveal: reveal.New(interval)}
}

// SetLine segments line, records its speaker, and restarts the reveal.
func (d *DialogBox) SetLine(line domain.Line) {
	name, _ := line.CharacterName()
	d.SetSegments(name, markup.Segment(line))
}

// SetSegments shows already segmented text spoken by character.
func (d *DialogBox) SetSegments(character string, segments []domain.Segment) {
	d.character = character
	d.segments = segments
	d.reveal.SetLine(segments)
	d.Enabled = true
}

// Clear empties and hides the box.
func (d *DialogBox) Clear() {
	d.character = ""
	d.segments = nil
	d.reveal.SetLine(nil)
	d.Enabled = false
}

// Character returns the name of the speaker, or "" for narration.
func (d *DialogBox) Character() string { return d.character }

// Segments returns the full styled line.
func (d *DialogBox) Segments() []domain.Segment { return d.segments }

// Update advances the reveal by dt.
func (d *DialogBox) Update(dt time.Duration) { d.reveal.Advance(dt) }

// Skip reveals the rest of the line.
func (d *DialogBox) Skip() { d.reveal.Skip() }

// Complete reports whether the whole line is visible.
func (d *DialogBox) Complete() bool { return d.reveal.IsComplete() }

// Visible returns the graphemes revealed so far.
func (d *DialogBox) Visible() []domain.Grapheme { return d.reveal.VisiblePrefix() }

// Reveal exposes the underlying typewriter.
func (d *DialogBox) Reveal() *reveal.Typewriter { return d.reveal }
