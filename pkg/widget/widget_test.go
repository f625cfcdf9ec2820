package widget

import (
	"testing"
	"time"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/wrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogBox_SetLine(t *testing.T) {
	box := NewDialogBox(10 * time.Millisecond)
	assert.False(t, box.Enabled)

	box.SetLine(domain.Line{
		Text: "Mara: The door is locked.",
		Attributes: []domain.Attribute{
			{Name: domain.AttributeCharacter, Position: 0, Length: 6, Properties: map[string]domain.Value{"name": domain.String("Mara")}},
			{Name: domain.AttributeStyle, Position: 18, Length: 6, Properties: map[string]domain.Value{"italic": domain.Bool(true)}},
		},
	})

	assert.True(t, box.Enabled)
	assert.Equal(t, "Mara", box.Character())
	assert.Equal(t, "The door is locked.", domain.Plain(box.Segments()))
	assert.Empty(t, box.Visible())
	assert.False(t, box.Complete())

	box.Update(40 * time.Millisecond)
	assert.Equal(t, "The ", domain.Text(box.Visible()))

	box.Skip()
	assert.True(t, box.Complete())
	visible := box.Visible()
	require.Len(t, visible, 19)
	assert.True(t, visible[12].Style.Italic)
}

func TestDialogBox_NarrationHasNoCharacter(t *testing.T) {
	box := NewDialogBox(0)
	box.SetLine(domain.Line{Text: "Rain taps the window."})
	assert.Equal(t, "", box.Character())
	assert.True(t, box.Complete(), "zero interval reveals instantly")
}

func TestDialogBox_Clear(t *testing.T) {
	box := NewDialogBox(time.Millisecond)
	box.SetLine(domain.Line{Text: "Hi"})
	box.Clear()
	assert.False(t, box.Enabled)
	assert.Empty(t, box.Segments())
	assert.True(t, box.Complete())
}

func options(labels ...string) []domain.Option {
	out := make([]domain.Option, len(labels))
	for i, l := range labels {
		out[i] = domain.Option{ID: l, Label: []domain.Segment{{Text: l}}}
	}
	return out
}

func TestOptionsBox_Selection(t *testing.T) {
	box := NewOptionsBox()
	_, ok := box.Selected()
	assert.False(t, ok)
	box.Next()
	box.Previous()

	box.SetOptions(options("yes", "no", "maybe"))
	assert.True(t, box.Enabled)

	sel, ok := box.Selected()
	require.True(t, ok)
	assert.Equal(t, "yes", sel.ID)

	box.Previous()
	assert.Equal(t, 2, box.SelectedIndex())
	box.Next()
	assert.Equal(t, 0, box.SelectedIndex())
	box.Select(1)
	sel, _ = box.Selected()
	assert.Equal(t, "no", sel.ID)
	box.Select(7)
	assert.Equal(t, 1, box.SelectedIndex())

	box.SetOptions(options("again"))
	assert.Equal(t, 0, box.SelectedIndex())
}

func TestOptionsBox_LayoutPolicy(t *testing.T) {
	box := NewOptionsBox()
	box.SetOptions(options("Ask about the ledger", "Leave"))

	wide := box.Layout(80)
	assert.Equal(t, 20, wide.BoxWidth)
	assert.Equal(t, 27, wide.Width)
	require.Len(t, wide.Rows, 2)
	assert.Len(t, wide.Rows[0], 1)
	assert.Equal(t, 4, wide.Height)

	narrow := box.Layout(40)
	assert.Equal(t, 10, narrow.BoxWidth)
	assert.Equal(t, 17, narrow.Width)
	require.Len(t, narrow.Rows[0], 2)
	assert.Equal(t, "Ask about", domain.Text(narrow.Rows[0][0]))
	assert.Equal(t, "the ledger", domain.Text(narrow.Rows[0][1]))
	assert.Equal(t, 5, narrow.Height)
}

func TestOptionsBox_CustomPolicy(t *testing.T) {
	box := NewOptionsBox(WithPolicy(wrap.Policy{Threshold: 100, Wide: 50, Narrow: 4}))
	box.SetOptions(options("go north"))

	layout := box.Layout(80)
	assert.Equal(t, 4, layout.BoxWidth)
	require.Len(t, layout.Rows[0], 3)
	assert.Equal(t, "go", domain.Text(layout.Rows[0][0]))
	assert.Equal(t, "nort", domain.Text(layout.Rows[0][1]))
}

func TestTooltip(t *testing.T) {
	tip := NewTooltip("E")
	assert.False(t, tip.Enabled)
	assert.Equal(t, "E", tip.Key)
}
