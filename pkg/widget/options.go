package widget

import (
	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/wrap"
)

// OptionsBox lists the choices offered at the end of a node.
type OptionsBox struct {
	// Enabled reports whether the host should draw the box.
	Enabled bool

	policy   wrap.Policy
	options  []domain.Option
	selected int

	// rows caches the wrapped labels for cachedWidth.
	rows        [][][]domain.Grapheme
	cachedWidth int
}

// OptionsBoxOption configures an OptionsBox.
type OptionsBoxOption func(*OptionsBox)

// WithPolicy overrides the box width policy.
func WithPolicy(p wrap.Policy) OptionsBoxOption {
	return func(o *OptionsBox) {
		o.policy = p
	}
}

// NewOptionsBox returns an empty options box using wrap.DefaultPolicy.
func NewOptionsBox(opts ...OptionsBoxOption) *OptionsBox {
	o := &OptionsBox{policy: wrap.DefaultPolicy}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetOptions replaces the listed options and selects the first one.
func (o *OptionsBox) SetOptions(options []domain.Option) {
	o.options = options
	o.selected = 0
	o.rows = nil
	o.cachedWidth = 0
	o.Enabled = len(options) > 0
}

// Clear empties and hides the box.
func (o *OptionsBox) Clear() { o.SetOptions(nil) }

// Options returns the listed options.
func (o *OptionsBox) Options() []domain.Option { return o.options }

// Selected returns the highlighted option.
func (o *OptionsBox) Selected() (domain.Option, bool) {
	if len(o.options) == 0 {
		return domain.Option{}, false
	}
	return o.options[o.selected], true
}

// SelectedIndex returns the index of the highlighted option.
func (o *OptionsBox) SelectedIndex() int { return o.selected }

// Select highlights option i. Out of range indices are ignored.
func (o *OptionsBox) Select(i int) {
	if i >= 0 && i < len(o.options) {
		o.selected = i
	}
}

// Next highlights the following option, wrapping around.
func (o *OptionsBox) Next() {
	if n := len(o.options); n > 0 {
		o.selected = (o.selected + 1) % n
	}
}

// Previous highlights the preceding option, wrapping around.
func (o *OptionsBox) Previous() {
	if n := len(o.options); n > 0 {
		o.selected = (o.selected - 1 + n) % n
	}
}

// OptionsLayout is the computed geometry of an options box.
type OptionsLayout struct {
	// BoxWidth is the interior wrap width.
	BoxWidth int
	// Rows holds each option's wrapped label, in option order.
	Rows [][][]domain.Grapheme
	// Width and Height are the outer dimensions including borders.
	Width  int
	Height int
}

// Layout wraps every label for the given available columns.
// Wrapped labels are cached until the box width or the options change.
func (o *OptionsBox) Layout(available int) OptionsLayout {
	box := o.policy.BoxWidth(available)
	if o.rows == nil || o.cachedWidth != box {
		o.rows = make([][][]domain.Grapheme, len(o.options))
		for i, opt := range o.options {
			o.rows[i] = wrap.Wrap(opt.Label, box)
		}
		o.cachedWidth = box
	}

	var lines int
	for _, r := range o.rows {
		lines += len(r)
	}
	return OptionsLayout{
		BoxWidth: box,
		Rows:     o.rows,
		Width:    wrap.OuterWidth(box),
		Height:   wrap.OuterHeight(lines),
	}
}
