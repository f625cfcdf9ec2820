package widget

// Tooltip dimensions: a one-character hint, bordered and padded.
const (
	TooltipWidth  = 5
	TooltipHeight = 3
)

// Tooltip hints at the key that starts an interaction.
type Tooltip struct {
	Enabled bool
	Key     string
}

// NewTooltip returns a hidden tooltip for key.
func NewTooltip(key string) *Tooltip {
	return &Tooltip{Key: key}
}
