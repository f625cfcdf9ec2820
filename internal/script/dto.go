package script

// Document is the on-disk shape of a dialogue script.
// It uses "mapstructure" tags so the generic YAML tree decodes strictly,
// and "yaml" tags so built documents marshal back to the same shape.
type Document struct {
	Title string         `mapstructure:"title" yaml:"title,omitempty"`
	Start string         `mapstructure:"start" yaml:"start,omitempty"`
	Nodes []NodeDocument `mapstructure:"nodes" yaml:"nodes,omitempty"`
}

// NodeDocument is one node: lines spoken in order, then the options offered.
type NodeDocument struct {
	ID      string           `mapstructure:"id" yaml:"id,omitempty"`
	Lines   []LineDocument   `mapstructure:"lines" yaml:"lines,omitempty"`
	Options []OptionDocument `mapstructure:"options" yaml:"options,omitempty"`
}

// LineDocument is a spoken line. Character, when set, is prefixed to the text.
type LineDocument struct {
	Character string              `mapstructure:"character" yaml:"character,omitempty"`
	Text      string              `mapstructure:"text" yaml:"text,omitempty"`
	Markup    []AttributeDocument `mapstructure:"markup" yaml:"markup,omitempty"`
}

// OptionDocument is a choice. An empty Next ends the dialogue.
type OptionDocument struct {
	ID     string              `mapstructure:"id" yaml:"id,omitempty"`
	Text   string              `mapstructure:"text" yaml:"text,omitempty"`
	Markup []AttributeDocument `mapstructure:"markup" yaml:"markup,omitempty"`
	Next   string              `mapstructure:"next" yaml:"next,omitempty"`
}

// AttributeDocument is a markup span over a line's text, in code points.
type AttributeDocument struct {
	Name       string         `mapstructure:"name" yaml:"name,omitempty"`
	Position   int            `mapstructure:"position" yaml:"position,omitempty"`
	Length     int            `mapstructure:"length" yaml:"length,omitempty"`
	Properties map[string]any `mapstructure:"properties" yaml:"properties,omitempty"`
}
