package domain

// Attribute names with special meaning to the segmenter.
const (
	// AttributeStyle carries visual style properties (bold, color, ...).
	AttributeStyle = "style"
	// AttributeCharacter marks the speaking character's name prefix.
	// Its span is metadata and never rendered inline.
	AttributeCharacter = "character"
)

// Property keys understood on a "style" attribute.
const (
	PropertyBold       = "bold"
	PropertyItalic     = "italic"
	PropertyUnderline  = "underline"
	PropertyColor      = "color"
	PropertyBackground = "bg"
	PropertyZalgo      = "zalgo"

	// PropertyName is the property of a "character" attribute holding the name.
	PropertyName = "name"
)
