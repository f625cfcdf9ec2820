/*
Package markup converts a marked-up dialogue line into styled segments.

A dialogue engine emits each line as plain text plus positioned attributes.
Segment walks those attributes in reading order and produces the runs of text
a renderer can draw, resolving "style" properties into a domain.Style and
dropping the "character" prefix, which callers read as metadata instead.

Unknown attribute names pass their text through unstyled; unknown property
keys are ignored, so newer scripts keep rendering on older builds.
*/
package markup
