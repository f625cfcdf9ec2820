/*
Package domain contains the core types shared by the dialogue text pipeline.

It defines the marked-up input a dialogue engine produces and the styled output
the renderer consumes. This package is kept pure and free of I/O, so the
segmenter, wrapper, and reveal machinery can be tested without a terminal.

# Key Entities

  - Line: Text plus positioned markup Attributes, as emitted by a dialogue engine.
  - Attribute: A named span with typed property Values.
  - Segment: A run of text sharing one resolved Style.
  - Grapheme: One grapheme cluster and its Style; the unit of wrapping and reveal.
  - Option: A selectable choice with a pre-segmented label.
  - State: The runtime position inside a dialogue script.
*/
package domain
