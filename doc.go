/*
Package termdialog renders branching character dialogue in a terminal.

A dialogue line is plain text plus positioned markup attributes. The line is
split into styled segments, word-wrapped by grapheme cluster without losing
styling, and revealed one grapheme at a time like a typewriter. The building
blocks live in separate packages:

  - pkg/markup turns a marked-up line into styled segments.
  - pkg/wrap wraps styled segments into rows of a maximum width.
  - pkg/reveal drives the typewriter reveal.
  - pkg/widget holds the dialog box, options box and tooltip state.

This package loads YAML dialogue scripts and walks them node by node.

# Usage

	eng, err := termdialog.New("archive.yaml")
	if err != nil {
		log.Fatal(err)
	}

	state, err := eng.Start()
	if err != nil {
		log.Fatal(err)
	}

	for !state.Terminated() {
		step, err := eng.Render(state)
		if err != nil {
			log.Fatal(err)
		}
		if len(step.Options) > 0 {
			state, err = eng.Choose(state, step.Options[0].ID)
		} else {
			state, err = eng.Advance(state)
		}
		if err != nil {
			log.Fatal(err)
		}
	}

Runner drives the same loop over a reader and a writer for hosts without a
full screen terminal.
*/
package termdialog
