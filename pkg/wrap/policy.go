package wrap

// Chrome is the horizontal space an options box spends around its text:
// two borders, one column of padding per side, and the 3-column "-> "
// selection marker.
const Chrome = 7

// Policy picks an options box's interior width from the columns available.
type Policy struct {
	// Threshold is the available width above which the wide box is used.
	Threshold int
	Wide      int
	Narrow    int
}

// DefaultPolicy uses a 20-column box on terminals wider than 40 columns and
// a 10-column box otherwise.
var DefaultPolicy = Policy{Threshold: 40, Wide: 20, Narrow: 10}

// BoxWidth returns the wrap width for an options box.
func (p Policy) BoxWidth(available int) int {
	if available > p.Threshold {
		return p.Wide
	}
	return p.Narrow
}

// OuterWidth returns the full width of a box whose text wraps at box columns.
func OuterWidth(box int) int { return box + Chrome }

// OuterHeight returns the full height of a box holding rows lines of text.
func OuterHeight(rows int) int { return rows + 2 }
