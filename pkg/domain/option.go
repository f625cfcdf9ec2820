package domain

// Option is a selectable dialogue choice.
// Label is already segmented, exactly as a spoken line would be.
type Option struct {
	ID    string
	Label []Segment
	// Next is the node the choice leads to. Empty ends the dialogue.
	Next string
}
