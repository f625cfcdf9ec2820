package domain

// ExecutionStatus defines where the dialogue runtime currently stands.
type ExecutionStatus string

const (
	StatusSpeaking   ExecutionStatus = "speaking"   // Lines of the current node remain
	StatusChoosing   ExecutionStatus = "choosing"   // Lines exhausted, options offered
	StatusTerminated ExecutionStatus = "terminated" // Sink state reached
)

// State represents the current snapshot of a dialogue session.
type State struct {
	// CurrentNodeID is the identifier of the active node.
	CurrentNodeID string

	// LineIndex is the index of the line being shown within the node.
	LineIndex int

	// Status indicates if the dialogue is speaking, choosing, or done.
	Status ExecutionStatus

	// History tracks the nodes visited, in order.
	History []string
}

// NewState creates a clean state starting at a specific node.
func NewState(startNodeID string) *State {
	return &State{
		CurrentNodeID: startNodeID,
		Status:        StatusSpeaking,
		History:       []string{startNodeID},
	}
}

// Terminated reports whether the dialogue reached its end.
func (s *State) Terminated() bool { return s.Status == StatusTerminated }
