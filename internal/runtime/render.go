package runtime

import (
	"github.com/aretw0/termdialog/pkg/domain"
)

// Step is what the host should display for a state.
type Step struct {
	NodeID string
	// Line is the line being spoken. While choosing it is the node's last
	// line, kept on screen under the options. Nil when the node has no lines.
	Line *domain.Line
	// Options is non-empty only while choosing.
	Options []domain.Option
	// Terminal is true once the dialogue has ended.
	Terminal bool
}

// Render describes the view for state without transitioning.
func (e *Engine) Render(state *domain.State) (Step, error) {
	node, err := e.script.Node(state.CurrentNodeID)
	if err != nil {
		return Step{}, err
	}

	step := Step{NodeID: node.ID}
	switch {
	case state.LineIndex < len(node.Lines):
		step.Line = &node.Lines[state.LineIndex]
	case len(node.Lines) > 0:
		step.Line = &node.Lines[len(node.Lines)-1]
	}

	switch state.Status {
	case domain.StatusChoosing:
		step.Options = node.Options
	case domain.StatusTerminated:
		step.Terminal = true
	}
	return step, nil
}
