package runtime

import (
	"fmt"

	"github.com/aretw0/termdialog/pkg/domain"
)

// Advance moves past the current line. After the node's last line the state
// offers the node's options, or ends the dialogue if there are none.
func (e *Engine) Advance(state *domain.State) (*domain.State, error) {
	switch state.Status {
	case domain.StatusTerminated:
		return nil, domain.ErrDialogueEnded
	case domain.StatusChoosing:
		return nil, domain.ErrAwaitingChoice
	}

	node, err := e.script.Node(state.CurrentNodeID)
	if err != nil {
		return nil, err
	}

	next := e.cloneState(state)
	next.LineIndex++
	settle(next, node)
	if next.Status == domain.StatusTerminated {
		e.logger.Debug("dialogue ended", "node_id", node.ID)
	}
	return next, nil
}

// Choose takes the option with the given id and enters the node it leads to.
func (e *Engine) Choose(state *domain.State, optionID string) (*domain.State, error) {
	if state.Status != domain.StatusChoosing {
		return nil, fmt.Errorf("%w (status %s)", domain.ErrNotAwaitingChoice, state.Status)
	}

	node, err := e.script.Node(state.CurrentNodeID)
	if err != nil {
		return nil, err
	}
	opt, err := node.Option(optionID)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("option chosen", "node_id", node.ID, "option_id", opt.ID, "next", opt.Next)

	next := e.cloneState(state)
	if opt.Next == "" {
		next.Status = domain.StatusTerminated
		return next, nil
	}
	return e.transitionTo(next, opt.Next)
}

func (e *Engine) transitionTo(state *domain.State, nodeID string) (*domain.State, error) {
	node, err := e.script.Node(nodeID)
	if err != nil {
		return nil, fmt.Errorf("transition failed: %w", err)
	}
	state.CurrentNodeID = node.ID
	state.LineIndex = 0
	state.History = append(state.History, node.ID)
	settle(state, node)
	e.logger.Debug("entering node", "node_id", node.ID)
	return state, nil
}
