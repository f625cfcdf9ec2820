package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
)

// Engine walks a dialogue script: it reports what to show for a state and
// computes the next state from a player's action. States are never mutated;
// every transition returns a fresh copy.
type Engine struct {
	script    *script.Script
	entryNode string
	logger    *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEntryNode overrides the script's start node.
func WithEntryNode(nodeID string) EngineOption {
	return func(e *Engine) {
		if nodeID != "" {
			e.entryNode = nodeID
		}
	}
}

// NewEngine creates an engine over a loaded script.
func NewEngine(s *script.Script, opts ...EngineOption) *Engine {
	e := &Engine{
		script:    s,
		entryNode: s.Start,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Script returns the script the engine walks.
func (e *Engine) Script() *script.Script { return e.script }

// Start creates the initial state at the entry node.
func (e *Engine) Start() (*domain.State, error) {
	state := domain.NewState(e.entryNode)
	node, err := e.script.Node(e.entryNode)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("dialogue started", "node_id", node.ID)
	settle(state, node)
	return state, nil
}

// settle moves a state whose line index ran past the node's lines into the
// choosing or terminated status.
func settle(state *domain.State, node *script.Node) {
	if state.LineIndex < len(node.Lines) {
		state.Status = domain.StatusSpeaking
		return
	}
	state.LineIndex = len(node.Lines)
	if len(node.Options) > 0 {
		state.Status = domain.StatusChoosing
		return
	}
	state.Status = domain.StatusTerminated
}

func (e *Engine) cloneState(src *domain.State) *domain.State {
	next := *src
	next.History = append([]string(nil), src.History...)
	return &next
}
