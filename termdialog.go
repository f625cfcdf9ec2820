package termdialog

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/termdialog/internal/runtime"
	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
)

// Step is what a host should display for a state.
type Step = runtime.Step

// Engine is the high-level entry point for the termdialog library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	script      *script.Script
	runtimeOpts []runtime.EngineOption
	logger      *slog.Logger
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEntryNode starts the dialogue at nodeID instead of the script's start node.
func WithEntryNode(nodeID string) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithEntryNode(nodeID))
	}
}

// New loads the dialogue script at path.
func New(path string, opts ...Option) (*Engine, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	eng := newEngine(s, opts)
	eng.Name = filepath.Base(path)
	eng.init()
	return eng, nil
}

// Parse builds an engine from script source held in memory.
func Parse(data []byte, opts ...Option) (*Engine, error) {
	s, err := script.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	eng := newEngine(s, opts)
	eng.init()
	return eng, nil
}

func newEngine(s *script.Script, opts []Option) *Engine {
	eng := &Engine{script: s, Name: s.Title}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

func (e *Engine) init() {
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.Name != "" {
		e.logger = e.logger.With("script", e.Name)
	}
	opts := append([]runtime.EngineOption{runtime.WithLogger(e.logger)}, e.runtimeOpts...)
	e.runtime = runtime.NewEngine(e.script, opts...)
}

// Title returns the script title.
func (e *Engine) Title() string { return e.script.Title }

// Start creates the initial state at the entry node.
func (e *Engine) Start() (*domain.State, error) {
	return e.runtime.Start()
}

// Render describes what to show for state without transitioning.
func (e *Engine) Render(state *domain.State) (Step, error) {
	return e.runtime.Render(state)
}

// Advance moves past the current line.
func (e *Engine) Advance(state *domain.State) (*domain.State, error) {
	return e.runtime.Advance(state)
}

// Choose takes the option with the given id.
func (e *Engine) Choose(state *domain.State, optionID string) (*domain.State, error) {
	return e.runtime.Choose(state, optionID)
}
