package cli

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/termdialog/internal/presentation/tui"
	"github.com/aretw0/termdialog/internal/runtime"
	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/widget"
	"github.com/aretw0/termdialog/pkg/wrap"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameInterval is the delay between reveal ticks.
const frameInterval = time.Second / 60

// tickMsg carries the time of a frame.
type tickMsg time.Time

// shownLine identifies the line on screen. A node entered again is a new
// visit, so its lines reveal again even though they are the same lines.
type shownLine struct {
	line  *domain.Line
	visit int
}

// Model is the play screen. It owns the dialogue state and the widgets and
// advances the reveal once per frame.
type Model struct {
	engine   *runtime.Engine
	state    *domain.State
	shown    shownLine
	renderer *tui.Renderer
	logger   *slog.Logger

	dialog  *widget.DialogBox
	options *widget.OptionsBox
	tooltip *widget.Tooltip

	keys KeyMap
	help help.Model

	width, height int
	lastTick      time.Time
	err           error
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithInterval sets the time to reveal one grapheme. Zero or less is instant.
func WithInterval(d time.Duration) ModelOption {
	return func(m *Model) {
		m.dialog.Reveal().SetInterval(d)
	}
}

// WithBoxPolicy sets the options box width policy.
func WithBoxPolicy(p wrap.Policy) ModelOption {
	return func(m *Model) {
		m.options = widget.NewOptionsBox(widget.WithPolicy(p))
	}
}

// WithRenderer replaces the terminal renderer.
func WithRenderer(r *tui.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithModelLogger sets the logger used for screen events.
func WithModelLogger(logger *slog.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel starts the dialogue and shows its first line.
func NewModel(engine *runtime.Engine, opts ...ModelOption) (*Model, error) {
	m := &Model{
		engine:   engine,
		renderer: tui.NewRenderer(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dialog:   widget.NewDialogBox(DefaultInterval),
		options:  widget.NewOptionsBox(),
		tooltip:  widget.NewTooltip("E"),
		keys:     DefaultKeyMap,
		help:     help.New(),
		width:    fallbackWidth,
		height:   24,
	}
	for _, opt := range opts {
		opt(m)
	}

	state, err := engine.Start()
	if err != nil {
		return nil, err
	}
	if err := m.show(state); err != nil {
		return nil, err
	}
	return m, nil
}

// State returns the current dialogue state.
func (m *Model) State() *domain.State { return m.state }

// Err returns the error that stopped the screen, if any.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.dialog.Update(now.Sub(m.lastTick))
		}
		m.lastTick = now
		m.syncTooltip()
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.options.Previous()
		case key.Matches(msg, m.keys.Down):
			m.options.Next()
		case key.Matches(msg, m.keys.Continue):
			return m, m.continueDialogue()
		}
	}
	return m, nil
}

// continueDialogue performs the action behind the Continue key.
func (m *Model) continueDialogue() tea.Cmd {
	var (
		next *domain.State
		err  error
	)
	switch {
	case m.state.Status == domain.StatusChoosing:
		opt, ok := m.options.Selected()
		if !ok {
			return nil
		}
		next, err = m.engine.Choose(m.state, opt.ID)
	case !m.dialog.Complete():
		m.dialog.Skip()
		m.syncTooltip()
		return nil
	default:
		next, err = m.engine.Advance(m.state)
	}

	if errors.Is(err, domain.ErrDialogueEnded) {
		return tea.Quit
	}
	if err != nil {
		m.logger.Error("dialogue step failed", "node_id", m.state.CurrentNodeID, "error", err)
		m.err = err
		return tea.Quit
	}
	if next.Terminated() {
		m.state = next
		return tea.Quit
	}
	if err := m.show(next); err != nil {
		m.err = err
		return tea.Quit
	}
	return nil
}

// show makes state current and refreshes the widgets from it.
// The dialog only restarts its reveal when the displayed line changes.
func (m *Model) show(state *domain.State) error {
	step, err := m.engine.Render(state)
	if err != nil {
		return err
	}
	m.state = state

	if shown := (shownLine{line: step.Line, visit: len(state.History)}); shown != m.shown {
		m.shown = shown
		if step.Line == nil {
			m.dialog.Clear()
		} else {
			m.dialog.SetLine(*step.Line)
		}
	}

	if len(step.Options) > 0 {
		m.options.SetOptions(step.Options)
	} else {
		m.options.Clear()
	}
	m.syncTooltip()
	return nil
}

// syncTooltip shows the continue hint while a fully revealed line waits.
func (m *Model) syncTooltip() {
	m.tooltip.Enabled = m.dialog.Enabled && m.dialog.Complete() && !m.options.Enabled
}

// View implements tea.Model.
func (m *Model) View() string {
	var dialog string
	if m.dialog.Enabled {
		dialog = m.renderer.DialogBox(m.dialog, m.width)
		dialog = tui.Place(m.width, lipgloss.Height(dialog), lipgloss.Center, lipgloss.Top, dialog)
	}
	helpView := m.help.View(m.keys)

	var overlay string
	switch {
	case m.options.Enabled:
		overlay = m.renderer.OptionsBox(m.options, m.width)
	case m.tooltip.Enabled:
		overlay = m.renderer.Tooltip(m.tooltip)
	}
	free := max(m.height-lipgloss.Height(dialog)-lipgloss.Height(helpView), 0)
	top := tui.Place(m.width, free, lipgloss.Center, lipgloss.Center, overlay)

	return lipgloss.JoinVertical(lipgloss.Left, top, dialog, helpView)
}
