package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/termdialog"
	"github.com/aretw0/termdialog/internal/presentation/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// RunPlay plays a script interactively in the alternate screen.
func RunPlay(opts PlayOptions) error {
	if err := validatePolicy(opts.Policy); err != nil {
		return err
	}

	// Without a log file, logs would draw over the screen.
	logger, closeLog, err := createLogger(opts.Debug && opts.LogFile != "", opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := createEngine(opts.ScriptPath, opts.Node, logger)
	if err != nil {
		return err
	}

	model, err := NewModel(engine,
		WithInterval(opts.Interval),
		WithBoxPolicy(opts.Policy),
		WithModelLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("error starting dialogue: %w", err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running play screen: %w", err)
	}
	if err := model.Err(); err != nil {
		return err
	}
	logger.Info("dialogue finished", "node_id", model.State().CurrentNodeID, "visited", len(model.State().History))
	return nil
}

// RunHeadless plays a script line by line over in and out, for pipes and
// terminals that cannot host the full screen player.
func RunHeadless(in io.Reader, out io.Writer, opts PlayOptions, ropts ...tui.RendererOption) error {
	logger, closeLog, err := createLogger(opts.Debug, opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := termdialog.New(opts.ScriptPath,
		termdialog.WithLogger(logger),
		termdialog.WithEntryNode(opts.Node),
	)
	if err != nil {
		return fmt.Errorf("error loading script: %w", err)
	}

	renderer := tui.NewRenderer(ropts...)
	runner := &termdialog.Runner{
		Input:    in,
		Output:   out,
		Headless: !isTerminal(in),
		Width:    terminalWidth(opts.Width),
		Renderer: renderer.Graphemes,
	}
	return runner.Run(eng)
}
