package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/termdialog/internal/presentation/tui"
	"github.com/aretw0/termdialog/pkg/widget"
)

// Render prints every line of a node fully revealed, followed by its
// options box, at the terminal width.
func Render(w io.Writer, opts RenderOptions, ropts ...tui.RendererOption) error {
	if err := validatePolicy(opts.Policy); err != nil {
		return err
	}
	logger, closeLog, err := createLogger(opts.Debug, "")
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := createEngine(opts.ScriptPath, opts.Node, logger)
	if err != nil {
		return err
	}
	state, err := engine.Start()
	if err != nil {
		return err
	}
	node, err := engine.Script().Node(state.CurrentNodeID)
	if err != nil {
		return err
	}

	width := terminalWidth(opts.Width)
	renderer := tui.NewRenderer(ropts...)
	logger.Debug("rendering node", "node_id", node.ID, "width", width)

	dialog := widget.NewDialogBox(0)
	for _, line := range node.Lines {
		dialog.SetLine(line)
		if _, err := fmt.Fprintln(w, renderer.DialogBox(dialog, width)); err != nil {
			return err
		}
	}

	if len(node.Options) == 0 {
		return nil
	}
	options := widget.NewOptionsBox(widget.WithPolicy(opts.Policy))
	options.SetOptions(node.Options)
	_, err = fmt.Fprintln(w, renderer.OptionsBox(options, width))
	return err
}
