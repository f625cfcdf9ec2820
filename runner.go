package termdialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/aretw0/termdialog/pkg/markup"
	"github.com/aretw0/termdialog/pkg/wrap"
)

// Runner plays a dialogue line by line over plain IO.
// This allows for easy testing and integration with hosts that cannot run
// the full screen player (pipes, logs, screen readers).
type Runner struct {
	Input  io.Reader
	Output io.Writer
	// Headless prints every line without waiting for acknowledgment.
	// Choices are still read from Input.
	Headless bool
	// Width wraps printed lines; zero or less prints them unwrapped.
	Width int
	// Renderer turns a wrapped row into output text. Plain text by default.
	Renderer RowRenderer
}

// RowRenderer transforms a row of styled graphemes before it is written.
// This allows ANSI styling without coupling the core package to a terminal.
type RowRenderer func([]domain.Grapheme) string

// Run executes the dialogue loop until the dialogue ends or input runs out.
func (r *Runner) Run(engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	reader := bufio.NewReader(r.Input)

	state, err := engine.Start()
	if err != nil {
		return err
	}

	for !state.Terminated() {
		step, err := engine.Render(state)
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if len(step.Options) > 0 {
			r.printOptions(step.Options)
			optionID, err := r.readChoice(reader, step.Options)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if state, err = engine.Choose(state, optionID); err != nil {
				return fmt.Errorf("navigation error: %w", err)
			}
			continue
		}

		if step.Line != nil {
			r.printLine(*step.Line)
			if !r.Headless {
				if _, err := reader.ReadString('\n'); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return fmt.Errorf("input error: %w", err)
				}
			}
		}

		if state, err = engine.Advance(state); err != nil {
			return fmt.Errorf("navigation error: %w", err)
		}
	}
	return nil
}

func (r *Runner) printLine(line domain.Line) {
	for _, row := range r.rows(markup.Segment(line)) {
		fmt.Fprintln(r.Output, r.render(row))
	}
}

func (r *Runner) printOptions(options []domain.Option) {
	for i, opt := range options {
		prefix := fmt.Sprintf("%d) ", i+1)
		for j, row := range r.rows(opt.Label) {
			if j > 0 {
				prefix = strings.Repeat(" ", len(prefix))
			}
			fmt.Fprintln(r.Output, prefix+r.render(row))
		}
	}
}

func (r *Runner) rows(segments []domain.Segment) [][]domain.Grapheme {
	if r.Width <= 0 {
		return [][]domain.Grapheme{domain.Expand(segments)}
	}
	return wrap.Wrap(segments, r.Width)
}

func (r *Runner) render(row []domain.Grapheme) string {
	if r.Renderer != nil {
		return r.Renderer(row)
	}
	return domain.Text(row)
}

// readChoice prompts until the player enters the number of an option.
func (r *Runner) readChoice(reader *bufio.Reader, options []domain.Option) (string, error) {
	for {
		fmt.Fprint(r.Output, "> ")
		text, err := reader.ReadString('\n')
		input := strings.TrimSpace(text)
		if input != "" {
			if n, convErr := strconv.Atoi(input); convErr == nil && n >= 1 && n <= len(options) {
				return options[n-1].ID, nil
			}
			fmt.Fprintf(r.Output, "Pick a number from 1 to %d.\n", len(options))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("input error: %w", err)
		}
	}
}
