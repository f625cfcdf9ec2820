package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aretw0/termdialog/internal/presentation/graph"
	"github.com/aretw0/termdialog/internal/presentation/tui"
	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
)

// Inspect prints a markdown summary of a script rendered for the terminal,
// or its Mermaid flowchart when opts.Graph is set.
func Inspect(w io.Writer, opts InspectOptions) error {
	s, err := script.Load(opts.ScriptPath)
	if err != nil {
		return fmt.Errorf("error loading script: %w", err)
	}
	if opts.Graph {
		_, err = io.WriteString(w, graph.Mermaid(s, nil))
		return err
	}

	render, err := tui.NewMarkdownRenderer(terminalWidth(opts.Width))
	if err != nil {
		return fmt.Errorf("error creating markdown renderer: %w", err)
	}
	out, err := render(Summary(s))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Summary describes a script as markdown: its nodes in file order with
// their lines and options, and any node unreachable from the start.
func Summary(s *script.Script) string {
	var sb strings.Builder

	title := s.Title
	if title == "" {
		title = "Untitled script"
	}
	reachable := s.Reachable()
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "Starts at `%s`. %d nodes, %d reachable.\n", s.Start, len(s.Nodes), len(reachable))

	for _, n := range s.Nodes {
		fmt.Fprintf(&sb, "\n## %s\n\n", n.ID)
		for _, line := range n.Lines {
			if name, ok := line.CharacterName(); ok {
				fmt.Fprintf(&sb, "- **%s:** %s\n", name, strings.TrimSpace(line.TextWithoutCharacterName()))
			} else {
				fmt.Fprintf(&sb, "- %s\n", line.Text)
			}
		}
		if len(n.Options) > 0 {
			sb.WriteString("\nOptions:\n\n")
		}
		for i, opt := range n.Options {
			next := "end"
			if opt.Next != "" {
				next = "`" + opt.Next + "`"
			}
			fmt.Fprintf(&sb, "%d. %s → %s\n", i+1, domain.Plain(opt.Label), next)
		}
	}

	var unreachable []string
	for _, n := range s.Nodes {
		if !slices.Contains(reachable, n.ID) {
			unreachable = append(unreachable, "`"+n.ID+"`")
		}
	}
	if len(unreachable) > 0 {
		fmt.Fprintf(&sb, "\n> Unreachable: %s\n", strings.Join(unreachable, ", "))
	}
	return sb.String()
}
