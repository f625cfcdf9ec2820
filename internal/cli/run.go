package cli

import (
	"fmt"
	"time"

	"github.com/aretw0/termdialog/pkg/wrap"
)

// DefaultInterval is the time to reveal one grapheme.
const DefaultInterval = 30 * time.Millisecond

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	ScriptPath string
	Node       string
	Interval   time.Duration
	Policy     wrap.Policy
	Debug      bool
	LogFile    string
	// Headless plays over plain stdin/stdout instead of the full screen.
	Headless bool
	// Width wraps headless output; zero uses the terminal width.
	Width int
}

// RenderOptions contains all the configuration for the render command.
type RenderOptions struct {
	ScriptPath string
	Node       string
	// Width overrides the detected terminal width when positive.
	Width  int
	Policy wrap.Policy
	Debug  bool
}

// InspectOptions contains all the configuration for the inspect command.
type InspectOptions struct {
	ScriptPath string
	Width      int
	// Graph prints a Mermaid flowchart instead of the summary.
	Graph bool
}

// validatePolicy rejects box policies that cannot produce a positive width.
func validatePolicy(p wrap.Policy) error {
	if p.Wide < 1 || p.Narrow < 1 {
		return fmt.Errorf("box widths must be positive (wide %d, narrow %d)", p.Wide, p.Narrow)
	}
	if p.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative (got %d)", p.Threshold)
	}
	return nil
}
