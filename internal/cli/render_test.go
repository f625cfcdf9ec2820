package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/termdialog/internal/presentation/tui"
	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/wrap"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var archive = filepath.Join("..", "script", "testdata", "archive.yaml")

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		opts     RenderOptions
		contains []string
		absent   []string
	}{
		{
			name:     "start node",
			opts:     RenderOptions{ScriptPath: archive, Width: 60, Policy: wrap.DefaultPolicy},
			contains: []string{"Dust hangs in the lamplight.", "┌Archivist", "urgent", "-> Ask about the", "   Leave"},
		},
		{
			name:     "explicit node",
			opts:     RenderOptions{ScriptPath: archive, Node: "ledger", Width: 60, Policy: wrap.DefaultPolicy},
			contains: []string{"The ledger?", "-> Go back"},
			absent:   []string{"Dust hangs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.opts, tui.WithProfile(termenv.Ascii)))
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, RenderOptions{ScriptPath: archive, Policy: wrap.Policy{Wide: 0, Narrow: 10}})
	assert.ErrorContains(t, err, "box widths must be positive")

	err = Render(&buf, RenderOptions{ScriptPath: archive, Node: "cellar", Policy: wrap.DefaultPolicy})
	assert.ErrorContains(t, err, "cellar")

	err = Render(&buf, RenderOptions{ScriptPath: "missing.yaml", Policy: wrap.DefaultPolicy})
	assert.ErrorContains(t, err, "error loading script")
	assert.Empty(t, buf.String())
}

func TestSummary(t *testing.T) {
	s, err := script.Load(archive)
	require.NoError(t, err)

	md := Summary(s)
	for _, want := range []string{
		"# The Archive",
		"Starts at `entrance`. 2 nodes, 2 reachable.",
		"## entrance",
		"- Dust hangs in the lamplight.",
		"- **Archivist:** This is urgent now.",
		"1. Ask about the missing ledger → `ledger`",
		"2. Leave → end",
		"1. Go back → `entrance`",
	} {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "Unreachable")
}

func TestSummary_Unreachable(t *testing.T) {
	s, err := script.Parse([]byte(`
start: a
nodes:
  - id: a
    lines:
      - text: Alone.
  - id: b
    lines:
      - text: Forgotten.
`))
	require.NoError(t, err)

	md := Summary(s)
	assert.Contains(t, md, "2 nodes, 1 reachable.")
	assert.True(t, strings.HasSuffix(md, "> Unreachable: `b`\n"))
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inspect(&buf, InspectOptions{ScriptPath: archive, Width: 80}))
	assert.Contains(t, buf.String(), "Archive")
}

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	err := RunHeadless(strings.NewReader("2\n"), &out,
		PlayOptions{ScriptPath: archive, Width: 40},
		tui.WithProfile(termenv.Ascii),
	)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Dust hangs in the lamplight.")
	assert.Contains(t, out.String(), "Archivist: This is urgent now.")
	assert.Contains(t, out.String(), "1) Ask about the missing ledger")
	assert.Contains(t, out.String(), "2) Leave")
	assert.NotContains(t, out.String(), "The ledger?")
}

func TestInspect_Graph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inspect(&buf, InspectOptions{ScriptPath: archive, Graph: true}))
	assert.True(t, strings.HasPrefix(buf.String(), "graph TD\n"))
	assert.Contains(t, buf.String(), "ledger -- \"Go back\" --> entrance")
}
