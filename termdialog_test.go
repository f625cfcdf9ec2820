package termdialog_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/termdialog"
	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var archive = filepath.Join("internal", "script", "testdata", "archive.yaml")

func TestFacade_Integration(t *testing.T) {
	eng, err := termdialog.New(archive)
	require.NoError(t, err)
	assert.Equal(t, "archive.yaml", eng.Name)
	assert.Equal(t, "The Archive", eng.Title())

	state, err := eng.Start()
	require.NoError(t, err)
	assert.Equal(t, "entrance", state.CurrentNodeID)

	step, err := eng.Render(state)
	require.NoError(t, err)
	require.NotNil(t, step.Line)
	assert.Equal(t, "Dust hangs in the lamplight.", step.Line.Text)

	state, err = eng.Advance(state)
	require.NoError(t, err)
	state, err = eng.Advance(state)
	require.NoError(t, err)
	require.Equal(t, domain.StatusChoosing, state.Status)

	state, err = eng.Choose(state, "ledger")
	require.NoError(t, err)
	assert.Equal(t, "ledger", state.CurrentNodeID)
	assert.Equal(t, []string{"entrance", "ledger"}, state.History)
}

func TestFacade_EntryNode(t *testing.T) {
	eng, err := termdialog.New(archive, termdialog.WithEntryNode("ledger"))
	require.NoError(t, err)

	state, err := eng.Start()
	require.NoError(t, err)
	assert.Equal(t, "ledger", state.CurrentNodeID)
}

func TestFacade_Errors(t *testing.T) {
	_, err := termdialog.New("missing.yaml")
	assert.Error(t, err)

	_, err = termdialog.Parse([]byte("start: nowhere\nnodes:\n  - id: here\n"))
	assert.ErrorContains(t, err, "invalid script")
}

const hall = `
start: hall
nodes:
  - id: hall
    lines:
      - character: Mara
        text: Hello there.
    options:
      - text: Stay
        next: hall
      - text: Leave
`

func TestRunner(t *testing.T) {
	tests := []struct {
		name     string
		headless bool
		input    string
		want     []string
		count    map[string]int
	}{
		{
			name:     "headless leaves on the second option",
			headless: true,
			input:    "2\n",
			want:     []string{"Mara: Hello there.", "1) Stay", "2) Leave"},
			count:    map[string]int{"Mara: Hello there.": 1},
		},
		{
			name:  "waits for enter after each line",
			input: "\n1\n\n2\n",
			count: map[string]int{"Mara: Hello there.": 2, "1) Stay": 2},
		},
		{
			name:     "rejects numbers out of range",
			headless: true,
			input:    "9\nabc\n2\n",
			count:    map[string]int{"Pick a number from 1 to 2.": 2},
		},
		{
			name:     "input ending while choosing stops quietly",
			headless: true,
			input:    "",
			want:     []string{"2) Leave"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := termdialog.Parse([]byte(hall))
			require.NoError(t, err)

			var out bytes.Buffer
			r := &termdialog.Runner{
				Input:    strings.NewReader(tt.input),
				Output:   &out,
				Headless: tt.headless,
			}
			require.NoError(t, r.Run(eng))

			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
			for s, n := range tt.count {
				assert.Equal(t, n, strings.Count(out.String(), s), "occurrences of %q", s)
			}
		})
	}
}

func TestRunner_RequiresIO(t *testing.T) {
	eng, err := termdialog.Parse([]byte(hall))
	require.NoError(t, err)

	err = (&termdialog.Runner{Output: &bytes.Buffer{}}).Run(eng)
	assert.ErrorContains(t, err, "input reader")
	err = (&termdialog.Runner{Input: strings.NewReader("")}).Run(eng)
	assert.ErrorContains(t, err, "output writer")
}

func TestRunner_CustomRenderer(t *testing.T) {
	eng, err := termdialog.Parse([]byte(hall))
	require.NoError(t, err)

	var out bytes.Buffer
	r := &termdialog.Runner{
		Input:    strings.NewReader("2\n"),
		Output:   &out,
		Headless: true,
		Renderer: func(row []domain.Grapheme) string {
			return "[" + domain.Text(row) + "]"
		},
	}
	require.NoError(t, r.Run(eng))
	assert.Contains(t, out.String(), "[Mara: Hello there.]")
	assert.Contains(t, out.String(), "2) [Leave]")
}
