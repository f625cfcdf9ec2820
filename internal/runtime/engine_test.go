package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archive = `
start: hall
nodes:
  - id: hall
    lines:
      - text: A long hall.
      - character: Guard
        text: Halt.
    options:
      - id: talk
        text: Talk
        next: office
      - id: run
        text: Run
  - id: office
    lines:
      - text: The office is empty.
  - id: silent
    options:
      - id: back
        text: Back
        next: hall
`

func newEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	s, err := script.Parse([]byte(archive))
	require.NoError(t, err)
	return NewEngine(s, opts...)
}

func TestEngine_WalkThrough(t *testing.T) {
	engine := newEngine(t)

	state, err := engine.Start()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSpeaking, state.Status)

	step, err := engine.Render(state)
	require.NoError(t, err)
	require.NotNil(t, step.Line)
	assert.Equal(t, "A long hall.", step.Line.Text)
	assert.Empty(t, step.Options)

	state, err = engine.Advance(state)
	require.NoError(t, err)
	step, _ = engine.Render(state)
	assert.Equal(t, "Guard: Halt.", step.Line.Text)

	state, err = engine.Advance(state)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusChoosing, state.Status)
	step, _ = engine.Render(state)
	assert.Equal(t, "Guard: Halt.", step.Line.Text, "last line stays under the options")
	require.Len(t, step.Options, 2)

	_, err = engine.Advance(state)
	assert.True(t, errors.Is(err, domain.ErrAwaitingChoice))

	state, err = engine.Choose(state, "talk")
	require.NoError(t, err)
	assert.Equal(t, "office", state.CurrentNodeID)
	assert.Equal(t, []string{"hall", "office"}, state.History)

	state, err = engine.Advance(state)
	require.NoError(t, err)
	assert.True(t, state.Terminated())
	step, _ = engine.Render(state)
	assert.True(t, step.Terminal)

	_, err = engine.Advance(state)
	assert.True(t, errors.Is(err, domain.ErrDialogueEnded))
}

func TestEngine_StatesAreNotMutated(t *testing.T) {
	engine := newEngine(t)
	start, err := engine.Start()
	require.NoError(t, err)

	next, err := engine.Advance(start)
	require.NoError(t, err)
	assert.Equal(t, 0, start.LineIndex)
	assert.Equal(t, 1, next.LineIndex)
}

func TestEngine_ChooseEndingOption(t *testing.T) {
	engine := newEngine(t)
	state, _ := engine.Start()
	state, _ = engine.Advance(state)
	state, _ = engine.Advance(state)

	state, err := engine.Choose(state, "run")
	require.NoError(t, err)
	assert.True(t, state.Terminated())
}

func TestEngine_ChooseErrors(t *testing.T) {
	engine := newEngine(t)
	state, _ := engine.Start()

	_, err := engine.Choose(state, "talk")
	assert.True(t, errors.Is(err, domain.ErrNotAwaitingChoice))

	state, _ = engine.Advance(state)
	state, _ = engine.Advance(state)
	_, err = engine.Choose(state, "fly")
	assert.True(t, errors.Is(err, domain.ErrOptionNotFound))
}

func TestEngine_EntryNodeWithoutLines(t *testing.T) {
	engine := newEngine(t, WithEntryNode("silent"))
	state, err := engine.Start()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusChoosing, state.Status)

	step, err := engine.Render(state)
	require.NoError(t, err)
	assert.Nil(t, step.Line)
	require.Len(t, step.Options, 1)
}

func TestEngine_UnknownEntryNode(t *testing.T) {
	engine := newEngine(t, WithEntryNode("attic"))
	_, err := engine.Start()
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
}
