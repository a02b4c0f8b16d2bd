package system

import (
	"testing"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarksPositions(t *testing.T) {
	w := world.New(4, world.Grid{Width: 3, Height: 2})
	_, err := w.Spawn(world.Blueprint{Position: &component.Position{X: 1, Y: 0}})
	require.NoError(t, err)
	_, err = w.Spawn(world.Blueprint{Position: &component.Position{X: 2, Y: 1}})
	require.NoError(t, err)
	_, err = w.Spawn(world.Blueprint{Position: &component.Position{X: 7, Y: -3}})
	require.NoError(t, err)

	var buf output.Buffer
	require.NoError(t, NewRenderSystem(&buf, w.Grid, DefaultMarkers).Run(w))
	assert.Equal(t, []string{".#.", "..#", DefaultMarkers.Separator}, buf.Lines())
}

func TestRenderIsIdempotent(t *testing.T) {
	w := world.New(4, grid10)
	spawnMover(t, w, 4, 6, 1, 1)

	var buf output.Buffer
	r := NewRenderSystem(&buf, w.Grid, DefaultMarkers)
	require.NoError(t, r.Run(w))
	first := buf.String()
	buf.Reset()
	require.NoError(t, r.Run(w))
	assert.Equal(t, first, buf.String())
	assert.Len(t, buf.Lines(), 11)
}

func TestRenderEmptyWorld(t *testing.T) {
	w := world.New(4, world.Grid{Width: 2, Height: 2})
	var buf output.Buffer
	require.NoError(t, NewRenderSystem(&buf, w.Grid, Markers{Background: ' ', Foreground: '@', Separator: "=="}).Run(w))
	assert.Equal(t, []string{"  ", "  ", "=="}, buf.Lines())
}
