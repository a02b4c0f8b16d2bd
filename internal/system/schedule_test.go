package system

import (
	"strconv"
	"testing"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/core/ecs"
	"github.com/gridsim/gridsim/internal/core/event"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduleOrder(t *testing.T) {
	w := world.New(4, grid10)
	r := NewSchedule(w, &output.Buffer{}, event.NewBus(), Options{Markers: DefaultMarkers, Digest: true})
	assert.Equal(t, []string{"events", "movement", "counter", "render", "digest", "cleanup"}, r.Names())
}

func TestEndToEndDiagonalBounce(t *testing.T) {
	w := world.New(8, grid10)
	n, err := w.SpawnAll(world.DefaultPopulation())
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var buf output.Buffer
	bus := event.NewBus()
	LogEvents(bus, zap.NewNop())
	r := NewSchedule(w, &buf, bus, Options{Markers: DefaultMarkers})

	moverID := firstMover(t, w)
	want := map[int]component.Position{
		1:  {X: 1, Y: 1},
		9:  {X: 9, Y: 9},
		10: {X: 9, Y: 9},
		11: {X: 8, Y: 8},
	}
	for tick := 1; tick <= 11; tick++ {
		buf.Reset()
		require.NoError(t, r.Run(w))
		p, v := state(t, w, moverID)
		if wp, ok := want[tick]; ok {
			assert.Equal(t, wp, p, "tick %d", tick)
		}
		switch {
		case tick < 10:
			assert.Equal(t, component.Velocity{VX: 1, VY: 1}, v, "tick %d", tick)
		default:
			assert.Equal(t, component.Velocity{VX: -1, VY: -1}, v, "tick %d", tick)
		}
		lines := buf.Lines()
		require.Len(t, lines, 12, "counter line + 10 rows + separator")
		assert.Equal(t, "counter "+strconv.Itoa(tick), lines[0])
		row := []rune(lines[1+p.Y])
		assert.Equal(t, '#', row[p.X])
	}
}

func firstMover(t *testing.T, w *world.World) ecs.EntityID {
	t.Helper()
	var ids []ecs.EntityID
	ecs.Each2Read(w.Positions, w.Velocities, func(id ecs.EntityID, _ component.Position, _ component.Velocity) {
		ids = append(ids, id)
	})
	require.Len(t, ids, 1)
	return ids[0]
}

func TestCleanupFlushesDeferredDespawns(t *testing.T) {
	w := world.New(4, grid10)
	id := spawnMover(t, w, 1, 1, 0, 0)
	require.NoError(t, w.MarkForDespawn(id))

	bus := event.NewBus()
	var despawned []event.Despawned
	event.Subscribe(bus, func(ev event.Despawned) { despawned = append(despawned, ev) })

	require.NoError(t, NewCleanupSystem(bus).Run(w))
	assert.False(t, w.Alive(id))
	assert.Equal(t, 0, w.Positions.Len())

	require.NoError(t, NewEventSystem(bus).Run(w))
	assert.Equal(t, []event.Despawned{{Count: 1}}, despawned)
}

func TestDigestTracksState(t *testing.T) {
	a := world.New(4, grid10)
	b := world.New(4, grid10)
	spawnMover(t, a, 2, 2, 1, 0)
	spawnMover(t, b, 2, 2, 1, 0)

	da, err := Digest(a, nil)
	require.NoError(t, err)
	db, err := Digest(b, nil)
	require.NoError(t, err)
	assert.Equal(t, da, db)

	require.NoError(t, NewMovementSystem(nil).Run(a))
	da2, err := Digest(a, nil)
	require.NoError(t, err)
	assert.NotEqual(t, da, da2)

	var buf output.Buffer
	require.NoError(t, NewDigestSystem(&buf).Run(a))
	require.Len(t, buf.Lines(), 1)
	assert.Len(t, buf.Lines()[0], len("digest ")+64)
}
