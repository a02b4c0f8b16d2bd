package system

import (
	"github.com/gridsim/gridsim/internal/core/event"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/output"
	"github.com/gridsim/gridsim/internal/world"
)

// Options selects the optional parts of the default schedule. Zero Markers
// means DefaultMarkers.
type Options struct {
	Markers Markers
	Digest  bool
}

// NewSchedule registers the standard pipeline: events, movement, counter,
// render, optional digest, cleanup. Movement precedes render so each frame
// shows this tick's positions.
func NewSchedule(w *world.World, out output.Sink, bus *event.Bus, opts Options) *coresys.Runner[*world.World] {
	if opts.Markers == (Markers{}) {
		opts.Markers = DefaultMarkers
	}
	r := coresys.NewRunner[*world.World]()
	r.Add(NewEventSystem(bus))
	r.Add(NewMovementSystem(bus))
	r.Add(NewCounterSystem(out, bus))
	r.Add(NewRenderSystem(out, w.Grid, opts.Markers))
	if opts.Digest {
		r.Add(NewDigestSystem(out))
	}
	r.Add(NewCleanupSystem(bus))
	return r
}
