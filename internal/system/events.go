package system

import (
	"github.com/gridsim/gridsim/internal/core/event"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/world"
	"go.uber.org/zap"
)

// EventSystem swaps the event bus and delivers last tick's events.
// Phase 1 (PreUpdate).
type EventSystem struct {
	bus *event.Bus
}

func NewEventSystem(bus *event.Bus) *EventSystem {
	return &EventSystem{bus: bus}
}

func (s *EventSystem) Name() string         { return "events" }
func (s *EventSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventSystem) Run(_ *world.World) error {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
	return nil
}

// LogEvents subscribes debug logging for every simulation event type.
func LogEvents(bus *event.Bus, log *zap.Logger) {
	event.Subscribe(bus, func(ev event.Reflected) {
		log.Debug("entity reflected",
			zap.Uint32("entity", uint32(ev.Entity)),
			zap.Stringer("axis", ev.Axis),
			zap.Int32("at", ev.At))
	})
	event.Subscribe(bus, func(ev event.CounterWrapped) {
		log.Warn("counter wrapped", zap.Uint32("entity", uint32(ev.Entity)))
	})
	event.Subscribe(bus, func(ev event.Despawned) {
		log.Debug("entities despawned", zap.Int("count", ev.Count))
	})
}
