package system

import (
	"github.com/gridsim/gridsim/internal/core/event"
	coresys "github.com/gridsim/gridsim/internal/core/system"
	"github.com/gridsim/gridsim/internal/world"
)

// CleanupSystem flushes the deferred entity destruction queue at tick end.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	bus *event.Bus
}

func NewCleanupSystem(bus *event.Bus) *CleanupSystem {
	return &CleanupSystem{bus: bus}
}

func (s *CleanupSystem) Name() string         { return "cleanup" }
func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Run(w *world.World) error {
	if n := w.FlushDestroyQueue(); n > 0 && s.bus != nil {
		event.Emit(s.bus, event.Despawned{Count: n})
	}
	return nil
}
