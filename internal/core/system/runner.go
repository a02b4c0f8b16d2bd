package system

import (
	"fmt"
	"sort"
)

// Runner executes systems in phase order each tick. Systems sharing a phase
// keep their registration order.
type Runner[W any] struct {
	systems []System[W]
	sorted  bool
	ticks   uint64
}

func NewRunner[W any]() *Runner[W] {
	return &Runner[W]{
		systems: make([]System[W], 0, 8),
	}
}

// Add appends s to the schedule.
func (r *Runner[W]) Add(s System[W]) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// AddFunc appends a plain function as a system.
func (r *Runner[W]) AddFunc(name string, phase Phase, fn func(W) error) {
	r.Add(NewFunc(name, phase, fn))
}

// Run invokes every system once, synchronously, in schedule order. The first
// system error aborts the tick.
func (r *Runner[W]) Run(w W) error {
	r.ensureSorted()
	r.ticks++
	for _, s := range r.systems {
		if err := s.Run(w); err != nil {
			return fmt.Errorf("tick %d: system %s (%s): %w", r.ticks, s.Name(), s.Phase(), err)
		}
	}
	return nil
}

// Ticks is the number of Run calls so far.
func (r *Runner[W]) Ticks() uint64 { return r.ticks }

// Names lists systems in execution order.
func (r *Runner[W]) Names() []string {
	r.ensureSorted()
	names := make([]string, len(r.systems))
	for i, s := range r.systems {
		names[i] = s.Name()
	}
	return names
}

func (r *Runner[W]) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
