package ecs

import "fmt"

// World is the top-level ECS container. It owns the entity pool, the component
// registry, and a deferred destruction queue flushed by CleanupSystem each tick.
type World struct {
	pool         *EntityPool
	registry     *Registry
	destroyQueue []EntityID
}

// NewWorld creates a world holding at most capacity live entities.
func NewWorld(capacity int) *World {
	return &World{
		pool:         NewEntityPool(capacity),
		registry:     NewRegistry(),
		destroyQueue: make([]EntityID, 0, capacity),
	}
}

func (w *World) Pool() *EntityPool   { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

// Seal fixes the component set; call it once every store is created.
func (w *World) Seal() { w.registry.Seal() }

func (w *World) Spawn() (EntityID, error) {
	id, err := w.pool.Create()
	if err != nil {
		return 0, fmt.Errorf("spawn (capacity %d): %w", w.pool.Capacity(), err)
	}
	return id, nil
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Despawn clears every component of id and releases its slot.
func (w *World) Despawn(id EntityID) error {
	if !w.pool.Alive(id) {
		return fmt.Errorf("despawn entity %d: %w", id, ErrInvalidEntity)
	}
	w.registry.RemoveAll(id)
	return w.pool.Destroy(id)
}

// MarkForDespawn queues an entity for end-of-tick cleanup.
func (w *World) MarkForDespawn(id EntityID) error {
	if !w.pool.Alive(id) {
		return fmt.Errorf("mark entity %d: %w", id, ErrInvalidEntity)
	}
	for _, q := range w.destroyQueue {
		if q == id {
			return nil
		}
	}
	w.destroyQueue = append(w.destroyQueue, id)
	return nil
}

// FlushDestroyQueue despawns all queued entities and returns how many were
// removed. Called by CleanupSystem at the end of each tick.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		if w.Despawn(id) == nil {
			n++
		}
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}

// Pending is the number of queued despawns.
func (w *World) Pending() int { return len(w.destroyQueue) }
