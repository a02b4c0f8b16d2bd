package ecs

import "fmt"

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a dense, fixed-capacity component store indexed by entity slot.
// No reflect, no interface{}, no growth after construction.
type Store[T any] struct {
	pool  *EntityPool
	data  []T
	owner []EntityID
	has   []bool
	count int
	high  int
}

// NewStore creates a store sized to the world's capacity and registers it so
// Despawn clears it.
func NewStore[T any](w *World) *Store[T] {
	n := w.pool.Capacity()
	s := &Store[T]{
		pool:  w.pool,
		data:  make([]T, n),
		owner: make([]EntityID, n),
		has:   make([]bool, n),
	}
	w.registry.Register(s)
	return s
}

// Insert associates c with id, overwriting any prior value.
func (s *Store[T]) Insert(id EntityID, c T) error {
	if !s.pool.Alive(id) {
		return fmt.Errorf("insert %T for entity %d: %w", c, id, ErrInvalidEntity)
	}
	idx := int(id.Index())
	if !s.has[idx] {
		s.has[idx] = true
		s.count++
		if idx >= s.high {
			s.high = idx + 1
		}
	}
	s.owner[idx] = id
	s.data[idx] = c
	return nil
}

// Get returns a copy of the component, or false if id does not hold one.
func (s *Store[T]) Get(id EntityID) (T, bool) {
	if !s.Has(id) {
		var zero T
		return zero, false
	}
	return s.data[id.Index()], true
}

// GetMut returns a pointer into the store. It stays valid until the component
// is removed.
func (s *Store[T]) GetMut(id EntityID) (*T, bool) {
	if !s.Has(id) {
		return nil, false
	}
	return &s.data[id.Index()], true
}

// Remove clears the component. Absent components are ignored.
func (s *Store[T]) Remove(id EntityID) {
	if !s.Has(id) {
		return
	}
	idx := int(id.Index())
	var zero T
	s.data[idx] = zero
	s.has[idx] = false
	s.count--
}

func (s *Store[T]) Has(id EntityID) bool {
	idx := int(id.Index())
	if idx >= len(s.has) {
		return false
	}
	return s.has[idx] && s.owner[idx] == id
}

func (s *Store[T]) Len() int {
	return s.count
}

// at reports the entity and value pointer held at slot idx.
func (s *Store[T]) at(idx int) (EntityID, *T, bool) {
	if idx >= s.high || !s.has[idx] {
		return 0, nil, false
	}
	return s.owner[idx], &s.data[idx], true
}
