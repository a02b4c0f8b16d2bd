package ecs

// Registry tracks all component stores and supports bulk cleanup on entity destroy.
type Registry struct {
	stores []Removable
	sealed bool
}

func NewRegistry() *Registry {
	return &Registry{
		stores: make([]Removable, 0, 8),
	}
}

// Register adds a component store to the registry. Stores can only be added
// before the registry is sealed.
func (r *Registry) Register(store Removable) {
	if r.sealed {
		panic("ecs: component store registered after world was sealed")
	}
	r.stores = append(r.stores, store)
}

// Seal freezes the component set.
func (r *Registry) Seal() { r.sealed = true }

// Kinds is the number of registered component stores.
func (r *Registry) Kinds() int { return len(r.stores) }

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
