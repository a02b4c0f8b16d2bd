package ecs

import "errors"

var (
	// ErrCapacityExceeded is returned by Spawn when every slot is in use.
	ErrCapacityExceeded = errors.New("entity capacity exceeded")
	// ErrInvalidEntity is returned for operations on a dead or unknown entity.
	ErrInvalidEntity = errors.New("invalid entity")
)

// MaxCapacity is the largest slot count an EntityID can address.
const MaxCapacity = 1 << 16

// EntityID encodes a 16-bit slot index in the upper bits and a 16-bit generation
// in the lower bits, so ids sort in slot order. Generation increments on
// destroy to invalidate stale refs.
type EntityID uint32

func NewEntityID(index uint16, generation uint16) EntityID {
	return EntityID(uint32(index)<<16 | uint32(generation))
}

func (id EntityID) Index() uint16      { return uint16(id >> 16) }
func (id EntityID) Generation() uint16 { return uint16(id) }

// EntityPool manages entity allocation with generational indices and a free list.
// All backing slices are sized once at construction.
type EntityPool struct {
	generations []uint16
	alive       []bool
	freeList    []uint16
	nextIndex   int
	live        int
}

func NewEntityPool(capacity int) *EntityPool {
	if capacity <= 0 || capacity > MaxCapacity {
		panic("ecs: entity capacity out of range")
	}
	return &EntityPool{
		generations: make([]uint16, capacity),
		alive:       make([]bool, capacity),
		freeList:    make([]uint16, 0, capacity),
	}
}

// Create returns a fresh identifier, reusing released slots first.
func (p *EntityPool) Create() (EntityID, error) {
	var idx uint16
	switch {
	case len(p.freeList) > 0:
		idx = p.freeList[len(p.freeList)-1]
		p.freeList = p.freeList[:len(p.freeList)-1]
	case p.nextIndex < len(p.generations):
		idx = uint16(p.nextIndex)
		p.nextIndex++
	default:
		return 0, ErrCapacityExceeded
	}
	p.alive[idx] = true
	p.live++
	return NewEntityID(idx, p.generations[idx]), nil
}

func (p *EntityPool) Alive(id EntityID) bool {
	idx := int(id.Index())
	if idx >= p.nextIndex {
		return false
	}
	return p.alive[idx] && p.generations[idx] == id.Generation()
}

// Destroy releases the slot of a live entity. Stale or unknown ids are rejected.
func (p *EntityPool) Destroy(id EntityID) error {
	if !p.Alive(id) {
		return ErrInvalidEntity
	}
	idx := id.Index()
	p.alive[idx] = false
	p.generations[idx]++ // wraps after 65536 reuses of one slot
	p.freeList = append(p.freeList, idx)
	p.live--
	return nil
}

// Capacity is the fixed number of slots.
func (p *EntityPool) Capacity() int { return len(p.generations) }

// Len is the number of live entities.
func (p *EntityPool) Len() int { return p.live }

// Each calls fn for every live entity in ascending slot order.
func (p *EntityPool) Each(fn func(EntityID)) {
	for i := 0; i < p.nextIndex; i++ {
		if p.alive[i] {
			fn(NewEntityID(uint16(i), p.generations[i]))
		}
	}
}
