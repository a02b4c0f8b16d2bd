package ecs

// Queries walk slots in ascending index order, bounded by the smallest
// high-water mark among the requested stores. Mutable variants hand out
// pointers into the stores; Read variants hand out copies, so one call never
// aliases a component both ways.

// Each iterates over entities that have component A.
func Each[A any](sa *Store[A], fn func(EntityID, *A)) {
	for i := 0; i < sa.high; i++ {
		if id, a, ok := sa.at(i); ok {
			fn(id, a)
		}
	}
}

// EachRead is Each with read-only access.
func EachRead[A any](sa *Store[A], fn func(EntityID, A)) {
	Each(sa, func(id EntityID, a *A) { fn(id, *a) })
}

// Each2 iterates over entities that have both component A and B.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	n := min(sa.high, sb.high)
	for i := 0; i < n; i++ {
		id, a, ok := sa.at(i)
		if !ok {
			continue
		}
		idb, b, ok := sb.at(i)
		if !ok || idb != id {
			continue
		}
		fn(id, a, b)
	}
}

// Each2Read is Each2 with read-only access.
func Each2Read[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, A, B)) {
	Each2(sa, sb, func(id EntityID, a *A, b *B) { fn(id, *a, *b) })
}

// Each3 iterates over entities that have components A, B, and C.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	n := min(sa.high, sb.high, sc.high)
	for i := 0; i < n; i++ {
		id, a, ok := sa.at(i)
		if !ok {
			continue
		}
		idb, b, ok := sb.at(i)
		if !ok || idb != id {
			continue
		}
		idc, c, ok := sc.at(i)
		if !ok || idc != id {
			continue
		}
		fn(id, a, b, c)
	}
}

// Each3Read is Each3 with read-only access.
func Each3Read[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, A, B, C)) {
	Each3(sa, sb, sc, func(id EntityID, a *A, b *B, c *C) { fn(id, *a, *b, *c) })
}
