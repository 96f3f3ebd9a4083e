package store

import "sync"

// Entity is anything held in a named collection.
type Entity interface {
	EntityID() string
}

// Collection is a slice-backed, mutex-guarded collection of one entity
// type. All reads return copies so callers can never alias the internal
// slice; the engine snapshots and mutates in one critical section with
// ApplyByID or TakeByID and rolls back with Replace.
type Collection[E Entity] struct {
	mu    *sync.RWMutex
	items []E
}

func newCollection[E Entity](mu *sync.RWMutex) *Collection[E] {
	return &Collection[E]{mu: mu}
}

// Items returns a copy of the collection contents. The same copy doubles
// as a rollback snapshot.
func (c *Collection[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entities.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the entity with the given id.
func (c *Collection[E]) Get(id string) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Replace swaps the whole collection for items. Used for bulk refresh and
// for restoring a pre-mutation snapshot.
func (c *Collection[E]) Replace(items []E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]E, len(items))
	copy(c.items, items)
}

// Append adds an entity at the end (the optimistic insert).
func (c *Collection[E]) Append(e E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, e)
}

// ReplaceByID overwrites the entity currently stored under id, keeping its
// position. The replacement may carry a different id; that is how a
// placeholder is substituted with the server-confirmed entity.
func (c *Collection[E]) ReplaceByID(id string, e E) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = e
			return true
		}
	}
	return false
}

// ApplyByID snapshots the collection and rewrites the entity under id
// with apply, all in one critical section. The returned snapshot predates
// the rewrite, so restoring it with Replace undoes the change. apply must
// not touch any collection sharing this mutex.
func (c *Collection[E]) ApplyByID(id string, apply func(E) E) (snapshot []E, updated E, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot = make([]E, len(c.items))
	copy(snapshot, c.items)
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = apply(c.items[i])
			return snapshot, c.items[i], true
		}
	}
	var zero E
	return snapshot, zero, false
}

// TakeByID snapshots the collection and removes the entity under id in
// one critical section. ok is false when id is absent, in which case the
// collection is untouched.
func (c *Collection[E]) TakeByID(id string) ([]E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			snapshot := make([]E, len(c.items))
			copy(snapshot, c.items)
			c.items = append(c.items[:i], c.items[i+1:]...)
			return snapshot, true
		}
	}
	return nil, false
}

// RemoveByID removes the entity with the given id.
func (c *Collection[E]) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveWhere removes every entity matching pred and returns how many were
// removed. Used for optimistic cascade deletes.
func (c *Collection[E]) RemoveWhere(pred func(E) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	removed := 0
	for _, e := range c.items {
		if pred(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	c.items = kept
	return removed
}

// UpdateWhere rewrites every entity matching pred in place and returns how
// many were touched. This is the single code path behind rename
// propagation.
func (c *Collection[E]) UpdateWhere(pred func(E) bool, apply func(E) E) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := 0
	for i := range c.items {
		if pred(c.items[i]) {
			c.items[i] = apply(c.items[i])
			updated++
		}
	}
	return updated
}
