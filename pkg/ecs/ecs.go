// Package ecs is a small entity-component store used to host span tweens.
//
// Entities are dense ids handed out by an [Allocator]. Components live in
// typed [Store] values keyed by entity, and [Hierarchy] records the
// one-level parent/child relation that tween players use to find the
// spans they own.
package ecs

import (
	"slices"
	"strconv"
)

// Entity identifies an entity. The zero value is never allocated.
type Entity uint64

// Invalid is the zero entity.
const Invalid Entity = 0

// IsValid reports whether e was allocated.
func (e Entity) IsValid() bool {
	return e != Invalid
}

func (e Entity) String() string {
	return "entity#" + strconv.FormatUint(uint64(e), 10)
}

// Allocator hands out increasing entity ids.
type Allocator struct {
	next Entity
}

// Next returns a fresh entity.
func (a *Allocator) Next() Entity {
	a.next++
	return a.next
}

// Store holds one component of type T per entity.
type Store[T any] struct {
	items map[Entity]T
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[Entity]T)}
}

// Set attaches v to e, replacing any previous value.
func (s *Store[T]) Set(e Entity, v T) {
	s.items[e] = v
}

// Get returns the component attached to e.
func (s *Store[T]) Get(e Entity) (T, bool) {
	v, ok := s.items[e]
	return v, ok
}

// Has reports whether e carries the component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.items[e]
	return ok
}

// Remove detaches the component from e.
func (s *Store[T]) Remove(e Entity) {
	delete(s.items, e)
}

// Len returns the number of entities carrying the component.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Entities returns the entities carrying the component in ascending order,
// which is also spawn order.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}
