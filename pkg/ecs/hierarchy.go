package ecs

import "slices"

// Hierarchy records parent/child links. Children keep insertion order.
type Hierarchy struct {
	parents  map[Entity]Entity
	children map[Entity][]Entity
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// SetParent makes child a child of parent, detaching it from any previous
// parent.
func (h *Hierarchy) SetParent(child, parent Entity) {
	if old, ok := h.parents[child]; ok {
		h.detach(child, old)
	}
	h.parents[child] = parent
	h.children[parent] = append(h.children[parent], child)
}

// Parent returns the parent of e.
func (h *Hierarchy) Parent(e Entity) (Entity, bool) {
	p, ok := h.parents[e]
	return p, ok
}

// Children returns the direct children of e. The slice must not be modified.
func (h *Hierarchy) Children(e Entity) []Entity {
	return h.children[e]
}

// Descendants returns every entity below e, depth first.
func (h *Hierarchy) Descendants(e Entity) []Entity {
	var out []Entity
	for _, c := range h.children[e] {
		out = append(out, c)
		out = append(out, h.Descendants(c)...)
	}
	return out
}

// Remove unlinks e from its parent and forgets its own child list.
// Children of e become roots.
func (h *Hierarchy) Remove(e Entity) {
	if p, ok := h.parents[e]; ok {
		h.detach(e, p)
		delete(h.parents, e)
	}
	for _, c := range h.children[e] {
		delete(h.parents, c)
	}
	delete(h.children, e)
}

func (h *Hierarchy) detach(child, parent Entity) {
	siblings := h.children[parent]
	if i := slices.Index(siblings, child); i >= 0 {
		siblings = slices.Delete(siblings, i, i+1)
	}
	if len(siblings) == 0 {
		delete(h.children, parent)
		return
	}
	h.children[parent] = siblings
}
