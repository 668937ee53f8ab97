package object

// Group is an insertion-ordered set of sprites. A sprite is held at most once.
type Group[T comparable] struct {
	items []T
	index map[T]int
}

// NewGroup creates an empty group.
func NewGroup[T comparable]() *Group[T] {
	return &Group[T]{index: make(map[T]int)}
}

// Add inserts sprites that are not already members.
func (g *Group[T]) Add(items ...T) {
	for _, item := range items {
		if _, ok := g.index[item]; ok {
			continue
		}
		g.index[item] = len(g.items)
		g.items = append(g.items, item)
	}
}

// Remove deletes a sprite. Reports whether it was a member.
func (g *Group[T]) Remove(item T) bool {
	i, ok := g.index[item]
	if !ok {
		return false
	}
	copy(g.items[i:], g.items[i+1:])
	var zero T
	g.items[len(g.items)-1] = zero
	g.items = g.items[:len(g.items)-1]
	delete(g.index, item)
	for j := i; j < len(g.items); j++ {
		g.index[g.items[j]] = j
	}
	return true
}

// Has reports whether the sprite is a member.
func (g *Group[T]) Has(item T) bool {
	_, ok := g.index[item]
	return ok
}

// Len returns the number of members.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Empty removes every member.
func (g *Group[T]) Empty() {
	clear(g.items)
	g.items = g.items[:0]
	clear(g.index)
}

// Sprites returns a snapshot of the members in insertion order.
// The group may be modified while iterating over the snapshot.
func (g *Group[T]) Sprites() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Each calls fn for every member in insertion order.
// fn must not add or remove members.
func (g *Group[T]) Each(fn func(T)) {
	for _, item := range g.items {
		fn(item)
	}
}

// Retain keeps only the members for which keep returns true.
// Returns the number of members removed.
func (g *Group[T]) Retain(keep func(T) bool) int {
	kept := g.items[:0] // reuse backing array
	for _, item := range g.items {
		if keep(item) {
			kept = append(kept, item)
		} else {
			delete(g.index, item)
		}
	}
	removed := len(g.items) - len(kept)
	clear(g.items[len(kept):])
	g.items = kept
	for i, item := range g.items {
		g.index[item] = i
	}
	return removed
}
