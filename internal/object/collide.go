package object

// GroupCollide finds, for every sprite in a, the sprites in b it overlaps.
// Each sprite in a collects every member of b it overlaps, not just one.
// With killB set, collected members of b leave the group immediately, so a
// later sprite of a cannot collect them again. With killA set, sprites of a
// that hit anything leave a. The result lists hits in the order found.
func GroupCollide[A, B interface {
	Sprite
	comparable
}](a *Group[A], b *Group[B], killA, killB bool) map[A][]B {
	hits := make(map[A][]B)
	for _, sa := range a.Sprites() {
		ra := sa.Bounds()
		var found []B
		for _, sb := range b.Sprites() {
			if ra.Colliderect(sb.Bounds()) {
				found = append(found, sb)
			}
		}
		if len(found) == 0 {
			continue
		}
		if killB {
			for _, sb := range found {
				b.Remove(sb)
			}
		}
		if killA {
			a.Remove(sa)
		}
		hits[sa] = found
	}
	return hits
}

// CollideAny returns the first member of g that overlaps s.
func CollideAny[T interface {
	Sprite
	comparable
}](s Sprite, g *Group[T]) (T, bool) {
	rs := s.Bounds()
	for _, item := range g.items {
		if rs.Colliderect(item.Bounds()) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
