package object

import (
	"testing"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
)

func TestGroupNoDuplicates(t *testing.T) {
	g := NewGroup[*Alien]()
	a := NewAlien(nil, 0, 0)
	g.Add(a, a)
	g.Add(a)
	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1", g.Len())
	}
	if !g.Remove(a) {
		t.Error("Remove should report membership")
	}
	if g.Remove(a) {
		t.Error("second Remove should report false")
	}
	if g.Len() != 0 || g.Has(a) {
		t.Error("group should be empty")
	}
}

func TestGroupOrderAfterRemove(t *testing.T) {
	g := NewGroup[*Alien]()
	a, b, c := NewAlien(nil, 0, 0), NewAlien(nil, 1, 0), NewAlien(nil, 2, 0)
	g.Add(a, b, c)
	g.Remove(b)
	got := g.Sprites()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Sprites = %v, want [a c]", got)
	}
	g.Remove(c)
	if !g.Has(a) || g.Has(c) {
		t.Error("index out of sync after removal")
	}
}

func TestGroupRetainAndEmpty(t *testing.T) {
	g := NewGroup[*Bullet]()
	for y := -20; y < 20; y += 10 {
		g.Add(&Bullet{Rect: physics.NewRect(0, y, 3, 15)})
	}
	removed := g.Retain(func(b *Bullet) bool { return !b.OffScreen() })
	if removed != 1 || g.Len() != 3 {
		t.Fatalf("Retain removed %d, Len %d; want 1, 3", removed, g.Len())
	}
	for _, b := range g.Sprites() {
		if !g.Has(b) {
			t.Error("retained bullet missing from index")
		}
	}
	g.Empty()
	if g.Len() != 0 {
		t.Errorf("Len after Empty = %d", g.Len())
	}
}

func TestGroupCollideEachBulletTakesAllOverlaps(t *testing.T) {
	img := asset.NewBitmap(10, 10)
	bullets := NewGroup[*Bullet]()
	aliens := NewGroup[*Alien]()

	wide := &Bullet{Rect: physics.NewRect(0, 0, 30, 5)}
	second := &Bullet{Rect: physics.NewRect(5, 0, 3, 5)}
	miss := &Bullet{Rect: physics.NewRect(500, 500, 3, 5)}
	bullets.Add(wide, second, miss)

	a1 := NewAlien(img, 0, 0)
	a2 := NewAlien(img, 15, 0)
	far := NewAlien(img, 300, 300)
	aliens.Add(a1, a2, far)

	hits := GroupCollide(bullets, aliens, true, true)

	if len(hits) != 1 {
		t.Fatalf("hits = %d bullets, want 1 (second bullet finds nothing left)", len(hits))
	}
	if got := hits[wide]; len(got) != 2 {
		t.Fatalf("wide bullet hit %d aliens, want 2", len(got))
	}
	if bullets.Has(wide) {
		t.Error("hitting bullet should be removed")
	}
	if !bullets.Has(second) || !bullets.Has(miss) {
		t.Error("non-hitting bullets must stay")
	}
	if aliens.Len() != 1 || !aliens.Has(far) {
		t.Error("only the far alien should survive")
	}
}

func TestGroupCollideWithoutKill(t *testing.T) {
	img := asset.NewBitmap(10, 10)
	bullets := NewGroup[*Bullet]()
	aliens := NewGroup[*Alien]()
	bullets.Add(&Bullet{Rect: physics.NewRect(0, 0, 3, 5)})
	aliens.Add(NewAlien(img, 0, 0))

	hits := GroupCollide(bullets, aliens, false, false)
	if len(hits) != 1 || bullets.Len() != 1 || aliens.Len() != 1 {
		t.Errorf("hits=%d bullets=%d aliens=%d, want 1/1/1", len(hits), bullets.Len(), aliens.Len())
	}
}

func TestCollideAny(t *testing.T) {
	img := asset.NewBitmap(10, 10)
	aliens := NewGroup[*Alien]()
	aliens.Add(NewAlien(img, 100, 100), NewAlien(img, 0, 0))

	ship := &Ship{Rect: physics.NewRect(5, 5, 10, 10)}
	hit, ok := CollideAny(ship, aliens)
	if !ok || hit.Rect.X != 0 {
		t.Errorf("CollideAny = %v, %v; want alien at 0", hit, ok)
	}

	ship.Rect.X = 500
	if _, ok := CollideAny(ship, aliens); ok {
		t.Error("expected no collision")
	}
}
