package object

import (
	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/settings"
)

// Bullet is a projectile fired upward from the ship.
type Bullet struct {
	Y    float64 // Vertical position of the top edge
	Rect physics.Rect
	img  *asset.Bitmap
}

// NewBullet creates a bullet at the ship's top center.
func NewBullet(img *asset.Bitmap, ship *Ship) *Bullet {
	b := &Bullet{
		Rect: sizeOf(img),
		img:  img,
	}
	b.Rect.SetMidTop(ship.Rect.MidTop())
	b.Y = float64(b.Rect.Y)
	return b
}

// Update moves the bullet up by the current bullet speed.
func (b *Bullet) Update(cfg *settings.Settings) {
	b.Y -= cfg.BulletSpeed
	b.Rect.Y = int(b.Y)
}

// OffScreen reports whether the bullet has left the top of the screen.
func (b *Bullet) OffScreen() bool {
	return b.Rect.Bottom() <= 0
}

// Bounds returns the bullet rectangle.
func (b *Bullet) Bounds() physics.Rect { return b.Rect }

// Image returns the bullet bitmap.
func (b *Bullet) Image() *asset.Bitmap { return b.img }
