package object

import (
	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/settings"
)

// Alien is a single member of the fleet.
type Alien struct {
	X, Y float64 // Position of the top-left corner
	Rect physics.Rect
	img  *asset.Bitmap
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(img *asset.Bitmap, x, y float64) *Alien {
	a := &Alien{
		Rect: sizeOf(img),
		img:  img,
	}
	a.MoveTo(x, y)
	return a
}

// MoveTo places the alien at (x, y).
func (a *Alien) MoveTo(x, y float64) {
	a.X = x
	a.Y = y
	a.Rect.X = int(x)
	a.Rect.Y = int(y)
}

// Update moves the alien sideways in the fleet direction.
func (a *Alien) Update(cfg *settings.Settings) {
	a.X += cfg.AlienSpeed * float64(cfg.FleetDirection)
	a.Rect.X = int(a.X)
}

// Drop moves the alien down by dy pixels.
func (a *Alien) Drop(dy int) {
	a.Y += float64(dy)
	a.Rect.Y = int(a.Y)
}

// CheckEdges reports whether the alien touches or passes a side of the screen.
func (a *Alien) CheckEdges(screen physics.Rect) bool {
	return a.Rect.Right() >= screen.Right() || a.Rect.Left() <= screen.Left()
}

// Bounds returns the alien rectangle.
func (a *Alien) Bounds() physics.Rect { return a.Rect }

// Image returns the alien bitmap.
func (a *Alien) Image() *asset.Bitmap { return a.img }
