// Package object provides the game entities: the ship, bullets, aliens and
// the play button, plus the sprite groups that hold them.
package object

import (
	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/settings"
)

// Sprite is an entity with an image drawn at its bounds.
type Sprite interface {
	Bounds() physics.Rect
	Image() *asset.Bitmap
}

// Mover is a sprite that advances one frame using the current settings.
type Mover interface {
	Sprite
	Update(s *settings.Settings)
}

// Compile-time checks for the entity types.
var (
	_ Mover = (*Ship)(nil)
	_ Mover = (*Bullet)(nil)
	_ Mover = (*Alien)(nil)
)

// sizeOf returns the rectangle of an image placed at the origin.
// A nil image yields a 1x1 placeholder rectangle.
func sizeOf(img *asset.Bitmap) physics.Rect {
	if img == nil || img.W <= 0 || img.H <= 0 {
		return physics.NewRect(0, 0, 1, 1)
	}
	return physics.NewRect(0, 0, img.W, img.H)
}
