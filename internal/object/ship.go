package object

import (
	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/settings"
)

// Ship is the player-controlled ship at the bottom of the screen.
type Ship struct {
	X    float64 // Horizontal position of the left edge
	Rect physics.Rect

	MovingLeft  bool
	MovingRight bool

	img    *asset.Bitmap
	screen physics.Rect
}

// NewShip creates a ship centered at the bottom of the screen.
func NewShip(img *asset.Bitmap, screen physics.Rect) *Ship {
	s := &Ship{
		Rect:   sizeOf(img),
		img:    img,
		screen: screen,
	}
	s.Center()
	return s
}

// Update moves the ship according to its movement flags, keeping it on screen.
func (s *Ship) Update(cfg *settings.Settings) {
	if s.MovingRight {
		s.X += cfg.ShipSpeed
	}
	if s.MovingLeft {
		s.X -= cfg.ShipSpeed
	}

	maxX := float64(s.screen.Right() - s.Rect.W)
	if s.X > maxX {
		s.X = maxX
	}
	if s.X < float64(s.screen.Left()) {
		s.X = float64(s.screen.Left())
	}

	s.Rect.X = int(s.X)
}

// Center places the ship at the bottom center of the screen.
func (s *Ship) Center() {
	s.Rect.SetMidBottom(s.screen.MidBottom())
	s.X = float64(s.Rect.X)
}

// Bounds returns the ship rectangle.
func (s *Ship) Bounds() physics.Rect { return s.Rect }

// Image returns the ship bitmap.
func (s *Ship) Image() *asset.Bitmap { return s.img }
