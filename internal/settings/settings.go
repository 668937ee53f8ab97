// Package settings holds the tunable parameters of a game session.
package settings

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tomz197/alien-invasion/internal/physics"
)

// Baseline values for the dynamic settings, restored on every new game.
const (
	BaseShipSpeed   = 1.5
	BaseBulletSpeed = 3.0
	BaseAlienSpeed  = 1.0
	BaseAlienPoints = 50
)

// Settings holds static screen/entity parameters and the dynamic values
// that change as the player clears levels. Speeds are in pixels per frame.
type Settings struct {
	// Screen
	ScreenWidth  int
	ScreenHeight int
	BgColor      color.RGBA

	// Ship
	ShipSpeed float64
	ShipLimit int

	// Bullet
	BulletSpeed    float64
	BulletWidth    int
	BulletHeight   int
	BulletColor    color.RGBA
	BulletsAllowed int

	// Alien
	AlienSpeed     float64
	FleetDropSpeed int
	FleetDirection int // 1 moves right, -1 moves left
	AlienPoints    int

	// Escalation applied on every level clear
	SpeedupScale float64
	ScoreScale   float64
}

// New returns settings with the baseline configuration.
func New() *Settings {
	s := &Settings{
		ScreenWidth:    1200,
		ScreenHeight:   800,
		BgColor:        color.RGBA{0, 0, 0, 255},
		ShipLimit:      3,
		BulletWidth:    3,
		BulletHeight:   15,
		BulletColor:    color.RGBA{249, 249, 6, 255},
		BulletsAllowed: 99,
		FleetDropSpeed: 10,
		SpeedupScale:   1.5,
		ScoreScale:     2.0,
	}
	s.ResetDynamic()
	return s
}

// Clone returns an independent copy.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

// ResetDynamic restores the values that change throughout a game.
func (s *Settings) ResetDynamic() {
	s.ShipSpeed = BaseShipSpeed
	s.BulletSpeed = BaseBulletSpeed
	s.AlienSpeed = BaseAlienSpeed
	s.FleetDirection = 1
	s.AlienPoints = BaseAlienPoints
}

// IncreaseSpeed speeds up the ship, bullets and aliens and raises the
// per-alien point value. Points are truncated to an integer.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale

	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ReverseFleet flips the horizontal direction of the fleet.
func (s *Settings) ReverseFleet() {
	if s.FleetDirection > 0 {
		s.FleetDirection = -1
	} else {
		s.FleetDirection = 1
	}
}

// Screen returns the screen rectangle.
func (s *Settings) Screen() physics.Rect {
	return physics.NewRect(0, 0, s.ScreenWidth, s.ScreenHeight)
}

// Validate reports settings that would make the game unplayable.
func (s *Settings) Validate() error {
	var errs []error
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight))
	}
	if s.ShipLimit <= 0 {
		errs = append(errs, fmt.Errorf("ship limit %d must be positive", s.ShipLimit))
	}
	if s.BulletsAllowed <= 0 {
		errs = append(errs, fmt.Errorf("bullets allowed %d must be positive", s.BulletsAllowed))
	}
	if s.SpeedupScale <= 0 {
		errs = append(errs, fmt.Errorf("speedup scale %g must be positive", s.SpeedupScale))
	}
	if s.ScoreScale <= 0 {
		errs = append(errs, fmt.Errorf("score scale %g must be positive", s.ScoreScale))
	}
	if s.FleetDirection != 1 && s.FleetDirection != -1 {
		errs = append(errs, fmt.Errorf("fleet direction %d must be 1 or -1", s.FleetDirection))
	}
	return errors.Join(errs...)
}
