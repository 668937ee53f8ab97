package config

import (
	"errors"
	"time"

	"github.com/tomz197/alien-invasion/internal/settings"
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Gameplay
const (
	LifeLostPause = 500 * time.Millisecond // Pause after losing a ship
)

// Terminal rendering - the largest canvas drawn, in terminal cells.
// Larger terminals get the canvas centered inside a border.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
)

// Assets
const (
	DefaultAssetDir = "images"
	AssetDirEnv     = "ALIEN_ASSETS"
)

// Sound effects, local front ends only
const SoundEnv = "ALIEN_SOUND"

// Leaderboard
const (
	LeaderboardSize  = 10
	LeaderboardShown = 5
	MaxPlayerName    = 16
)

// ApplySettingsEnv overrides the tunable settings from the environment:
// ALIEN_SHIP_LIMIT, ALIEN_BULLETS_ALLOWED, ALIEN_SPEEDUP_SCALE and
// ALIEN_SCORE_SCALE. The result is validated.
func ApplySettingsEnv(s *settings.Settings) error {
	var errs []error

	shipLimit, err := GetEnvInt("ALIEN_SHIP_LIMIT", s.ShipLimit)
	errs = append(errs, err)
	bullets, err := GetEnvInt("ALIEN_BULLETS_ALLOWED", s.BulletsAllowed)
	errs = append(errs, err)
	speedup, err := GetEnvFloat("ALIEN_SPEEDUP_SCALE", s.SpeedupScale)
	errs = append(errs, err)
	scoreScale, err := GetEnvFloat("ALIEN_SCORE_SCALE", s.ScoreScale)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.ShipLimit = shipLimit
	s.BulletsAllowed = bullets
	s.SpeedupScale = speedup
	s.ScoreScale = scoreScale
	return s.Validate()
}
