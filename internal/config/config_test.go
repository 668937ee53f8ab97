package config

import (
	"testing"

	"github.com/tomz197/alien-invasion/internal/settings"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ALIEN_TEST_VALUE", "set")
	if got := GetEnv("ALIEN_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want %q", got, "set")
	}
	if got := GetEnv("ALIEN_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ALIEN_TEST_BOOL", "1")
	if !GetEnvBool("ALIEN_TEST_BOOL", false) {
		t.Error("expected true for \"1\"")
	}
	t.Setenv("ALIEN_TEST_BOOL", "maybe")
	if !GetEnvBool("ALIEN_TEST_BOOL", true) {
		t.Error("invalid value should return fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ALIEN_TEST_INT", "42")
	n, err := GetEnvInt("ALIEN_TEST_INT", 7)
	if err != nil || n != 42 {
		t.Errorf("GetEnvInt = %d, %v; want 42, nil", n, err)
	}

	t.Setenv("ALIEN_TEST_INT", "forty")
	n, err = GetEnvInt("ALIEN_TEST_INT", 7)
	if err == nil {
		t.Error("expected parse error")
	}
	if n != 7 {
		t.Errorf("GetEnvInt returned %d on error, want fallback 7", n)
	}
}

func TestApplySettingsEnv(t *testing.T) {
	t.Setenv("ALIEN_SHIP_LIMIT", "5")
	t.Setenv("ALIEN_BULLETS_ALLOWED", "3")
	t.Setenv("ALIEN_SPEEDUP_SCALE", "1.1")

	s := settings.New()
	if err := ApplySettingsEnv(s); err != nil {
		t.Fatalf("ApplySettingsEnv: %v", err)
	}
	if s.ShipLimit != 5 || s.BulletsAllowed != 3 || s.SpeedupScale != 1.1 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.ScoreScale != 2.0 {
		t.Errorf("ScoreScale = %v, want untouched 2.0", s.ScoreScale)
	}
}

func TestApplySettingsEnvRejectsInvalid(t *testing.T) {
	t.Setenv("ALIEN_SHIP_LIMIT", "0")
	s := settings.New()
	if err := ApplySettingsEnv(s); err == nil {
		t.Error("expected error for zero ship limit")
	}

	t.Setenv("ALIEN_SHIP_LIMIT", "x")
	s = settings.New()
	if err := ApplySettingsEnv(s); err == nil {
		t.Error("expected parse error")
	}
	if s.ShipLimit != 3 {
		t.Errorf("ShipLimit = %d, settings must stay untouched on parse error", s.ShipLimit)
	}
}
