package stats

import (
	"testing"

	"github.com/tomz197/alien-invasion/internal/physics"
)

func TestNewAndReset(t *testing.T) {
	s := New(3)
	if s.ShipsLeft != 3 || s.Score != 0 || s.Level != 1 || s.Active {
		t.Fatalf("New = %+v", s)
	}

	s.AddScore(500)
	s.Level = 4
	s.ShipsLeft = 0
	s.Reset(3)

	if s.ShipsLeft != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("Reset = %+v", s)
	}
	if s.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500 kept across reset", s.HighScore)
	}
}

func TestHighScoreTracksMax(t *testing.T) {
	s := New(3)
	s.HighScore = 1000

	s.AddScore(400)
	if s.HighScore != 1000 {
		t.Errorf("HighScore = %d, want 1000", s.HighScore)
	}
	s.AddScore(700)
	if s.HighScore != 1100 {
		t.Errorf("HighScore = %d, want 1100", s.HighScore)
	}
	s.AddScore(-50)
	if s.Score != 1100 {
		t.Errorf("negative points must be ignored, Score = %d", s.Score)
	}
}

func TestLoseShip(t *testing.T) {
	s := New(1)
	if left := s.LoseShip(); left != 0 {
		t.Errorf("LoseShip = %d, want 0", left)
	}
	if left := s.LoseShip(); left != 0 {
		t.Errorf("ShipsLeft went below zero: %d", left)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{50, "50"},
		{25, "20"},
		{35, "40"},
		{1234, "1,230"},
		{1250000, "1,250,000"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreboardLayout(t *testing.T) {
	screen := physics.NewRect(0, 0, 1200, 800)
	sb := NewScoreboard(screen, 60, 48)
	s := New(3)
	s.Score = 1500
	s.HighScore = 2000
	s.Level = 2

	labels := sb.Labels(s)
	if len(labels) != 3 {
		t.Fatalf("labels = %d, want 3", len(labels))
	}
	if labels[0].Text != "1,500" || labels[0].Anchor != AnchorRight || labels[0].X != 1180 {
		t.Errorf("score label = %+v", labels[0])
	}
	if labels[1].Text != "2,000" || labels[1].Anchor != AnchorCenter || labels[1].X != 600 {
		t.Errorf("high score label = %+v", labels[1])
	}
	if labels[2].Text != "L2" || labels[2].Y != 50 {
		t.Errorf("level label = %+v", labels[2])
	}

	ships := sb.Ships(s)
	if len(ships) != 3 {
		t.Fatalf("ships = %d, want 3", len(ships))
	}
	if ships[1].X != 80 || ships[0].Y != 10 {
		t.Errorf("ship icons at %+v", ships)
	}
}
