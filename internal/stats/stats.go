// Package stats tracks score, level and lives, and lays out the scoreboard.
package stats

// GameStats holds the statistics of one game session.
type GameStats struct {
	ShipsLeft int
	Score     int
	Level     int
	HighScore int // Kept across resets for the whole session
	Active    bool
}

// New creates stats for a session that starts on the title screen.
func New(shipLimit int) *GameStats {
	s := &GameStats{}
	s.Reset(shipLimit)
	return s
}

// Reset restarts ships, score and level. HighScore is preserved.
func (s *GameStats) Reset(shipLimit int) {
	s.ShipsLeft = shipLimit
	s.Score = 0
	s.Level = 1
}

// AddScore awards points and updates the high score.
func (s *GameStats) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
	s.CheckHighScore()
}

// CheckHighScore raises the high score to the current score if it is higher.
func (s *GameStats) CheckHighScore() bool {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// LoseShip removes one ship and reports how many remain.
func (s *GameStats) LoseShip() int {
	if s.ShipsLeft > 0 {
		s.ShipsLeft--
	}
	return s.ShipsLeft
}
