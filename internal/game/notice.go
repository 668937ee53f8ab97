package game

// NoticeType identifies a gameplay notice.
type NoticeType int

const (
	NoticeGameStarted     NoticeType = iota
	NoticeBulletFired                // A bullet was created
	NoticeAliensDestroyed            // Count aliens were shot, Score awarded
	NoticeLevelCleared               // Fleet destroyed, Level is the new level
	NoticeShipHit                    // A ship was lost, ShipsLeft remain
	NoticeGameOver                   // No ships left, final Score and Level
)

// Notice reports something that happened during a frame, for front ends
// that react with sounds, logs or leaderboards.
type Notice struct {
	Type      NoticeType
	Count     int
	Score     int
	Level     int
	ShipsLeft int
}

func (t NoticeType) String() string {
	switch t {
	case NoticeGameStarted:
		return "game started"
	case NoticeBulletFired:
		return "bullet fired"
	case NoticeAliensDestroyed:
		return "aliens destroyed"
	case NoticeLevelCleared:
		return "level cleared"
	case NoticeShipHit:
		return "ship hit"
	case NoticeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
