package stats

import (
	"image/color"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tomz197/alien-invasion/internal/physics"
)

// Anchor selects which point of a text label is placed at its position.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCenter
	AnchorRight
)

// Label is a single line of overlay text. Y is the vertical middle of the
// line and X is placed according to Anchor.
type Label struct {
	Text   string
	X, Y   int
	Anchor Anchor
	Color  color.RGBA
}

// TextColor is the color of the score overlay.
var TextColor = color.RGBA{30, 200, 30, 255}

const (
	margin      = 20
	levelOffset = 30 // Distance from the score label to the level label
	shipSpacing = 10
)

var printer = message.NewPrinter(language.English)

// Scoreboard lays out the score, high score, level and remaining ships.
type Scoreboard struct {
	screen physics.Rect
	shipW  int
	shipH  int
}

// NewScoreboard creates a scoreboard for the screen. shipW and shipH are the
// size of the ship bitmap drawn for each remaining life.
func NewScoreboard(screen physics.Rect, shipW, shipH int) *Scoreboard {
	return &Scoreboard{screen: screen, shipW: shipW, shipH: shipH}
}

// Labels returns the score (top right), high score (top center) and level
// (below the score).
func (sb *Scoreboard) Labels(s *GameStats) []Label {
	right := sb.screen.Right() - margin
	return []Label{
		{Text: FormatScore(s.Score), X: right, Y: margin, Anchor: AnchorRight, Color: TextColor},
		{Text: FormatScore(s.HighScore), X: sb.screen.CenterX(), Y: margin, Anchor: AnchorCenter, Color: TextColor},
		{Text: FormatLevel(s.Level), X: right, Y: margin + levelOffset, Anchor: AnchorRight, Color: TextColor},
	}
}

// Ships returns one rectangle per remaining ship, in a row at the top left.
func (sb *Scoreboard) Ships(s *GameStats) []physics.Rect {
	rects := make([]physics.Rect, 0, s.ShipsLeft)
	for i := 0; i < s.ShipsLeft; i++ {
		x := shipSpacing + i*(sb.shipW+shipSpacing)
		rects = append(rects, physics.NewRect(x, shipSpacing, sb.shipW, sb.shipH))
	}
	return rects
}

// FormatScore rounds to the nearest ten, ties to even, and adds thousands
// separators.
func FormatScore(score int) string {
	rounded := int(math.RoundToEven(float64(score)/10) * 10)
	return printer.Sprintf("%d", rounded)
}

// FormatLevel returns the level label.
func FormatLevel(level int) string {
	return printer.Sprintf("L%d", level)
}
