// Package window runs Alien Invasion in a desktop window using ebiten.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/game"
	"github.com/tomz197/alien-invasion/internal/leaderboard"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// Title of the window.
const Title = "Alien Invasion"

// Sounder plays sound effects. *audio.Player implements it.
type Sounder interface {
	Play(e audio.Effect) bool
}

// Options configures the window front end.
type Options struct {
	Game        game.Config
	Leaderboard *leaderboard.Board // Optional, shown on the title screen
	Player      string
	Sound       Sounder     // Optional
	Logger      *log.Logger // Defaults to discarding
}

// Window adapts a game to ebiten.Game.
type Window struct {
	game    *game.Game
	surface *surface
	board   *leaderboard.Board
	player  string
	sound   Sounder
	log     *log.Logger

	pressed  []ebiten.Key
	released []ebiten.Key
}

var _ ebiten.Game = (*Window)(nil)

// New creates the window front end for a new game.
func New(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:    game.New(opts.Game),
		surface: newSurface(),
		board:   opts.Leaderboard,
		player:  leaderboard.CleanName(opts.Player),
		sound:   opts.Sound,
		log:     logger,
	}
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	w := New(opts)
	screen := w.game.Screen()
	ebiten.SetWindowSize(screen.W, screen.H)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TargetFPS)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return nil
}

// Update steps the game once per tick.
func (w *Window) Update() error {
	w.pressed = inpututil.AppendJustPressedKeys(w.pressed[:0])
	w.released = inpututil.AppendJustReleasedKeys(w.released[:0])
	in := frameInput{
		closing:  ebiten.IsWindowBeingClosed(),
		pressed:  w.pressed,
		released: w.released,
		click:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	if in.click {
		in.x, in.y = ebiten.CursorPosition()
	}

	if err := w.game.Step(in.events()); err != nil {
		if errors.Is(err, game.ErrQuit) {
			w.log.Info("player quit", "score", w.game.Stats().Score)
			return ebiten.Termination
		}
		return err
	}
	w.handleNotices(w.game.Notices())
	return nil
}

func (w *Window) handleNotices(notices []game.Notice) {
	for _, n := range notices {
		var effect audio.Effect
		switch n.Type {
		case game.NoticeBulletFired:
			effect = audio.EffectFire
		case game.NoticeAliensDestroyed:
			effect = audio.EffectExplode
		case game.NoticeLevelCleared:
			effect = audio.EffectLevelUp
			w.log.Info("level cleared", "level", n.Level, "score", n.Score)
		case game.NoticeShipHit:
			effect = audio.EffectShipHit
		case game.NoticeGameOver:
			effect = audio.EffectGameOver
			rank := 0
			if w.board != nil {
				rank = w.board.Submit(w.player, n.Score, n.Level)
			}
			w.log.Info("game over", "score", n.Score, "level", n.Level, "rank", rank)
		default:
			continue
		}
		if w.sound != nil {
			w.sound.Play(effect)
		}
	}
}

// Draw renders the frame and, on the title screen, the leaderboard.
func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.target = screen
	_ = w.game.Draw(w.surface)

	if w.game.Active() || w.board == nil {
		return
	}
	lines := leaderboard.Lines(w.board.Top(config.LeaderboardShown))
	if len(lines) > 0 {
		lines = append([]string{"Top scores"}, lines...)
	}
	y := w.game.PlayButton().Rect.Bottom() + 60
	x := w.game.Screen().CenterX()
	for i, line := range lines {
		w.surface.DrawText(x, y+i*30, line, stats.AnchorCenter, stats.TextColor)
	}
}

// Layout keeps the logical screen size regardless of the window size.
func (w *Window) Layout(_, _ int) (int, int) {
	screen := w.game.Screen()
	return screen.W, screen.H
}

// Game returns the running game.
func (w *Window) Game() *game.Game { return w.game }
