// Package loop runs Alien Invasion on an ANSI terminal: it reads raw input,
// steps the game at a fixed frame rate and renders each frame as text.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/audio"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/draw"
	"github.com/tomz197/alien-invasion/internal/game"
	"github.com/tomz197/alien-invasion/internal/input"
	"github.com/tomz197/alien-invasion/internal/leaderboard"
	"github.com/tomz197/alien-invasion/internal/settings"
)

// Sounder plays sound effects. *audio.Player implements it.
type Sounder interface {
	Play(e audio.Effect) bool
}

// Options configures a terminal game session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Settings     *settings.Settings
	Assets       *asset.Set         // Defaults to placeholder shapes
	Leaderboard  *leaderboard.Board // Optional, receives finished games
	Player       string             // Name submitted to the leaderboard
	Sound        Sounder            // Optional
	Logger       *log.Logger        // Defaults to discarding
}

// session is one running terminal game.
type session struct {
	ctx     context.Context
	game    *game.Game
	canvas  *draw.Canvas
	surface *termSurface
	stream  *input.Stream
	pending []input.Event // Synthesized releases for the next frame

	sizeFunc draw.TermSizeFunc
	board    *leaderboard.Board
	player   string
	sound    Sounder
	log      *log.Logger
}

// Run plays a game on the terminal behind r and w until the player quits,
// the input ends or ctx is cancelled. Each of these returns nil.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s := newSession(ctx, input.StartStream(r), w, opts)
	return s.run()
}

func newSession(ctx context.Context, stream *input.Stream, w io.Writer, opts Options) *session {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = silent{}
	}

	s := &session{
		ctx:      ctx,
		stream:   stream,
		sizeFunc: sizeFunc,
		board:    opts.Leaderboard,
		player:   leaderboard.CleanName(opts.Player),
		sound:    sound,
		log:      logger,
	}
	s.game = game.New(game.Config{
		Settings: opts.Settings,
		Assets:   opts.Assets,
		Pause:    s.pause,
	})

	screen := s.game.Screen()
	s.canvas = draw.NewScaledCanvas(1, 1, float64(screen.W), float64(screen.H))
	s.updateScreen()
	s.surface = newTermSurface(s.canvas, w)

	s.syncHighScore()
	s.updateOverlay()
	return s
}

// run is the Input → Update → Draw cycle.
func (s *session) run() error {
	draw.HideCursor(s.surface.out)
	defer s.surface.restore()

	s.log.Info("session started",
		"term", fmt.Sprintf("%dx%d", s.canvas.TerminalWidth(), s.canvas.TerminalHeight()))

	for {
		frameStart := time.Now()

		select {
		case <-s.ctx.Done():
			s.log.Info("session cancelled", "score", s.game.Stats().Score)
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		events := s.frameEvents(frameStart)

		// ===== UPDATE PHASE =====
		s.updateScreen()
		if err := s.game.Step(events); err != nil {
			if errors.Is(err, game.ErrQuit) {
				msg := "player quit"
				if s.stream.Closed() {
					msg = "input closed"
				}
				s.log.Info(msg, "score", s.game.Stats().Score, "level", s.game.Stats().Level)
				return nil
			}
			return fmt.Errorf("step: %w", err)
		}
		s.handleNotices(s.game.Notices())

		// ===== DRAW PHASE =====
		s.surface.showOverlay = !s.game.Active()
		if s.surface.showOverlay {
			s.updateOverlay() // Other sessions may have finished games
		}
		if err := s.game.Draw(s.surface); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		// ===== FRAME TIMING =====
		if wait := config.TargetFrameTime - time.Since(frameStart); wait > 0 {
			s.sleep(wait)
		}
	}
}

// pause blocks the game after a ship is lost. Cancellation cuts it short.
func (s *session) pause(d time.Duration) {
	s.sleep(d)
}

func (s *session) sleep(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
	case <-t.C:
	}
}

// frameEvents returns the releases queued by the last frame followed by
// the input read since.
func (s *session) frameEvents(now time.Time) []input.Event {
	events := append(s.pending, s.translate(s.stream.Poll(now))...)
	s.pending = nil
	return events
}

// translate converts click positions from terminal cells to logical
// coordinates and drops clicks outside the canvas.
func (s *session) translate(events []input.Event) []input.Event {
	out := events[:0]
	for _, ev := range events {
		if ev.Type == input.EventClick {
			x, y, ok := s.canvas.TerminalToLogical(ev.X, ev.Y)
			if !ok {
				continue
			}
			ev.X, ev.Y = x, y
		}
		out = append(out, ev)
	}
	return out
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (s *session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.sizeFunc)
	if err != nil {
		return
	}
	w, h, offCol, offRow := clampTermSize(termWidth, termHeight, s.canvas.LogicalWidth(), s.canvas.LogicalHeight())
	s.canvas.Resize(w, h)
	s.canvas.SetOffset(offCol, offRow)
}

// clampTermSize returns the canvas size in cells that keeps the logical
// aspect ratio within the terminal and the maximum render size, and the
// offsets that center it. Each cell holds two vertical sub-pixels.
func clampTermSize(termWidth, termHeight int, logicalWidth, logicalHeight float64) (w, h, offCol, offRow int) {
	maxW := min(termWidth, config.MaxTermWidth)
	maxH := min(termHeight, config.MaxTermHeight)
	aspect := logicalWidth / logicalHeight * 2 // Columns per row

	w = maxW
	h = int(float64(w) / aspect)
	if h > maxH {
		h = maxH
		w = int(float64(h) * aspect)
	}
	w = max(w, 1)
	h = max(h, 1)

	offCol = max((termWidth-w)/2, 0)
	offRow = max((termHeight-h)/2, 0)
	return w, h, offCol, offRow
}

// handleNotices plays sounds, records finished games and logs progress.
func (s *session) handleNotices(notices []game.Notice) {
	for _, n := range notices {
		switch n.Type {
		case game.NoticeGameStarted:
			s.syncHighScore()
			s.log.Info("game started")
		case game.NoticeBulletFired:
			s.sound.Play(audio.EffectFire)
		case game.NoticeAliensDestroyed:
			s.sound.Play(audio.EffectExplode)
		case game.NoticeLevelCleared:
			s.sound.Play(audio.EffectLevelUp)
			s.log.Info("level cleared", "level", n.Level, "score", n.Score)
		case game.NoticeShipHit:
			s.sound.Play(audio.EffectShipHit)
			s.log.Debug("ship hit", "ships_left", n.ShipsLeft, "level", n.Level)
		case game.NoticeGameOver:
			s.sound.Play(audio.EffectGameOver)
			s.gameOver(n)
		}
	}
}

// releaseKeys lets go of every held steering key in the next frame, so a
// new ship starts still until the player steers again.
func (s *session) releaseKeys() {
	s.pending = append(s.pending, s.stream.ReleaseAll()...)
}

// gameOver submits the final score to the leaderboard.
func (s *session) gameOver(n game.Notice) {
	rank := 0
	if s.board != nil {
		rank = s.board.Submit(s.player, n.Score, n.Level)
	}
	s.log.Info("game over", "score", n.Score, "level", n.Level, "rank", rank)
}

// syncHighScore raises the session high score to the best on the board.
func (s *session) syncHighScore() {
	if s.board == nil {
		return
	}
	if best, ok := s.board.Best(); ok {
		st := s.game.Stats()
		st.HighScore = max(st.HighScore, best.Score)
	}
}

// updateOverlay shows the leaderboard under the play button.
func (s *session) updateOverlay() {
	if s.board == nil {
		return
	}
	lines := leaderboard.Lines(s.board.Top(config.LeaderboardShown))
	if len(lines) > 0 {
		lines = append([]string{"Top scores"}, lines...)
	}
	s.surface.setOverlay(s.game.PlayButton().Rect.Bottom()+2*overlayLineHeight, lines)
}

// silent is the Sounder used without sound.
type silent struct{}

func (silent) Play(audio.Effect) bool { return false }
