// Package game implements the frame-by-frame rules of Alien Invasion:
// input dispatch, movement, collisions, fleet behavior, scoring, lives
// and difficulty. It is independent of the terminal or window it runs in.
package game

import (
	"errors"
	"image/color"
	"time"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/config"
	"github.com/tomz197/alien-invasion/internal/input"
	"github.com/tomz197/alien-invasion/internal/object"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/settings"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// ErrQuit is returned by Step when the player asks to quit.
var ErrQuit = errors.New("game: quit requested")

// Config configures a new game.
type Config struct {
	Settings      *settings.Settings  // Defaults to settings.New()
	Assets        *asset.Set          // Defaults to PlaceholderAssets()
	Pause         func(time.Duration) // Blocking pause after losing a ship; defaults to time.Sleep
	LifeLostPause time.Duration       // Defaults to config.LifeLostPause
}

// Game is one game session: a ship, its bullets, the alien fleet and the
// statistics, driven one frame at a time by Step.
type Game struct {
	settings *settings.Settings
	stats    *stats.GameStats
	board    *stats.Scoreboard
	assets   *asset.Set
	screen   physics.Rect

	ship    *object.Ship
	bullets *object.Group[*object.Bullet]
	aliens  *object.Group[*object.Alien]
	play    *object.Button

	pause          func(time.Duration)
	pauseFor       time.Duration
	pointerVisible bool
	notices        []Notice
}

// New creates a game on the title screen with a fleet already in place.
func New(cfg Config) *Game {
	s := cfg.Settings
	if s == nil {
		s = settings.New()
	}
	assets := cfg.Assets
	if assets == nil {
		assets = PlaceholderAssets(s)
	}
	pause := cfg.Pause
	if pause == nil {
		pause = time.Sleep
	}
	pauseFor := cfg.LifeLostPause
	if pauseFor == 0 {
		pauseFor = config.LifeLostPause
	}

	screen := s.Screen()
	g := &Game{
		settings:       s,
		stats:          stats.New(s.ShipLimit),
		board:          stats.NewScoreboard(screen, assets.Ship.W, assets.Ship.H),
		assets:         assets,
		screen:         screen,
		ship:           object.NewShip(assets.Ship, screen),
		bullets:        object.NewGroup[*object.Bullet](),
		aliens:         object.NewGroup[*object.Alien](),
		play:           object.NewButton(screen, "Play"),
		pause:          pause,
		pauseFor:       pauseFor,
		pointerVisible: true,
	}
	g.createFleet()
	return g
}

// PlaceholderAssets returns plain rectangles for the ship and bullet and the
// built-in alien, for running without bitmap files.
func PlaceholderAssets(s *settings.Settings) *asset.Set {
	ship := asset.NewBitmap(60, 48)
	fill(ship, color.RGBA{220, 220, 230, 255})
	bullet := asset.NewBitmap(s.BulletWidth, s.BulletHeight)
	fill(bullet, s.BulletColor)
	return &asset.Set{Ship: ship, Bullet: bullet, Alien: asset.Alien()}
}

func fill(b *asset.Bitmap, c color.RGBA) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

// Step advances the game by one frame: it dispatches the frame's input
// events and, while a game is active, moves everything and resolves
// collisions. It returns ErrQuit when the player quits.
func (g *Game) Step(events []input.Event) error {
	for _, ev := range events {
		if err := g.handleEvent(ev); err != nil {
			return err
		}
	}

	if g.stats.Active {
		g.ship.Update(g.settings)
		g.updateBullets()
		g.updateAliens()
	}
	return nil
}

// handleEvent responds to a single input event.
func (g *Game) handleEvent(ev input.Event) error {
	switch ev.Type {
	case input.EventQuit:
		return ErrQuit
	case input.EventKeyDown:
		return g.handleKeyDown(ev.Key)
	case input.EventKeyUp:
		g.handleKeyUp(ev.Key)
	case input.EventClick:
		if !g.stats.Active && g.play.Clicked(ev.X, ev.Y) {
			g.Start()
		}
	}
	return nil
}

func (g *Game) handleKeyDown(k input.Key) error {
	switch k {
	case input.KeyRight:
		g.ship.MovingRight = true
	case input.KeyLeft:
		g.ship.MovingLeft = true
	case input.KeyQuit:
		return ErrQuit
	case input.KeyFire:
		g.fireBullet()
	case input.KeyPlay:
		if !g.stats.Active {
			g.Start()
		}
	}
	return nil
}

func (g *Game) handleKeyUp(k input.Key) {
	switch k {
	case input.KeyRight:
		g.ship.MovingRight = false
	case input.KeyLeft:
		g.ship.MovingLeft = false
	}
}

// Start begins a new game from the title or game over screen. It does
// nothing while a game is already active.
func (g *Game) Start() {
	if g.stats.Active {
		return
	}
	g.settings.ResetDynamic()
	g.stats.Reset(g.settings.ShipLimit)
	g.stats.Active = true

	g.aliens.Empty()
	g.bullets.Empty()

	g.createFleet()
	g.ship.Center()

	g.pointerVisible = false
	g.notify(Notice{Type: NoticeGameStarted, Level: g.stats.Level, ShipsLeft: g.stats.ShipsLeft})
}

// fireBullet adds a bullet unless the live bullet cap is reached.
func (g *Game) fireBullet() {
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return
	}
	g.bullets.Add(object.NewBullet(g.assets.Bullet, g.ship))
	g.notify(Notice{Type: NoticeBulletFired, Count: g.bullets.Len()})
}

// updateBullets moves bullets, drops the ones that left the screen and
// resolves hits on aliens.
func (g *Game) updateBullets() {
	g.bullets.Each(func(b *object.Bullet) {
		b.Update(g.settings)
	})
	g.bullets.Retain(func(b *object.Bullet) bool {
		return !b.OffScreen()
	})

	g.checkBulletAlienCollisions()
}

// checkBulletAlienCollisions removes every bullet and alien that overlap,
// scores the destroyed aliens and starts the next level once the fleet is gone.
func (g *Game) checkBulletAlienCollisions() {
	hits := object.GroupCollide(g.bullets, g.aliens, true, true)
	if len(hits) == 0 {
		return
	}

	destroyed := 0
	for _, aliens := range hits {
		destroyed += len(aliens)
	}
	points := destroyed * g.settings.AlienPoints
	g.stats.AddScore(points)
	g.notify(Notice{Type: NoticeAliensDestroyed, Count: destroyed, Score: g.stats.Score})

	if g.aliens.Len() == 0 {
		g.nextLevel()
	}
}

// nextLevel replaces the destroyed fleet and raises the difficulty.
func (g *Game) nextLevel() {
	g.bullets.Empty()
	g.createFleet()
	g.settings.IncreaseSpeed()

	g.stats.Level++
	g.notify(Notice{Type: NoticeLevelCleared, Level: g.stats.Level, Score: g.stats.Score})
}

// updateAliens turns the fleet at the edges, moves it, and checks whether
// it reached the ship or the bottom of the screen.
func (g *Game) updateAliens() {
	g.checkFleetEdges()
	g.aliens.Each(func(a *object.Alien) {
		a.Update(g.settings)
	})

	if _, hit := object.CollideAny(g.ship, g.aliens); hit {
		g.shipHit()
		return
	}

	g.checkAliensBottom()
}

// checkFleetEdges drops and reverses the fleet if any alien reached an edge.
func (g *Game) checkFleetEdges() {
	for _, a := range g.aliens.Sprites() {
		if a.CheckEdges(g.screen) {
			g.changeFleetDirection()
			break
		}
	}
}

// changeFleetDirection drops the entire fleet and reverses its direction.
func (g *Game) changeFleetDirection() {
	g.aliens.Each(func(a *object.Alien) {
		a.Drop(g.settings.FleetDropSpeed)
	})
	g.settings.ReverseFleet()
}

// checkAliensBottom treats an alien reaching the bottom like a ship hit.
func (g *Game) checkAliensBottom() {
	for _, a := range g.aliens.Sprites() {
		if a.Rect.Bottom() >= g.screen.Bottom() {
			g.shipHit()
			break
		}
	}
}

// shipHit loses a ship. With ships remaining the board is reset and the
// game pauses briefly; otherwise the game ends.
func (g *Game) shipHit() {
	left := g.stats.LoseShip()
	g.notify(Notice{Type: NoticeShipHit, ShipsLeft: left, Score: g.stats.Score, Level: g.stats.Level})

	if left > 0 {
		g.aliens.Empty()
		g.bullets.Empty()

		g.createFleet()
		g.ship.Center()

		g.pause(g.pauseFor)
		return
	}

	g.stats.Active = false
	g.pointerVisible = true
	g.notify(Notice{Type: NoticeGameOver, Score: g.stats.Score, Level: g.stats.Level})
}

// createFleet fills the alien group with a fresh grid.
func (g *Game) createFleet() {
	g.aliens.Add(object.NewFleet(g.assets.Alien, g.screen, g.ship.Rect.H)...)
}

func (g *Game) notify(n Notice) {
	g.notices = append(g.notices, n)
}

// Notices returns the notices raised since the last call and clears them.
func (g *Game) Notices() []Notice {
	out := g.notices
	g.notices = nil
	return out
}

// Active reports whether a game is being played.
func (g *Game) Active() bool { return g.stats.Active }

// PointerVisible reports whether the pointer cursor should be shown.
func (g *Game) PointerVisible() bool { return g.pointerVisible }

// Settings returns the live settings.
func (g *Game) Settings() *settings.Settings { return g.settings }

// Stats returns the live statistics.
func (g *Game) Stats() *stats.GameStats { return g.stats }

// Ship returns the player's ship.
func (g *Game) Ship() *object.Ship { return g.ship }

// Bullets returns the live bullets.
func (g *Game) Bullets() *object.Group[*object.Bullet] { return g.bullets }

// Aliens returns the live fleet.
func (g *Game) Aliens() *object.Group[*object.Alien] { return g.aliens }

// PlayButton returns the title screen button.
func (g *Game) PlayButton() *object.Button { return g.play }

// Screen returns the screen rectangle.
func (g *Game) Screen() physics.Rect { return g.screen }
