package game

import (
	"github.com/tomz197/alien-invasion/internal/object"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// Draw renders the current frame: background, ship, bullets, aliens, the
// score overlay and, on the title screen, the play button.
func (g *Game) Draw(s Surface) error {
	s.Fill(g.settings.BgColor)

	s.Blit(g.ship.Image(), g.ship.Rect)
	g.bullets.Each(func(b *object.Bullet) {
		s.Blit(b.Image(), b.Rect)
	})
	g.aliens.Each(func(a *object.Alien) {
		s.Blit(a.Image(), a.Rect)
	})

	g.drawScoreboard(s)

	if !g.stats.Active {
		r := g.play.Rect
		s.FillRect(r, g.play.Color)
		s.DrawText(r.CenterX(), r.CenterY(), g.play.Label, stats.AnchorCenter, g.play.TextColor)
	}

	s.SetPointerVisible(g.pointerVisible)
	return s.Present()
}

// drawScoreboard draws the score labels and one small ship per life left.
func (g *Game) drawScoreboard(s Surface) {
	for _, l := range g.board.Labels(g.stats) {
		s.DrawText(l.X, l.Y, l.Text, l.Anchor, l.Color)
	}
	for _, r := range g.board.Ships(g.stats) {
		s.Blit(g.assets.Ship, r)
	}
}
