package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/game"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// textScale enlarges the 7x13 bitmap font.
const textScale = 2

// surface draws onto the ebiten screen image of the current frame.
type surface struct {
	target  *ebiten.Image
	images  map[*asset.Bitmap]*ebiten.Image
	face    *text.GoXFace
	pointer bool
	applied bool
}

var _ game.Surface = (*surface)(nil)

func newSurface() *surface {
	return &surface{
		images: make(map[*asset.Bitmap]*ebiten.Image),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// image returns the GPU image for a bitmap, uploading it on first use.
func (s *surface) image(b *asset.Bitmap) *ebiten.Image {
	img, ok := s.images[b]
	if !ok {
		img = ebiten.NewImageFromImage(b.Image())
		s.images[b] = img
	}
	return img
}

func (s *surface) Fill(c color.RGBA) {
	s.target.Fill(c)
}

func (s *surface) Blit(b *asset.Bitmap, r physics.Rect) {
	if b == nil || b.W == 0 || b.H == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.W), float64(r.H)/float64(b.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	s.target.DrawImage(s.image(b), op)
}

func (s *surface) FillRect(r physics.Rect, c color.RGBA) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *surface) DrawText(x, y int, str string, anchor stats.Anchor, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.SecondaryAlign = text.AlignCenter
	switch anchor {
	case stats.AnchorCenter:
		op.PrimaryAlign = text.AlignCenter
	case stats.AnchorRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.target, str, s.face, op)
}

func (s *surface) SetPointerVisible(visible bool) {
	if s.applied && visible == s.pointer {
		return
	}
	s.pointer = visible
	s.applied = true
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// Present does nothing: ebiten shows the screen image after Draw returns.
func (s *surface) Present() error {
	return nil
}
