package object

import (
	"image/color"

	"github.com/tomz197/alien-invasion/internal/physics"
)

// Play button geometry and colors.
const (
	ButtonWidth  = 200
	ButtonHeight = 50
)

var (
	ButtonColor     = color.RGBA{0, 255, 0, 255}
	ButtonTextColor = color.RGBA{255, 255, 255, 255}
)

// Button is a static labelled rectangle centered on the screen.
type Button struct {
	Rect      physics.Rect
	Label     string
	Color     color.RGBA
	TextColor color.RGBA
}

// NewButton creates a button centered on the screen.
func NewButton(screen physics.Rect, label string) *Button {
	r := physics.NewRect(0, 0, ButtonWidth, ButtonHeight)
	r.SetCenter(screen.CenterX(), screen.CenterY())
	return &Button{
		Rect:      r,
		Label:     label,
		Color:     ButtonColor,
		TextColor: ButtonTextColor,
	}
}

// Clicked reports whether the point (x, y) is inside the button.
func (b *Button) Clicked(x, y int) bool {
	return b.Rect.CollidePoint(x, y)
}
