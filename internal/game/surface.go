package game

import (
	"image/color"

	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
	"github.com/tomz197/alien-invasion/internal/stats"
)

// Surface is the drawing target of a frame. Coordinates are in screen
// pixels of the game settings; implementations scale as needed.
type Surface interface {
	// Fill clears the whole surface to a color.
	Fill(c color.RGBA)
	// Blit draws an image with its top-left corner at r, scaled to r's size.
	Blit(img *asset.Bitmap, r physics.Rect)
	// FillRect draws a solid rectangle.
	FillRect(r physics.Rect, c color.RGBA)
	// DrawText draws a line of text vertically centered on y, anchored at x.
	DrawText(x, y int, text string, anchor stats.Anchor, c color.RGBA)
	// SetPointerVisible shows or hides the pointer cursor.
	SetPointerVisible(visible bool)
	// Present makes the frame visible.
	Present() error
}
