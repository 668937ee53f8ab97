package object

import (
	"github.com/tomz197/alien-invasion/internal/asset"
	"github.com/tomz197/alien-invasion/internal/physics"
)

// FleetLayout returns how many aliens fit per row and how many rows fit,
// leaving one alien width of margin on each side and room above the ship.
func FleetLayout(screen physics.Rect, alienW, alienH, shipH int) (cols, rows int) {
	if alienW <= 0 || alienH <= 0 {
		return 0, 0
	}
	availableX := screen.W - 2*alienW
	cols = availableX / (2 * alienW)

	availableY := screen.H - 3*alienH - shipH
	rows = availableY / (2 * alienH)

	return max(cols, 0), max(rows, 0)
}

// NewFleet builds a full grid of aliens. Columns and rows are spaced two
// alien sizes apart, starting one alien size in from the top-left corner.
func NewFleet(img *asset.Bitmap, screen physics.Rect, shipH int) []*Alien {
	size := sizeOf(img)
	cols, rows := FleetLayout(screen, size.W, size.H, shipH)

	fleet := make([]*Alien, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := size.W + 2*size.W*col
			y := size.H + 2*size.H*row
			fleet = append(fleet, NewAlien(img, float64(x), float64(y)))
		}
	}
	return fleet
}
