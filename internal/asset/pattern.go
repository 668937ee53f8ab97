package asset

import "image/color"

// AlienColor is the tint of the built-in alien sprite.
var AlienColor = color.RGBA{120, 230, 90, 255}

// alienPattern is an 11x8 invader; each cell becomes alienScale pixels.
var alienPattern = []string{
	"..#.....#..",
	"...#...#...",
	"..#######..",
	".##.###.##.",
	"###########",
	"#.#######.#",
	"#.#.....#.#",
	"...##.##...",
}

const alienScale = 5

// Alien returns the built-in alien sprite (55x40 pixels).
func Alien() *Bitmap {
	return FromPattern(alienPattern, alienScale, AlienColor)
}

// FromPattern builds a bitmap from text rows where '#' marks a lit cell.
// Each cell is drawn as a scale x scale block; other runes are transparent.
func FromPattern(rows []string, scale int, c color.RGBA) *Bitmap {
	if scale < 1 {
		scale = 1
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	b := NewBitmap(width*scale, len(rows)*scale)
	for cy, row := range rows {
		for cx := 0; cx < len(row); cx++ {
			if row[cx] != '#' {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					b.Set(cx*scale+dx, cy*scale+dy, c)
				}
			}
		}
	}
	return b
}
