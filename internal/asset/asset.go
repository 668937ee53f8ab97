// Package asset loads and builds the bitmaps drawn by the game.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// File names of the bitmaps loaded at startup.
const (
	ShipFile   = "ship.bmp"
	BulletFile = "bullet.bmp"
)

// Bitmap is a decoded image held as straight RGBA pixels, row-major.
type Bitmap struct {
	W, H int
	Pix  []color.RGBA
}

// NewBitmap creates a transparent bitmap of the given size.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// At returns the pixel at (x, y), or a transparent pixel outside the bitmap.
func (b *Bitmap) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return color.RGBA{}
	}
	return b.Pix[y*b.W+x]
}

// Set sets the pixel at (x, y). Out of range writes are ignored.
func (b *Bitmap) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.Pix[y*b.W+x] = c
}

// Image converts the bitmap to a standard library image.
func (b *Bitmap) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			img.SetNRGBA(x, y, color.NRGBA(b.At(x, y)))
		}
	}
	return img
}

// FromImage copies any image into a bitmap.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			b.Pix[y*b.W+x] = color.RGBA(c)
		}
	}
	return b
}

// Load decodes the .bmp file name from dir.
func Load(dir, name string) (*Bitmap, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// Set is the group of sprites used by a game session.
type Set struct {
	Ship   *Bitmap
	Bullet *Bitmap
	Alien  *Bitmap
}

// LoadSet loads the ship and bullet bitmaps from dir and builds the alien.
// Every missing file is reported.
func LoadSet(dir string) (*Set, error) {
	ship, shipErr := Load(dir, ShipFile)
	bullet, bulletErr := Load(dir, BulletFile)
	if err := errors.Join(shipErr, bulletErr); err != nil {
		return nil, err
	}
	return &Set{
		Ship:   ship,
		Bullet: bullet,
		Alien:  Alien(),
	}, nil
}
