package asset

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeBMP(t *testing.T, dir, name string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yellow := color.RGBA{249, 249, 6, 255}
	writeBMP(t, dir, BulletFile, 3, 15, yellow)

	b, err := Load(dir, BulletFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.W != 3 || b.H != 15 {
		t.Fatalf("size = %dx%d, want 3x15", b.W, b.H)
	}
	if got := b.At(1, 7); got != yellow {
		t.Errorf("At(1,7) = %v, want %v", got, yellow)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir(), ShipFile)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadNotABitmap(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ShipFile), []byte("not a bitmap"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir, ShipFile); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	writeBMP(t, dir, ShipFile, 60, 48, color.RGBA{200, 200, 200, 255})
	writeBMP(t, dir, BulletFile, 3, 15, color.RGBA{249, 249, 6, 255})

	set, err := LoadSet(dir)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	if set.Ship.W != 60 || set.Bullet.H != 15 {
		t.Errorf("unexpected sizes: ship %dx%d, bullet %dx%d", set.Ship.W, set.Ship.H, set.Bullet.W, set.Bullet.H)
	}
	if set.Alien == nil || set.Alien.W != 55 || set.Alien.H != 40 {
		t.Errorf("alien sprite = %+v, want 55x40", set.Alien)
	}
}

func TestLoadSetMissingBullet(t *testing.T) {
	dir := t.TempDir()
	writeBMP(t, dir, ShipFile, 60, 48, color.RGBA{200, 200, 200, 255})

	if _, err := LoadSet(dir); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSet error = %v, want fs.ErrNotExist", err)
	}
}

func TestRepoImagesLoad(t *testing.T) {
	if _, err := LoadSet(filepath.Join("..", "..", "images")); err != nil {
		t.Fatalf("shipped images do not load: %v", err)
	}
}

func TestFromPattern(t *testing.T) {
	c := color.RGBA{1, 2, 3, 255}
	b := FromPattern([]string{"#.", ".#"}, 2, c)
	if b.W != 4 || b.H != 4 {
		t.Fatalf("size = %dx%d, want 4x4", b.W, b.H)
	}
	if b.At(1, 1) != c || b.At(3, 3) != c {
		t.Error("lit cells not filled")
	}
	if b.At(2, 0).A != 0 {
		t.Error("dot cells must stay transparent")
	}
}

func TestImageRoundTrip(t *testing.T) {
	b := Alien()
	back := FromImage(b.Image())
	for i := range b.Pix {
		if b.Pix[i] != back.Pix[i] {
			t.Fatalf("pixel %d changed: %v -> %v", i, b.Pix[i], back.Pix[i])
		}
	}
}
