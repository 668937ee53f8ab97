// Package physics provides collision detection on axis-aligned rectangles.
package physics

// Rect is an axis-aligned rectangle in integer screen coordinates.
// X and Y are the top-left corner; the right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// MidTop returns the point at the middle of the top edge.
func (r Rect) MidTop() (x, y int) { return r.CenterX(), r.Y }

// MidBottom returns the point at the middle of the bottom edge.
func (r Rect) MidBottom() (x, y int) { return r.CenterX(), r.Bottom() }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// SetMidTop moves the rectangle so its top edge is centered on (x, y).
func (r *Rect) SetMidTop(x, y int) {
	r.X = x - r.W/2
	r.Y = y
}

// SetMidBottom moves the rectangle so its bottom edge is centered on (x, y).
func (r *Rect) SetMidBottom(x, y int) {
	r.X = x - r.W/2
	r.Y = y - r.H
}

// SetCenter moves the rectangle so it is centered on (x, y).
func (r *Rect) SetCenter(x, y int) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// Colliderect reports whether two rectangles overlap.
// Rectangles that only share an edge do not collide, and an empty
// rectangle never collides with anything.
func (r Rect) Colliderect(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// CollidePoint reports whether the point lies inside the rectangle.
func (r Rect) CollidePoint(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
