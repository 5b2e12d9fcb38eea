package layout

// Rect is an axis-aligned rectangle in canvas-local units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the half-open rectangle
// [X, X+W) x [Y, Y+H).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }
