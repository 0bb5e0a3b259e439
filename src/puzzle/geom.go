package puzzle

// Point is a pixel position in window coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle (origin + size) in window coordinates.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}
