package puzzle

// Rect is an axis-aligned rectangle in frame pixel coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether (px, py) lies strictly inside r. Points on any
// edge are outside, so two rectangles sharing an edge never both contain it.
func (r Rect) Contains(px, py float64) bool {
	return px > r.X && px < r.X+r.W && py > r.Y && py < r.Y+r.H
}
