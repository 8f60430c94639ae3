package component

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects uses open intervals: boxes that only touch along an edge do not
// overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersects reports whether the boxes of two bodies overlap.
func Intersects(a, b Body) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Body().Rect().Intersects(b.Body().Rect())
}
