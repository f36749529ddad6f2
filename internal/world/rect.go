package world

// Rect is a rectangular window over a source image.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the window
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Covers returns true if other lies entirely inside r.
func (r Rect) Covers(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}
