// Package world builds terrain grids by classifying image pixels against a
// tile dictionary.
package world

import "github.com/samdwyer/chipmap/internal/mapdata"

// Pixels is a decoded image addressed from the origin.
// RGBAt is valid for x in [0, width) and y in [0, height).
type Pixels interface {
	Size() (width, height int)
	RGBAt(x, y int) mapdata.RGB
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// UnmatchedPixel is a source pixel whose color matched no tile.
type UnmatchedPixel struct {
	Point
	Color mapdata.RGB
}
