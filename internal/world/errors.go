package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch is wrapped by DimensionError.
	ErrDimensionMismatch = errors.New("image dimensions do not match map size")
	// ErrUnmatchedColor is wrapped by UnmatchedError.
	ErrUnmatchedColor = errors.New("pixel color matches no tile")
)

// DimensionError reports a source image whose size cannot produce the map.
type DimensionError struct {
	Width, Height         int // Source image size
	WantWidth, WantHeight int // Required map size
	Crop                  bool
}

func (e *DimensionError) Error() string {
	rel := "exactly"
	if e.Crop {
		rel = "at least"
	}
	return fmt.Sprintf("image is %dx%d, need %s %dx%d",
		e.Width, e.Height, rel, e.WantWidth, e.WantHeight)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// maxReported caps how many pixels an UnmatchedError prints.
const maxReported = 5

// UnmatchedError reports every pixel that matched no tile.
type UnmatchedError struct {
	Pixels []UnmatchedPixel
}

func (e *UnmatchedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d pixel(s) match no tile:", len(e.Pixels))
	for i, p := range e.Pixels {
		if i == maxReported {
			fmt.Fprintf(&b, " and %d more", len(e.Pixels)-maxReported)
			break
		}
		fmt.Fprintf(&b, " (%d,%d)=%s", p.X, p.Y, p.Color.Hex())
	}
	return b.String()
}

func (e *UnmatchedError) Unwrap() error {
	return ErrUnmatchedColor
}
