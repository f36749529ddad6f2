package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chipmap/internal/mapdata"
	"github.com/samdwyer/chipmap/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 136
	DefaultHeight = 136
)

// BuildOptions controls grid construction.
type BuildOptions struct {
	Width  int // Required map width; DefaultWidth when zero
	Height int // Required map height; DefaultHeight when zero

	// Crop accepts a larger image and reads only its top-left window.
	Crop bool

	Unmatched UnmatchedPolicy
	// Default is stored for unmatched pixels under UnmatchedDefault.
	Default mapdata.TileKind
}

func (o BuildOptions) size() (int, int) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Grid is a classified terrain map. Cells are indexed Cells[x][y] and every
// cell holds a valid index into the dictionary it was built with.
type Grid struct {
	Width  int
	Height int
	Cells  [][]mapdata.TileKind

	// Unmatched lists pixels that took the default kind, in scan order.
	Unmatched []UnmatchedPixel
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid(width, height int, fill mapdata.TileKind) *Grid {
	cells := make([][]mapdata.TileKind, width)
	for x := range cells {
		cells[x] = make([]mapdata.TileKind, height)
		for y := range cells[x] {
			cells[x][y] = fill
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Build classifies every pixel of px against dict and returns the grid.
// No grid is returned on error.
func Build(ctx context.Context, px Pixels, dict *mapdata.Dictionary, opts BuildOptions) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.build")
	defer span.End()

	startTime := time.Now()

	width, height := opts.size()
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	if opts.Unmatched == UnmatchedDefault && !dict.Valid(opts.Default) {
		return nil, fmt.Errorf("default tile %d is not in the dictionary", opts.Default)
	}

	srcW, srcH := px.Size()
	src := Rect{Width: srcW, Height: srcH}
	want := Rect{Width: width, Height: height}
	if (opts.Crop && !src.Covers(want)) || (!opts.Crop && src != want) {
		err := &DimensionError{
			Width: srcW, Height: srcH,
			WantWidth: width, WantHeight: height,
			Crop: opts.Crop,
		}
		span.RecordError(err)
		return nil, err
	}

	grid := NewGrid(width, height, opts.Default)
	var unmatched []UnmatchedPixel

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := px.RGBAt(x, y)
			kind, ok := dict.MatchColor(c)
			if !ok {
				unmatched = append(unmatched, UnmatchedPixel{Point: Point{X: x, Y: y}, Color: c})
				continue
			}
			grid.Cells[x][y] = kind
		}
	}

	span.SetAttributes(
		attribute.Int("grid.width", width),
		attribute.Int("grid.height", height),
		attribute.Int("grid.unmatched", len(unmatched)),
		attribute.String("grid.unmatched_policy", opts.Unmatched.String()),
		attribute.Int64("grid.build_ms", time.Since(startTime).Milliseconds()),
	)

	if len(unmatched) > 0 && opts.Unmatched != UnmatchedDefault {
		err := &UnmatchedError{Pixels: unmatched}
		span.RecordError(err)
		return nil, err
	}

	grid.Unmatched = unmatched
	return grid, nil
}

// Bounds returns the grid area anchored at the origin.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.Width, Height: g.Height}
}

// At returns the kind at the given position.
func (g *Grid) At(x, y int) (mapdata.TileKind, bool) {
	if !g.Bounds().Contains(x, y) {
		return 0, false
	}
	return g.Cells[x][y], true
}

// IsWalkable returns true if the given position can be walked on.
func (g *Grid) IsWalkable(dict *mapdata.Dictionary, x, y int) bool {
	kind, ok := g.At(x, y)
	if !ok {
		return false
	}
	tile := dict.At(kind)
	return tile != nil && tile.Walkable
}

// Counts returns how many cells hold each kind.
func (g *Grid) Counts() map[mapdata.TileKind]int {
	counts := make(map[mapdata.TileKind]int)
	for x := range g.Cells {
		for _, kind := range g.Cells[x] {
			counts[kind]++
		}
	}
	return counts
}
