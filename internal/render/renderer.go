// Package render writes classified grids as rows of tile symbols.
package render

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/chipmap/internal/mapdata"
	"github.com/samdwyer/chipmap/internal/world"
)

const ansiReset = "\x1b[0m"

// Renderer handles writing grids to a text stream.
type Renderer struct {
	out  io.Writer
	dict *mapdata.Dictionary

	// Color wraps every symbol in a 24-bit foreground escape using the tile color.
	Color bool
}

// NewRenderer creates a new renderer writing to out.
func NewRenderer(out io.Writer, dict *mapdata.Dictionary) *Renderer {
	return &Renderer{out: out, dict: dict}
}

// Render writes one line per grid row x, one symbol per cell y.
func (r *Renderer) Render(grid *world.Grid) error {
	w := bufio.NewWriter(r.out)

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			kind := grid.Cells[x][y]
			if r.Color {
				writeStyled(w, r.dict.Symbol(kind), r.tileColor(kind))
			} else {
				w.WriteRune(r.dict.Symbol(kind))
			}
		}
		if r.Color {
			w.WriteString(ansiReset)
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}

// tileColor returns the foreground color for a tile kind.
func (r *Renderer) tileColor(kind mapdata.TileKind) tcell.Color {
	tile := r.dict.At(kind)
	if tile == nil {
		return tcell.ColorWhite
	}
	return tile.RGB().TCellColor()
}

func writeStyled(w *bufio.Writer, ch rune, color tcell.Color) {
	red, green, blue := color.RGB()
	fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm%c", red, green, blue, ch)
}

// RenderLegend writes one line per tile: symbol, id, walkability and the
// number of cells holding it. Tiles absent from counts show 0.
func (r *Renderer) RenderLegend(counts map[mapdata.TileKind]int) error {
	w := bufio.NewWriter(r.out)

	idWidth := 0
	for _, tile := range r.dict.All() {
		idWidth = max(idWidth, runewidth.StringWidth(tile.ID))
	}

	for i, tile := range r.dict.All() {
		walk := "blocked"
		if tile.Walkable {
			walk = "walkable"
		}
		fmt.Fprintf(w, "%s %s %-8s %d\n",
			runewidth.FillRight(tile.Symbol, 2),
			runewidth.FillRight(tile.ID, idWidth),
			walk,
			counts[mapdata.TileKind(i)])
	}

	return w.Flush()
}

// RenderUnmatched writes the coordinates of pixels that took the default tile,
// sorted by position.
func (r *Renderer) RenderUnmatched(pixels []world.UnmatchedPixel) error {
	sorted := make([]world.UnmatchedPixel, len(pixels))
	copy(sorted, pixels)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	w := bufio.NewWriter(r.out)
	for _, p := range sorted {
		fmt.Fprintf(w, "unmatched %d,%d %s\n", p.X, p.Y, p.Color.Hex())
	}
	return w.Flush()
}
