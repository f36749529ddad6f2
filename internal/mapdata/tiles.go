package mapdata

import (
	"fmt"
	"unicode/utf8"
)

// TileKind identifies a terrain tile by its position in the dictionary.
type TileKind int

// The standard palette. Order matches tiles.json and defines dictionary indices.
const (
	KindSea TileKind = iota
	KindWave
	KindPlain
	KindForest
	KindMountain
	KindRock
	KindWall
	KindDesert
	KindPoison
	KindBridge
	KindCastle
	KindTown
	KindDungeon
	KindShrine
	KindStairs

	// KindCount is the number of kinds in the standard palette.
	KindCount int = iota
)

var kindIDs = [KindCount]string{
	"sea", "wave", "plain", "forest", "mountain", "rock", "wall", "desert",
	"poison", "bridge", "castle", "town", "dungeon", "shrine", "stairs",
}

// String returns the data id of the kind, e.g. "forest".
func (k TileKind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "unknown"
	}
	return kindIDs[k]
}

// TileDef defines a terrain tile loaded from JSON.
type TileDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "forest")
	Name     string `json:"name"`     // Display name (e.g., "Forest")
	Color    string `json:"color"`    // Hex color code, unique across the palette
	Symbol   string `json:"symbol"`   // Single character for rendering (e.g., "木")
	Walkable bool   `json:"walkable"` // Traversability, reserved for gameplay use

	rgb    RGB
	parsed bool
}

// SymbolRune returns the symbol as a rune for rendering.
func (t *TileDef) SymbolRune() rune {
	r, size := utf8.DecodeRuneInString(t.Symbol)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// RGB returns the matching color. Definitions built by hand are parsed
// on demand; an unparsable Color yields black.
func (t *TileDef) RGB() RGB {
	if t.parsed {
		return t.rgb
	}
	c, _ := ParseHexColor(t.Color)
	return c
}

// parseColor resolves Color into the cached matching key.
func (t *TileDef) parseColor() error {
	rgb, err := ParseHexColor(t.Color)
	if err != nil {
		return fmt.Errorf("tile %q: %w", t.ID, err)
	}
	t.rgb = rgb
	t.parsed = true
	return nil
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Tiles {
		if err := file.Tiles[i].parseColor(); err != nil {
			return nil, err
		}
	}
	return file.Tiles, nil
}
