package mapdata

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyDictionary is returned when no tile definitions are supplied.
	ErrEmptyDictionary = errors.New("no tile definitions")
	// ErrDuplicateColor is returned when two tiles share a matching color.
	ErrDuplicateColor = errors.New("duplicate tile color")
	// ErrDuplicateID is returned when two tiles share an id.
	ErrDuplicateID = errors.New("duplicate tile id")
	// ErrInvalidSymbol is returned when a tile symbol is not exactly one rune.
	ErrInvalidSymbol = errors.New("tile symbol must be a single character")
)

// Dictionary is the ordered, immutable catalog of tile definitions.
// Indices [0, Count()) are the TileKind values stored in a grid.
type Dictionary struct {
	tiles   []TileDef
	byID    map[string]TileKind
	byColor map[RGB]TileKind
}

// NewDictionary validates the definitions and builds a dictionary.
// The slice is copied; later changes to it are not observed.
func NewDictionary(defs []TileDef) (*Dictionary, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyDictionary
	}

	d := &Dictionary{
		tiles:   make([]TileDef, len(defs)),
		byID:    make(map[string]TileKind, len(defs)),
		byColor: make(map[RGB]TileKind, len(defs)),
	}
	copy(d.tiles, defs)

	for i := range d.tiles {
		t := &d.tiles[i]
		kind := TileKind(i)

		if t.ID == "" {
			return nil, fmt.Errorf("tile %d: missing id", i)
		}
		if prev, ok := d.byID[t.ID]; ok {
			return nil, fmt.Errorf("tile %q at %d and %d: %w", t.ID, prev, i, ErrDuplicateID)
		}
		if utf8.RuneCountInString(t.Symbol) != 1 {
			return nil, fmt.Errorf("tile %q symbol %q: %w", t.ID, t.Symbol, ErrInvalidSymbol)
		}

		if err := t.parseColor(); err != nil {
			return nil, err
		}
		rgb := t.rgb
		if prev, ok := d.byColor[rgb]; ok {
			return nil, fmt.Errorf("tiles %q and %q share color %s: %w",
				d.tiles[prev].ID, t.ID, rgb.Hex(), ErrDuplicateColor)
		}

		d.byID[t.ID] = kind
		d.byColor[rgb] = kind
	}

	return d, nil
}

// LoadDictionary builds the standard dictionary from the embedded tiles.json.
// The data must list exactly the TileKind constants, in order.
func LoadDictionary() (*Dictionary, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) != KindCount {
		return nil, fmt.Errorf("tiles.json has %d tiles, expected %d", len(tiles), KindCount)
	}
	for i := range tiles {
		if tiles[i].ID != TileKind(i).String() {
			return nil, fmt.Errorf("tiles.json entry %d is %q, expected %q", i, tiles[i].ID, TileKind(i))
		}
	}
	return NewDictionary(tiles)
}

// MustLoadDictionary loads the standard dictionary, panicking on error.
func MustLoadDictionary() *Dictionary {
	dict, err := LoadDictionary()
	if err != nil {
		panic(err)
	}
	return dict
}

// MatchColor returns the kind whose color exactly equals c.
// ok is false when no tile matches; callers decide what that means.
func (d *Dictionary) MatchColor(c RGB) (kind TileKind, ok bool) {
	kind, ok = d.byColor[c]
	return kind, ok
}

// At returns the definition for kind, or nil if it is out of range.
func (d *Dictionary) At(kind TileKind) *TileDef {
	if !d.Valid(kind) {
		return nil
	}
	return &d.tiles[kind]
}

// Valid reports whether kind indexes a definition in this dictionary.
func (d *Dictionary) Valid(kind TileKind) bool {
	return kind >= 0 && int(kind) < len(d.tiles)
}

// Symbol returns the display rune for kind, or '?' if it is out of range.
func (d *Dictionary) Symbol(kind TileKind) rune {
	if t := d.At(kind); t != nil {
		return t.SymbolRune()
	}
	return '?'
}

// GetByID returns the kind with the given id.
func (d *Dictionary) GetByID(id string) (TileKind, bool) {
	kind, ok := d.byID[id]
	return kind, ok
}

// All returns a copy of all tile definitions in index order.
func (d *Dictionary) All() []TileDef {
	out := make([]TileDef, len(d.tiles))
	copy(out, d.tiles)
	return out
}

// Count returns the number of tiles in the dictionary.
func (d *Dictionary) Count() int {
	return len(d.tiles)
}
