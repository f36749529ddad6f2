package mapdata

import (
	"errors"
	"testing"
)

func TestLoadTiles(t *testing.T) {
	tiles, err := LoadTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}

	if len(tiles) != KindCount {
		t.Errorf("Expected %d tiles, got %d", KindCount, len(tiles))
	}

	for i, tile := range tiles {
		if tile.ID != TileKind(i).String() {
			t.Errorf("Tile %d: expected id %q, got %q", i, TileKind(i), tile.ID)
		}
	}
}

func TestLoadTilesColorsResolved(t *testing.T) {
	tiles, err := LoadTiles()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}

	if got := tiles[KindSea].RGB(); got != (RGB{R: 91, G: 119, B: 234}) {
		t.Errorf("LoadTiles()[sea].RGB() = %v, want (91,119,234)", got)
	}
	for _, tile := range tiles {
		if tile.RGB() != MustParseHexColor(tile.Color) {
			t.Errorf("Tile %q: RGB() = %v, color %s", tile.ID, tile.RGB(), tile.Color)
		}
	}
}

func TestTileDefRGBWithoutDictionary(t *testing.T) {
	def := TileDef{ID: "plain", Color: "#79C300", Symbol: "．"}
	if got := def.RGB(); got != (RGB{R: 121, G: 195, B: 0}) {
		t.Errorf("RGB() = %v, want (121,195,0)", got)
	}
}

func TestDictionaryColorsUnique(t *testing.T) {
	dict := MustLoadDictionary()

	seen := make(map[RGB]string)
	for _, tile := range dict.All() {
		if prev, ok := seen[tile.RGB()]; ok {
			t.Errorf("Tiles %q and %q share color %s", prev, tile.ID, tile.RGB())
		}
		seen[tile.RGB()] = tile.ID
	}
}

func TestMatchColorRoundTrip(t *testing.T) {
	dict := MustLoadDictionary()

	for i, tile := range dict.All() {
		kind, ok := dict.MatchColor(tile.RGB())
		if !ok {
			t.Errorf("MatchColor(%s) for %q: no match", tile.RGB(), tile.ID)
			continue
		}
		if kind != TileKind(i) {
			t.Errorf("MatchColor(%s) = %v, want %v", tile.RGB(), kind, TileKind(i))
		}
	}
}

func TestMatchColorKnownValues(t *testing.T) {
	dict := MustLoadDictionary()

	tests := []struct {
		color RGB
		kind  TileKind
		ok    bool
	}{
		{RGB{91, 119, 234}, KindSea, true},
		{RGB{90, 119, 234}, KindWave, true},
		{RGB{121, 195, 0}, KindPlain, true},
		{RGB{50, 132, 5}, KindForest, true},
		{RGB{100, 109, 81}, KindStairs, true},
		{RGB{0, 0, 0}, 0, false},
		{RGB{255, 255, 255}, 0, false},
		{RGB{92, 119, 234}, 0, false}, // one off from sea
	}

	for _, tt := range tests {
		kind, ok := dict.MatchColor(tt.color)
		if ok != tt.ok {
			t.Errorf("MatchColor(%s) ok = %v, want %v", tt.color, ok, tt.ok)
			continue
		}
		if ok && kind != tt.kind {
			t.Errorf("MatchColor(%s) = %v, want %v", tt.color, kind, tt.kind)
		}
	}
}

func TestDictionaryLookups(t *testing.T) {
	dict := MustLoadDictionary()

	if dict.Count() != KindCount {
		t.Errorf("Expected %d tiles, got %d", KindCount, dict.Count())
	}

	kind, ok := dict.GetByID("forest")
	if !ok || kind != KindForest {
		t.Errorf("GetByID(forest) = %v, %v", kind, ok)
	}
	if _, ok := dict.GetByID("lava"); ok {
		t.Error("GetByID(lava) should not be found")
	}

	if dict.Symbol(KindPlain) != '．' {
		t.Errorf("Expected plain symbol '．', got %q", dict.Symbol(KindPlain))
	}
	if dict.Symbol(TileKind(KindCount)) != '?' {
		t.Errorf("Expected '?' for out of range kind, got %q", dict.Symbol(TileKind(KindCount)))
	}
	if dict.At(-1) != nil {
		t.Error("At(-1) should be nil")
	}

	if sea := dict.At(KindSea); sea == nil || sea.Walkable {
		t.Error("Sea should exist and not be walkable")
	}
	if plain := dict.At(KindPlain); plain == nil || !plain.Walkable {
		t.Error("Plain should exist and be walkable")
	}
}

func TestNewDictionaryValidation(t *testing.T) {
	tests := []struct {
		name string
		defs []TileDef
		want error
	}{
		{"empty", nil, ErrEmptyDictionary},
		{"duplicate color", []TileDef{
			{ID: "a", Color: "#010203", Symbol: "a"},
			{ID: "b", Color: "010203", Symbol: "b"},
		}, ErrDuplicateColor},
		{"duplicate id", []TileDef{
			{ID: "a", Color: "#010203", Symbol: "a"},
			{ID: "a", Color: "#010204", Symbol: "b"},
		}, ErrDuplicateID},
		{"long symbol", []TileDef{
			{ID: "a", Color: "#010203", Symbol: "ab"},
		}, ErrInvalidSymbol},
		{"empty symbol", []TileDef{
			{ID: "a", Color: "#010203"},
		}, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDictionary(tt.defs)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewDictionary() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewDictionary([]TileDef{{ID: "a", Color: "#XYZ000", Symbol: "a"}}); err == nil {
		t.Error("Expected error for unparsable color")
	}
}

func TestDictionaryIsolatedFromInput(t *testing.T) {
	defs := []TileDef{{ID: "a", Color: "#010203", Symbol: "a"}}
	dict, err := NewDictionary(defs)
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}

	defs[0].Symbol = "z"
	if dict.Symbol(0) != 'a' {
		t.Errorf("Dictionary observed caller mutation: %q", dict.Symbol(0))
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
		want  RGB
	}{
		{"#FF0000", true, RGB{255, 0, 0}},
		{"FF0000", true, RGB{255, 0, 0}},
		{"#5B77EA", true, RGB{91, 119, 234}},
		{"#000000", true, RGB{}},
		{"invalid", false, RGB{}},
		{"#FFF", false, RGB{}}, // Too short
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRGBConversions(t *testing.T) {
	c := RGB{91, 119, 234}
	if c.Hex() != "#5B77EA" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	r, g, b := c.TCellColor().RGB()
	if r != 91 || g != 119 || b != 234 {
		t.Errorf("TCellColor().RGB() = (%d,%d,%d)", r, g, b)
	}
}
