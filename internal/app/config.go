package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/chipmap/internal/world"
)

// DefaultImagePath is read when no image is configured.
const DefaultImagePath = "assets/map.bmp"

// Config holds conversion options.
type Config struct {
	// ImagePath is the source bitmap.
	ImagePath string

	// Width and Height are the required map size in cells (one cell per pixel).
	Width  int
	Height int

	// Crop accepts a larger image and reads only its top-left window.
	Crop bool

	// Unmatched selects what happens to pixels whose color matches no tile.
	Unmatched world.UnmatchedPolicy
	// DefaultTile is the tile id used for unmatched pixels under the default policy.
	DefaultTile string

	// Color emits 24-bit ANSI colors around every symbol.
	Color bool
	// Legend appends a tile legend with cell counts after the map.
	Legend bool
	// Telemetry exports traces over OTLP.
	Telemetry bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		ImagePath:   DefaultImagePath,
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Unmatched:   world.UnmatchedFail,
		DefaultTile: "sea",
	}
}

// ConfigFromEnv overlays CHIPMAP_* environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup("CHIPMAP_IMAGE"); ok && v != "" {
		cfg.ImagePath = v
	}
	if v, ok := lookup("CHIPMAP_DEFAULT_TILE"); ok && v != "" {
		cfg.DefaultTile = v
	}

	if v, ok := lookup("CHIPMAP_UNMATCHED"); ok {
		policy, err := world.ParseUnmatchedPolicy(v)
		if err != nil {
			return cfg, fmt.Errorf("CHIPMAP_UNMATCHED: %w", err)
		}
		cfg.Unmatched = policy
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CHIPMAP_WIDTH", &cfg.Width},
		{"CHIPMAP_HEIGHT", &cfg.Height},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s: must be a positive integer, got %q", f.key, v)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"CHIPMAP_CROP", &cfg.Crop},
		{"CHIPMAP_COLOR", &cfg.Color},
		{"CHIPMAP_LEGEND", &cfg.Legend},
		{"CHIPMAP_TELEMETRY", &cfg.Telemetry},
	}
	for _, f := range bools {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = b
	}

	return cfg, nil
}
