// Package app wires image decoding, classification and rendering into a
// single conversion run.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chipmap/internal/bitmap"
	"github.com/samdwyer/chipmap/internal/mapdata"
	"github.com/samdwyer/chipmap/internal/render"
	"github.com/samdwyer/chipmap/internal/telemetry"
	"github.com/samdwyer/chipmap/internal/world"
)

// App holds everything a conversion needs.
type App struct {
	cfg  Config
	dict *mapdata.Dictionary
	opts world.BuildOptions
}

// New validates cfg against the standard dictionary and creates an app.
func New(cfg Config) (*App, error) {
	dict, err := mapdata.LoadDictionary()
	if err != nil {
		return nil, fmt.Errorf("load tile dictionary: %w", err)
	}
	return NewWithDictionary(cfg, dict)
}

// NewWithDictionary creates an app that classifies against dict.
func NewWithDictionary(cfg Config, dict *mapdata.Dictionary) (*App, error) {
	opts := world.BuildOptions{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Crop:      cfg.Crop,
		Unmatched: cfg.Unmatched,
	}

	if cfg.Unmatched == world.UnmatchedDefault {
		kind, ok := dict.GetByID(cfg.DefaultTile)
		if !ok {
			return nil, fmt.Errorf("default tile %q is not in the dictionary", cfg.DefaultTile)
		}
		opts.Default = kind
	}

	return &App{cfg: cfg, dict: dict, opts: opts}, nil
}

// Run decodes the configured image, classifies it and writes the map to out.
// Nothing is written unless the whole grid was built.
func (a *App) Run(ctx context.Context, out io.Writer) error {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	span.SetAttributes(attribute.String("image.path", a.cfg.ImagePath))

	img, err := bitmap.Load(a.cfg.ImagePath)
	if err != nil {
		span.RecordError(err)
		return err
	}

	width, height := img.Size()
	slog.Info("image loaded", "path", a.cfg.ImagePath, "format", img.Format(), "width", width, "height", height)

	return a.Convert(ctx, img, out)
}

// Convert classifies px and writes the map to out.
func (a *App) Convert(ctx context.Context, px world.Pixels, out io.Writer) error {
	grid, err := world.Build(ctx, px, a.dict, a.opts)
	if err != nil {
		return fmt.Errorf("build map: %w", err)
	}

	if n := len(grid.Unmatched); n > 0 {
		first := grid.Unmatched[0]
		slog.Warn("unmatched pixels replaced with default tile",
			"count", n,
			"tile", a.cfg.DefaultTile,
			"first_x", first.X,
			"first_y", first.Y,
			"first_color", first.Color.Hex())
	}

	r := render.NewRenderer(out, a.dict)
	r.Color = a.cfg.Color

	if err := r.Render(grid); err != nil {
		return fmt.Errorf("render map: %w", err)
	}

	if a.cfg.Legend {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("render legend: %w", err)
		}
		if err := r.RenderLegend(grid.Counts()); err != nil {
			return fmt.Errorf("render legend: %w", err)
		}
		if err := r.RenderUnmatched(grid.Unmatched); err != nil {
			return fmt.Errorf("render legend: %w", err)
		}
	}

	slog.Debug("map rendered", "width", grid.Width, "height", grid.Height)
	return nil
}
