package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/noiseplane/internal/raster"
	"github.com/MeKo-Tech/noiseplane/internal/tile"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
)

// DefaultWorldSize is the plane extent covered by the zoom 0 tile.
const DefaultWorldSize = 4096

// TileWriter stores encoded tiles somewhere other than the output directory.
type TileWriter interface {
	WriteTile(z, x, y int, data []byte) error
}

// GeneratorOptions holds optional generator settings.
type GeneratorOptions struct {
	PNGCompression  string     // default, speed, best or none
	TileWriter      TileWriter // when set, tiles go here instead of the output directory
	FolderStructure string     // flat (z{z}_x{x}_y{y}.png) or nested ({z}/{x}/{y}.png)
	WorldSize       float64    // plane units across the zoom 0 tile
	Blur            float32    // gaussian sigma applied to every tile
}

// Generator renders tiles of one plane. It holds no per-tile state, so workers share it.
type Generator struct {
	plane       noise.Plane
	writer      TileWriter
	logger      *slog.Logger
	outputDir   string
	tileSize    int
	worldSize   float64
	blur        float32
	compression png.CompressionLevel
	nested      bool
}

// NewGenerator prepares a generator for p.
func NewGenerator(p noise.Plane, outputDir string, tileSize int, logger *slog.Logger, opts GeneratorOptions) (*Generator, error) {
	if p == nil {
		return nil, fmt.Errorf("plane must not be nil")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive")
	}

	compression, err := raster.ParseCompression(opts.PNGCompression)
	if err != nil {
		return nil, err
	}

	nested := false
	switch opts.FolderStructure {
	case "", "flat":
	case "nested":
		nested = true
	default:
		return nil, fmt.Errorf("invalid folder structure %q: must be 'flat' or 'nested'", opts.FolderStructure)
	}

	worldSize := opts.WorldSize
	if worldSize == 0 {
		worldSize = DefaultWorldSize
	}
	if !(worldSize > 0) {
		return nil, fmt.Errorf("world size must be positive, got %g", worldSize)
	}

	return &Generator{
		plane:       p,
		writer:      opts.TileWriter,
		logger:      logger,
		outputDir:   outputDir,
		tileSize:    tileSize,
		worldSize:   worldSize,
		blur:        opts.Blur,
		compression: compression,
		nested:      nested,
	}, nil
}

// Render draws the plane window covered by coords.
func (g *Generator) Render(ctx context.Context, coords tile.Coords) (*image.Gray, error) {
	if !coords.Valid() {
		return nil, fmt.Errorf("tile %s does not exist", coords)
	}

	win := coords.Window(g.worldSize)
	return raster.Render(ctx, g.plane, raster.Options{
		Width:   g.tileSize,
		Height:  g.tileSize,
		OriginX: win.MinX,
		OriginY: win.MinY,
		Step:    win.Width() / float64(g.tileSize),
		Blur:    g.blur,
	})
}

// Encode renders coords and returns the PNG bytes.
func (g *Generator) Encode(ctx context.Context, coords tile.Coords) ([]byte, error) {
	img, err := g.Render(ctx, coords)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := raster.Encode(&buf, img, g.compression); err != nil {
		return nil, fmt.Errorf("failed to encode tile %s: %w", coords, err)
	}
	return buf.Bytes(), nil
}

// Generate renders coords and stores it. With a TileWriter the tile goes there and
// the returned location is {z}/{x}/{y}.png; otherwise it is written below the output
// directory and its path is returned. Existing files are kept unless force is set.
func (g *Generator) Generate(ctx context.Context, coords tile.Coords, force bool) (string, error) {
	if g.writer != nil {
		data, err := g.Encode(ctx, coords)
		if err != nil {
			return "", err
		}
		if err := g.writer.WriteTile(int(coords.Z), int(coords.X), int(coords.Y), data); err != nil {
			return "", fmt.Errorf("failed to store tile %s: %w", coords, err)
		}
		return coords.NestedPath("png"), nil
	}

	finalPath := filepath.Join(g.outputDir, g.relPath(coords))
	if !force {
		if _, err := os.Stat(finalPath); err == nil {
			g.log().Debug("Tile already exists; skipping", "coords", coords.String(), "path", finalPath)
			return finalPath, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := g.Encode(ctx, coords)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(finalPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write tile file: %w", err)
	}

	g.log().Debug("Tile written", "coords", coords.String(), "path", finalPath)
	return finalPath, nil
}

func (g *Generator) relPath(coords tile.Coords) string {
	if g.nested {
		return filepath.FromSlash(coords.NestedPath("png"))
	}
	return coords.Path("png")
}

func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.Default()
}
