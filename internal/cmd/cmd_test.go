package cmd

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MeKo-Tech/noiseplane/internal/mbtiles"
	"github.com/MeKo-Tech/noiseplane/internal/recipe"
	"github.com/MeKo-Tech/noiseplane/internal/tile"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [4]float64
		wantErr bool
	}{
		{
			name:    "valid bbox",
			input:   "9.7,52.3,9.9,52.4",
			want:    [4]float64{9.7, 52.3, 9.9, 52.4},
			wantErr: false,
		},
		{
			name:    "valid bbox with spaces",
			input:   "9.7, 52.3, 9.9, 52.4",
			want:    [4]float64{9.7, 52.3, 9.9, 52.4},
			wantErr: false,
		},
		{
			name:    "negative coordinates",
			input:   "-122.5,37.7,-122.3,37.9",
			want:    [4]float64{-122.5, 37.7, -122.3, 37.9},
			wantErr: false,
		},
		{
			name:    "too few values",
			input:   "9.7,52.3,9.9",
			wantErr: true,
		},
		{
			name:    "too many values",
			input:   "9.7,52.3,9.9,52.4,10.0",
			wantErr: true,
		},
		{
			name:    "invalid number",
			input:   "abc,52.3,9.9,52.4",
			wantErr: true,
		},
		{
			name:    "minLon >= maxLon",
			input:   "10.0,52.3,9.9,52.4",
			wantErr: true,
		},
		{
			name:    "minLat >= maxLat",
			input:   "9.7,52.5,9.9,52.4",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBBox(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBBox(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("parseBBox(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("parseBBox(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func quietLogger(t *testing.T) {
	t.Helper()
	prev := logger
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	t.Cleanup(func() { logger = prev })
}

func TestParseChoices(t *testing.T) {
	got, err := parseChoices("forest:3, plains:2,desert")
	if err != nil {
		t.Fatalf("parseChoices: %v", err)
	}
	want := []noise.Choice[string]{{Item: "forest", Weight: 3}, {Item: "plains", Weight: 2}, {Item: "desert", Weight: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d choices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("choice %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got, err := parseChoices("  "); err != nil || got != nil {
		t.Errorf("empty input: got %v, %v", got, err)
	}
	for _, bad := range []string{"forest:x", ":2", "forest:-1"} {
		if _, err := parseChoices(bad); err == nil {
			t.Errorf("parseChoices(%q) expected error", bad)
		}
	}
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSample(&buf, noise.Constant(0.25), []float64{1, 2}, nil); err != nil {
		t.Fatalf("writeSample: %v", err)
	}
	if buf.String() != "0.25\n" {
		t.Errorf("output = %q", buf.String())
	}

	// a constant at the top of its range always lands in the last bucket
	buf.Reset()
	choices := []noise.Choice[string]{{Item: "water", Weight: 1}, {Item: "land", Weight: 1}}
	if err := writeSample(&buf, noise.Constant(1).WithRange(noise.Unit), []float64{3}, choices); err != nil {
		t.Fatalf("writeSample: %v", err)
	}
	if buf.String() != "land\n" {
		t.Errorf("output = %q", buf.String())
	}

	if err := writeSample(&buf, noise.Constant(0), []float64{1, 2, 3, 4}, nil); err == nil {
		t.Errorf("expected error for 4 coordinates")
	}
}

func TestListPresets(t *testing.T) {
	var buf bytes.Buffer
	if err := listPresets(&buf); err != nil {
		t.Fatalf("listPresets: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Presets:", "natural", "therma-edge", "Kinds:", "classic-perlin", "opensimplex"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestScanTilesDirectory(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"z3_x1_y2.png",
		filepath.Join("5", "7", "9.png"),
		"z3_x1_y2@2x.png",
		"readme.txt",
		filepath.Join("5", "7", "notes.png"),
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(f), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tiles, minZoom, maxZoom, err := scanTilesDirectory(dir)
	if err != nil {
		t.Fatalf("scanTilesDirectory: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("found %d tiles, want 2: %+v", len(tiles), tiles)
	}
	if minZoom != 3 || maxZoom != 5 {
		t.Errorf("zoom range = %d-%d, want 3-5", minZoom, maxZoom)
	}
}

func TestConvertFolder(t *testing.T) {
	quietLogger(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "z1_x0_y1.png"), []byte("flat"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "2", "3"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "2", "3", "1.png"), []byte("nested"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "out.mbtiles")
	n, err := convertFolder(dir, out, mbtiles.Metadata{Name: "converted"})
	if err != nil {
		t.Fatalf("convertFolder: %v", err)
	}
	if n != 2 {
		t.Errorf("converted %d tiles, want 2", n)
	}

	r, err := mbtiles.OpenReader(out)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	data, err := r.ReadTile(2, 3, 1)
	if err != nil {
		t.Fatalf("ReadTile: %v", err)
	}
	if string(data) != "nested" {
		t.Errorf("tile data = %q", data)
	}
	meta, err := r.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Name != "converted" || meta.MinZoom != 1 || meta.MaxZoom != 2 || meta.Format != "png" {
		t.Errorf("unexpected metadata: %+v", meta)
	}

	if _, err := convertFolder(t.TempDir(), out, mbtiles.Metadata{}); err == nil {
		t.Errorf("expected error for empty input directory")
	}
	if _, err := convertFolder(dir, "", mbtiles.Metadata{}); err == nil {
		t.Errorf("expected error for missing output")
	}
}

func TestRunBatchTilesMBTiles(t *testing.T) {
	quietLogger(t)

	seed := int64(5)
	r := recipe.Recipe{Preset: "natural", Seed: &seed}
	p, err := r.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := filepath.Join(t.TempDir(), "noise.mbtiles")
	job := tilesJob{
		plane:      p,
		recipe:     r,
		bbox:       "9.7,52.3,9.9,52.4",
		outputFile: out,
		format:     "mbtiles",
		zoomMin:    0,
		zoomMax:    2,
		workers:    2,
		tileSize:   32,
	}
	if err := runBatchTiles(context.Background(), job); err != nil {
		t.Fatalf("runBatchTiles: %v", err)
	}

	reader, err := mbtiles.OpenReader(out)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reader.Close()

	counts, err := reader.TileCount()
	if err != nil {
		t.Fatalf("TileCount: %v", err)
	}
	for z := 0; z <= 2; z++ {
		if counts[z] != 1 {
			t.Errorf("zoom %d: %d tiles, want 1", z, counts[z])
		}
	}

	data, err := reader.ReadTile(0, 0, 0)
	if err != nil {
		t.Fatalf("ReadTile: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("tile width = %d, want 32", img.Bounds().Dx())
	}

	meta, err := reader.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Generator != "natural" || !meta.HasSeed || meta.Seed != 5 || meta.MaxZoom != 2 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
}

func TestRunBatchTilesValidation(t *testing.T) {
	quietLogger(t)

	base := tilesJob{plane: noise.NewFlat(0), bbox: "9.7,52.3,9.9,52.4", format: "folder", outputDir: t.TempDir(), tileSize: 8}
	tests := []struct {
		name   string
		mutate func(*tilesJob)
	}{
		{"bad bbox", func(j *tilesJob) { j.bbox = "1,2,3" }},
		{"inverted zoom", func(j *tilesJob) { j.zoomMin, j.zoomMax = 3, 1 }},
		{"zoom too deep", func(j *tilesJob) { j.zoomMax = tile.MaxZoom + 1 }},
		{"bad folder structure", func(j *tilesJob) { j.folderStructure = "deep" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := base
			tt.mutate(&job)
			if err := runBatchTiles(context.Background(), job); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestRunSingleTileFolder(t *testing.T) {
	quietLogger(t)

	dir := t.TempDir()
	job := tilesJob{plane: noise.NewValue(1), outputDir: dir, folderStructure: "nested", tileSize: 8}
	if err := runSingleTile(context.Background(), job, tile.NewCoords(3, 2, 1)); err != nil {
		t.Fatalf("runSingleTile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "3", "2", "1.png")); err != nil {
		t.Errorf("tile not written: %v", err)
	}

	if err := runSingleTile(context.Background(), job, tile.NewCoords(1, 2, 0)); err == nil {
		t.Errorf("expected error for tile outside zoom level")
	}
}
