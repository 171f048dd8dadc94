package mbtiles

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func newTestWriter(t *testing.T, metadata Metadata) (*Writer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.mbtiles")

	w, err := New(dbPath, metadata)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	return w, dbPath
}

func TestWriter_New(t *testing.T) {
	w, dbPath := newTestWriter(t, Metadata{
		Name:        "Test Tileset",
		Format:      "png",
		MinZoom:     0,
		MaxZoom:     4,
		Description: "simplex, seed 7",
		Type:        "overlay",
		Version:     "1.0",
		Generator:   "simplex",
		Seed:        7,
		HasSeed:     true,
	})
	defer w.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}

	var count int
	err := w.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='tiles'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query schema: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected tiles table to exist, got count=%d", count)
	}

	var minzoom string
	if err := w.db.QueryRow("SELECT value FROM metadata WHERE name='minzoom'").Scan(&minzoom); err != nil {
		t.Fatalf("Failed to query minzoom: %v", err)
	}
	if minzoom != "0" {
		t.Errorf("minzoom = %q, want \"0\"", minzoom)
	}
}

func TestWriter_WriteTile(t *testing.T) {
	w, _ := newTestWriter(t, Metadata{Name: "Test", Format: "png"})
	defer w.Close()

	pngData := []byte("fake png data")
	if err := w.WriteTile(13, 4317, 2692, pngData); err != nil {
		t.Fatalf("Failed to write tile: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if w.Written() != 1 {
		t.Errorf("Written() = %d, want 1", w.Written())
	}

	// stored as a TMS row and byte for byte
	var tileData []byte
	tmsY := (1 << 13) - 1 - 2692
	err := w.db.QueryRow("SELECT tile_data FROM tiles WHERE zoom_level=? AND tile_column=? AND tile_row=?",
		13, 4317, tmsY).Scan(&tileData)
	if err != nil {
		t.Fatalf("Failed to read tile: %v", err)
	}
	if string(tileData) != string(pngData) {
		t.Errorf("stored %q, want %q", tileData, pngData)
	}
}

func TestWriter_RejectsOutOfRange(t *testing.T) {
	w, _ := newTestWriter(t, Metadata{Name: "Test"})
	defer w.Close()

	for _, c := range [][3]int{{2, 4, 0}, {2, 0, 4}, {-1, 0, 0}, {3, -1, 0}} {
		if err := w.WriteTile(c[0], c[1], c[2], []byte("x")); err == nil {
			t.Errorf("WriteTile(%d/%d/%d) expected error", c[0], c[1], c[2])
		}
	}
}

func TestWriter_BatchFlush(t *testing.T) {
	w, dbPath := newTestWriter(t, Metadata{Name: "Test", Format: "png"})

	pngData := []byte("fake png data")
	for i := 0; i < 150; i++ {
		if err := w.WriteTile(13, i, 100, pngData); err != nil {
			t.Fatalf("Failed to write tile %d: %v", i, err)
		}
	}

	// the first batch is committed on its own
	if w.Written() != DefaultBatchSize {
		t.Errorf("Written() = %d before close, want %d", w.Written(), DefaultBatchSize)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&count); err != nil {
		t.Fatalf("Failed to query tiles: %v", err)
	}
	if count != 150 {
		t.Errorf("Expected 150 tiles, got %d", count)
	}
}

func TestWriter_ReplaceExisting(t *testing.T) {
	w, _ := newTestWriter(t, Metadata{Name: "Test", Format: "png"})
	defer w.Close()

	if err := w.WriteTile(13, 100, 200, []byte("first version")); err != nil {
		t.Fatalf("Failed to write first tile: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if err := w.WriteTile(13, 100, 200, []byte("second version")); err != nil {
		t.Fatalf("Failed to write second tile: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	var count int
	if err := w.db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&count); err != nil {
		t.Fatalf("Failed to query tiles: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 tile (replaced), got %d", count)
	}
}
