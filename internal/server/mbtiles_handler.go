package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MeKo-Tech/noiseplane/internal/mbtiles"
)

// MBTilesHandler serves pre-rendered tiles from an MBTiles database.
type MBTilesHandler struct {
	reader       *mbtiles.Reader
	logger       *slog.Logger
	cacheControl string
}

// MBTilesConfig configures the MBTiles handler.
type MBTilesConfig struct {
	MBTilesPath  string
	CacheControl string
}

// NewMBTilesHandler opens the database read-only.
func NewMBTilesHandler(cfg MBTilesConfig, logger *slog.Logger) (*MBTilesHandler, error) {
	reader, err := mbtiles.OpenReader(cfg.MBTilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open MBTiles: %w", err)
	}
	if cfg.CacheControl == "" {
		cfg.CacheControl = "public, max-age=86400"
	}

	return &MBTilesHandler{
		reader:       reader,
		logger:       logger,
		cacheControl: cfg.CacheControl,
	}, nil
}

// Handler returns the HTTP handler function.
func (h *MBTilesHandler) Handler() http.HandlerFunc {
	return h.serveTile
}

// Metadata exposes the stored metadata, e.g. for a TileJSON-ish status page.
func (h *MBTilesHandler) Metadata() (mbtiles.Metadata, error) {
	return h.reader.Metadata()
}

func (h *MBTilesHandler) serveTile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// @2x is ignored; render a separate file per tile size
	coords, _, ok := parseTilePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !coords.Valid() {
		http.Error(w, fmt.Sprintf("tile %s is outside the zoom level", coords), http.StatusBadRequest)
		return
	}

	data, err := h.reader.ReadTile(int(coords.Z), int(coords.X), int(coords.Y))
	if errors.Is(err, mbtiles.ErrTileNotFound) {
		http.Error(w, "tile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log().Error("failed to read tile", "coords", coords.String(), "error", err)
		http.Error(w, "failed to read tile", http.StatusInternalServerError)
		return
	}

	writePNG(w, data, h.cacheControl, h.log())
}

// Close closes the MBTiles reader.
func (h *MBTilesHandler) Close() error {
	return h.reader.Close()
}

func (h *MBTilesHandler) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}
