// Package server serves plane tiles over HTTP, rendered on demand or read from MBTiles.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MeKo-Tech/noiseplane/internal/pipeline"
	"github.com/MeKo-Tech/noiseplane/internal/tile"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
)

type OnDemandTilesConfig struct {
	PNGCompression           string
	CacheControl             string
	BaseTileSize             int
	WorldSize                float64
	Blur                     float32
	MaxConcurrentGenerations int
	GenerationTimeout        time.Duration
}

// OnDemandTiles renders every requested tile from the plane. Nothing is cached;
// the plane is deterministic, so clients and proxies may cache instead.
type OnDemandTiles struct {
	plane  noise.Plane
	logger *slog.Logger
	sem    chan struct{}
	gens   sync.Map // tile size -> *pipeline.Generator
	cfg    OnDemandTilesConfig

	activeRenders  atomic.Int32
	totalRendered  atomic.Int64
	totalFailed    atomic.Int64
	currentRenders sync.Map // tile key -> start time

	// tiles waiting for the semaphore
	queuedRenders atomic.Int32
	queuedTiles   sync.Map // tile key -> queue time
}

// TileStatus represents the current status of the renderer.
type TileStatus struct {
	Render RenderStatus `json:"render"`
}

// RenderStatus contains current render operation status.
type RenderStatus struct {
	ActiveRenders int      `json:"active_renders"`
	TotalRendered int64    `json:"total_rendered"`
	TotalFailed   int64    `json:"total_failed"`
	CurrentTiles  []string `json:"current_tiles"`
	MaxConcurrent int      `json:"max_concurrent"`
	QueuedRenders int      `json:"queued_renders"`
	QueuedTiles   []string `json:"queued_tiles"`
}

func NewOnDemandTiles(p noise.Plane, cfg OnDemandTilesConfig, logger *slog.Logger) (*OnDemandTiles, error) {
	if p == nil {
		return nil, errors.New("plane must not be nil")
	}
	if cfg.BaseTileSize <= 0 {
		cfg.BaseTileSize = 256
	}
	if cfg.MaxConcurrentGenerations <= 0 {
		cfg.MaxConcurrentGenerations = 1
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = 30 * time.Second
	}
	if cfg.CacheControl == "" {
		cfg.CacheControl = "no-store"
	}

	t := &OnDemandTiles{
		plane:  p,
		cfg:    cfg,
		logger: logger,
		sem:    make(chan struct{}, cfg.MaxConcurrentGenerations),
	}

	// surface option errors at startup rather than on the first request
	if _, err := t.getGenerator(cfg.BaseTileSize); err != nil {
		return nil, err
	}
	return t, nil
}

// Status returns the current status of the renderer.
func (t *OnDemandTiles) Status() TileStatus {
	currentTiles := []string{}
	t.currentRenders.Range(func(key, _ any) bool {
		currentTiles = append(currentTiles, key.(string))
		return true
	})

	queuedTiles := []string{}
	t.queuedTiles.Range(func(key, _ any) bool {
		queuedTiles = append(queuedTiles, key.(string))
		return true
	})

	return TileStatus{
		Render: RenderStatus{
			ActiveRenders: int(t.activeRenders.Load()),
			TotalRendered: t.totalRendered.Load(),
			TotalFailed:   t.totalFailed.Load(),
			CurrentTiles:  currentTiles,
			MaxConcurrent: t.cfg.MaxConcurrentGenerations,
			QueuedRenders: int(t.queuedRenders.Load()),
			QueuedTiles:   queuedTiles,
		},
	}
}

// StatusHandler returns an HTTP handler for the status endpoint (JSON).
func (t *OnDemandTiles) StatusHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Cache-Control", "no-store")

		if err := json.NewEncoder(w).Encode(t.Status()); err != nil {
			t.log().Error("failed to encode status", "error", err)
			http.Error(w, "failed to encode status", http.StatusInternalServerError)
		}
	})
}

// SampleHandler answers /sample?x=..&y=..[&z=..] with the plane value as JSON.
func (t *OnDemandTiles) SampleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var coords []float64
		for _, key := range []string{"x", "y", "z"} {
			s := q.Get(key)
			if s == "" {
				break
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid %s: %q", key, s), http.StatusBadRequest)
				return
			}
			coords = append(coords, v)
		}

		value, err := noise.Sample(t.plane, coords...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rng := t.plane.Range()
		body, err := json.Marshal(map[string]any{
			"coords": coords,
			"value":  finite(value),
			"min":    finite(rng.Min),
			"max":    finite(rng.Max),
		})
		if err != nil {
			t.log().Error("failed to encode sample", "coords", coords, "error", err)
			http.Error(w, "failed to encode sample", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write(append(body, '\n'))
	})
}

// finite returns nil for NaN and infinities, which JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func (t *OnDemandTiles) Handler() http.Handler {
	return http.HandlerFunc(t.serveTile)
}

func (t *OnDemandTiles) serveTile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	coords, suffix, ok := parseTilePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !coords.Valid() {
		http.Error(w, fmt.Sprintf("tile %s is outside the zoom level", coords), http.StatusBadRequest)
		return
	}

	tileKey := coords.String() + suffix
	t.queuedRenders.Add(1)
	t.queuedTiles.Store(tileKey, time.Now())

	select {
	case t.sem <- struct{}{}:
		t.queuedRenders.Add(-1)
		t.queuedTiles.Delete(tileKey)
		defer func() { <-t.sem }()
	case <-r.Context().Done():
		t.queuedRenders.Add(-1)
		t.queuedTiles.Delete(tileKey)
		http.Error(w, "request cancelled", http.StatusRequestTimeout)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), t.cfg.GenerationTimeout)
	defer cancel()

	gen, err := t.getGenerator(tileSizeForSuffix(t.cfg.BaseTileSize, suffix))
	if err != nil {
		t.log().Error("failed to init generator", "error", err)
		http.Error(w, "failed to init generator", http.StatusInternalServerError)
		return
	}

	start := time.Now()
	t.activeRenders.Add(1)
	t.currentRenders.Store(tileKey, start)

	data, err := gen.Encode(ctx, coords)

	t.activeRenders.Add(-1)
	t.currentRenders.Delete(tileKey)

	if err != nil {
		t.totalFailed.Add(1)
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		t.log().Error("failed to render tile", "coords", coords.String(), "suffix", suffix, "error", err)
		http.Error(w, fmt.Sprintf("failed to render tile %s: %v", tileKey, err), status)
		return
	}
	t.totalRendered.Add(1)
	t.log().Debug("tile rendered", "coords", coords.String(), "suffix", suffix, "ms", time.Since(start).Milliseconds())

	writePNG(w, data, t.cfg.CacheControl, t.log())
}

func (t *OnDemandTiles) getGenerator(tileSize int) (*pipeline.Generator, error) {
	if v, ok := t.gens.Load(tileSize); ok {
		return v.(*pipeline.Generator), nil
	}

	g, err := pipeline.NewGenerator(t.plane, "", tileSize, t.logger, pipeline.GeneratorOptions{
		PNGCompression: t.cfg.PNGCompression,
		WorldSize:      t.cfg.WorldSize,
		Blur:           t.cfg.Blur,
	})
	if err != nil {
		return nil, err
	}

	actual, _ := t.gens.LoadOrStore(tileSize, g)
	return actual.(*pipeline.Generator), nil
}

func (t *OnDemandTiles) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.Default()
}

func writePNG(w http.ResponseWriter, data []byte, cacheControl string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", cacheControl)
	if _, err := w.Write(data); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

// parseTilePath accepts /tiles/{z}/{x}/{y}.png and /tiles/{z}/{x}/{y}@2x.png.
func parseTilePath(requestPath string) (tile.Coords, string, bool) {
	rest, ok := strings.CutPrefix(requestPath, "/tiles/")
	if !ok {
		return tile.Coords{}, "", false
	}
	rest, ok = strings.CutSuffix(rest, ".png")
	if !ok {
		return tile.Coords{}, "", false
	}
	suffix := ""
	if name, ok := strings.CutSuffix(rest, "@2x"); ok {
		suffix = "@2x"
		rest = name
	}
	if strings.Count(rest, "/") != 2 {
		return tile.Coords{}, "", false
	}

	coords, err := tile.ParseZXY(rest)
	if err != nil {
		return tile.Coords{}, "", false
	}
	return coords, suffix, true
}

func tileSizeForSuffix(base int, suffix string) int {
	if suffix == "@2x" {
		return base * 2
	}
	return base
}
