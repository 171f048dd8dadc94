package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/noiseplane/internal/mbtiles"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
)

func TestParseTilePath(t *testing.T) {
	t.Run("base tile", func(t *testing.T) {
		coords, suffix, ok := parseTilePath("/tiles/13/4317/2692.png")
		if !ok {
			t.Fatalf("expected ok")
		}
		if suffix != "" {
			t.Fatalf("expected empty suffix, got %q", suffix)
		}
		if coords.String() != "z13_x4317_y2692" {
			t.Fatalf("unexpected coords: %s", coords.String())
		}
	})

	t.Run("hidpi tile", func(t *testing.T) {
		coords, suffix, ok := parseTilePath("/tiles/5/1/2@2x.png")
		if !ok {
			t.Fatalf("expected ok")
		}
		if suffix != "@2x" {
			t.Fatalf("expected @2x suffix, got %q", suffix)
		}
		if coords.String() != "z5_x1_y2" {
			t.Fatalf("unexpected coords: %s", coords.String())
		}
	})

	for _, p := range []string{
		"/tiles/5/1/2.jpg",
		"/demo/5/1/2.png",
		"/tiles/z5_x1_y2.png",
		"/tiles/5/1.png",
		"/tiles/5/1/2/3.png",
		"/tiles/5/a/2.png",
		"/tiles/5/1/2x.png",
	} {
		t.Run("reject "+p, func(t *testing.T) {
			if _, _, ok := parseTilePath(p); ok {
				t.Fatalf("expected %s to be rejected", p)
			}
		})
	}
}

func newTestTiles(t *testing.T) *OnDemandTiles {
	t.Helper()
	od, err := NewOnDemandTiles(noise.NewSimplex(7), OnDemandTilesConfig{BaseTileSize: 16}, nil)
	if err != nil {
		t.Fatalf("NewOnDemandTiles: %v", err)
	}
	return od
}

func TestOnDemandTiles_Serve(t *testing.T) {
	od := newTestTiles(t)
	h := od.Handler()

	tests := []struct {
		path   string
		status int
		size   int
	}{
		{"/tiles/0/0/0.png", http.StatusOK, 16},
		{"/tiles/3/5/2@2x.png", http.StatusOK, 32},
		{"/tiles/2/4/0.png", http.StatusBadRequest, 0},
		{"/tiles/30/0/0.png", http.StatusBadRequest, 0},
		{"/tiles/2/1.png", http.StatusNotFound, 0},
		{"/tiles/2/1/1.jpg", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q", ct)
			}
			if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
				t.Errorf("Cache-Control = %q", cc)
			}
			img, err := png.Decode(rec.Body)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.size || b.Dy() != tt.size {
				t.Errorf("tile size = %v, want %d", b, tt.size)
			}
		})
	}

	st := od.Status().Render
	if st.TotalRendered != 2 || st.TotalFailed != 0 || st.ActiveRenders != 0 {
		t.Errorf("unexpected status: %+v", st)
	}
}

func TestOnDemandTiles_Deterministic(t *testing.T) {
	h := newTestTiles(t).Handler()

	get := func() []byte {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tiles/4/3/9.png", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		return rec.Body.Bytes()
	}

	if !bytes.Equal(get(), get()) {
		t.Fatalf("same tile rendered differently")
	}
}

func TestOnDemandTiles_Options(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestTiles(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/tiles/0/0/0.png", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS header")
	}
}

func TestOnDemandTiles_StatusHandler(t *testing.T) {
	od := newTestTiles(t)
	rec := httptest.NewRecorder()
	od.StatusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	var status TileStatus
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Render.MaxConcurrent != 1 {
		t.Errorf("max_concurrent = %d, want 1", status.Render.MaxConcurrent)
	}
}

func TestOnDemandTiles_SampleHandler(t *testing.T) {
	od, err := NewOnDemandTiles(noise.Constant(0.25), OnDemandTilesConfig{}, nil)
	if err != nil {
		t.Fatalf("NewOnDemandTiles: %v", err)
	}
	h := od.SampleHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sample?x=1&y=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Coords []float64 `json:"coords"`
		Value  float64   `json:"value"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Value != 0.25 || len(body.Coords) != 2 {
		t.Errorf("unexpected body: %+v", body)
	}

	for _, q := range []string{"/sample", "/sample?x=abc"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestOnDemandTiles_SampleNonFinite(t *testing.T) {
	// a negative base under a fractional exponent yields NaN
	p := noise.Exponent(noise.Constant(-1).WithRange(noise.Unit), 0.5)
	od, err := NewOnDemandTiles(p, OnDemandTilesConfig{}, nil)
	if err != nil {
		t.Fatalf("NewOnDemandTiles: %v", err)
	}

	rec := httptest.NewRecorder()
	od.SampleHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sample?x=3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Value *float64 `json:"value"`
		Max   *float64 `json:"max"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Value != nil {
		t.Errorf("value = %v, want null", *body.Value)
	}
	if body.Max == nil || *body.Max != 1 {
		t.Errorf("max = %v, want 1", body.Max)
	}
}

func TestNewOnDemandTiles_Errors(t *testing.T) {
	if _, err := NewOnDemandTiles(nil, OnDemandTilesConfig{}, nil); err == nil {
		t.Errorf("expected error for nil plane")
	}
	if _, err := NewOnDemandTiles(noise.NewFlat(0), OnDemandTilesConfig{PNGCompression: "fast"}, nil); err == nil {
		t.Errorf("expected error for unknown compression")
	}
}

func TestMBTilesHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.mbtiles")
	w, err := mbtiles.New(path, mbtiles.Metadata{Name: "test", Format: "png"})
	if err != nil {
		t.Fatalf("mbtiles.New: %v", err)
	}
	payload := []byte("\x89PNG fake tile")
	if err := w.WriteTile(2, 1, 3, payload); err != nil {
		t.Fatalf("WriteTile: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	h, err := NewMBTilesHandler(MBTilesConfig{MBTilesPath: path}, nil)
	if err != nil {
		t.Fatalf("NewMBTilesHandler: %v", err)
	}
	defer h.Close()

	tests := []struct {
		path   string
		status int
	}{
		{"/tiles/2/1/3.png", http.StatusOK},
		{"/tiles/2/1/3@2x.png", http.StatusOK},
		{"/tiles/2/1/2.png", http.StatusNotFound},
		{"/tiles/2/9/2.png", http.StatusBadRequest},
		{"/tiles/nope.png", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.path, rec.Code, tt.status)
			continue
		}
		if tt.status == http.StatusOK && !bytes.Equal(rec.Body.Bytes(), payload) {
			t.Errorf("%s: body = %q", tt.path, rec.Body.Bytes())
		}
	}

	meta, err := h.Metadata()
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Name != "test" {
		t.Errorf("Name = %q", meta.Name)
	}
}
