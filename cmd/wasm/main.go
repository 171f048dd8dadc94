//go:build js && wasm
// +build js,wasm

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/MeKo-Tech/noiseplane/internal/pipeline"
	"github.com/MeKo-Tech/noiseplane/internal/recipe"
	"github.com/MeKo-Tech/noiseplane/internal/tile"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
)

// InitRequest selects the plane, e.g. {"preset":"natural","seed":42}.
type InitRequest struct {
	Preset    string  `json:"preset"`
	Kind      string  `json:"kind"`
	Seed      int64   `json:"seed"`
	TileSize  int     `json:"tileSize"`
	WorldSize float64 `json:"worldSize"`
}

// RenderTileRequest asks for one tile of the current plane.
type RenderTileRequest struct {
	Zoom  int  `json:"zoom"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	HiDPI bool `json:"hidpi"`
}

var (
	mu      sync.RWMutex
	plane   noise.Plane
	base    *pipeline.Generator
	hidpi   *pipeline.Generator
	planeID string
)

func errorResult(format string, args ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, args...)}
}

// initPlane builds the plane and the tile generators for it.
func initPlane(this js.Value, args []js.Value) any {
	req := InitRequest{Preset: noise.PresetSimplex.String(), Seed: 1337, TileSize: 256}
	if len(args) > 0 && args[0].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
			return errorResult("failed to parse request: %v", err)
		}
	}

	r := recipe.Recipe{Kind: req.Kind, Seed: &req.Seed}
	if r.Kind == "" {
		r.Preset = req.Preset
	}
	p, err := r.Build()
	if err != nil {
		return errorResult("%v", err)
	}

	opts := pipeline.GeneratorOptions{PNGCompression: "speed", WorldSize: req.WorldSize}
	g1, err := pipeline.NewGenerator(p, "", req.TileSize, nil, opts)
	if err != nil {
		return errorResult("%v", err)
	}
	g2, err := pipeline.NewGenerator(p, "", req.TileSize*2, nil, opts)
	if err != nil {
		return errorResult("%v", err)
	}

	mu.Lock()
	plane, base, hidpi, planeID = p, g1, g2, r.Describe()
	mu.Unlock()

	rng := p.Range()
	return map[string]any{"status": "ready", "plane": planeID, "min": rng.Min, "max": rng.Max}
}

// renderTile returns a data: URL of the requested tile PNG.
func renderTile(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult("missing arguments")
	}
	var req RenderTileRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errorResult("failed to parse request: %v", err)
	}
	if req.Zoom < 0 || req.X < 0 || req.Y < 0 {
		return errorResult("negative tile coordinates")
	}

	mu.RLock()
	g := base
	if req.HiDPI {
		g = hidpi
	}
	mu.RUnlock()
	if g == nil {
		return errorResult("call noiseplaneInit first")
	}

	coords := tile.NewCoords(uint32(req.Zoom), uint32(req.X), uint32(req.Y))
	data, err := g.Encode(context.Background(), coords)
	if err != nil {
		return errorResult("%v", err)
	}
	return map[string]any{
		"key": coords.String(),
		"url": "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	}
}

// sample returns the plane value at 1 to 3 numeric arguments.
func sample(this js.Value, args []js.Value) any {
	mu.RLock()
	p := plane
	mu.RUnlock()
	if p == nil {
		return errorResult("call noiseplaneInit first")
	}

	coords := make([]float64, len(args))
	for i, a := range args {
		coords[i] = a.Float()
	}
	v, err := noise.Sample(p, coords...)
	if err != nil {
		return errorResult("%v", err)
	}
	return v
}

func main() {
	c := make(chan struct{})

	js.Global().Set("noiseplaneInit", js.FuncOf(initPlane))
	js.Global().Set("noiseplaneRenderTile", js.FuncOf(renderTile))
	js.Global().Set("noiseplaneSample", js.FuncOf(sample))

	fmt.Println("noiseplane WASM module loaded")
	<-c
}
