package noise

import (
	"fmt"
	"strings"
)

// Preset names a ready-made pipeline.
type Preset int

const (
	PresetSimplex Preset = iota
	PresetCellular
	PresetCellularEdge
	PresetCellularEdgeThin
	PresetCellularEdgeThick
	PresetCellularEdgeHairthin
	PresetCellularHeight
	PresetFlat
	PresetPerlin
	PresetWhite
	PresetValue
	PresetValueHermite
	PresetBendplex
	PresetDroopy
	PresetWrinkleplex
	PresetNatural
	PresetWetland
	PresetLava
	PresetLavaEdge
	PresetSpatter
	PresetTherma
	PresetThermaEdge
)

var presetNames = [...]string{
	PresetSimplex:              "simplex",
	PresetCellular:             "cellular",
	PresetCellularEdge:         "cellular-edge",
	PresetCellularEdgeThin:     "cellular-edge-thin",
	PresetCellularEdgeThick:    "cellular-edge-thick",
	PresetCellularEdgeHairthin: "cellular-edge-hairthin",
	PresetCellularHeight:       "cellular-height",
	PresetFlat:                 "flat",
	PresetPerlin:               "perlin",
	PresetWhite:                "white",
	PresetValue:                "value",
	PresetValueHermite:         "value-hermite",
	PresetBendplex:             "bendplex",
	PresetDroopy:               "droopy",
	PresetWrinkleplex:          "wrinkleplex",
	PresetNatural:              "natural",
	PresetWetland:              "wetland",
	PresetLava:                 "lava",
	PresetLavaEdge:             "lava-edge",
	PresetSpatter:              "spatter",
	PresetTherma:               "therma",
	PresetThermaEdge:           "therma-edge",
}

// Edge presets trigger on any change at all between neighbouring samples.
const (
	cellEdgeThreshold = 0.000000001
	softEdgeThreshold = 0.000002
)

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// Presets lists the catalog in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presetNames))
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

func presetKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// ParsePreset looks a preset up by name. Case, dashes and underscores are ignored,
// so "CellularEdgeThin", "cellular_edge_thin" and "cellular-edge-thin" all match.
func ParsePreset(name string) (Preset, error) {
	key := presetKey(name)
	for i, n := range presetNames {
		if presetKey(n) == key {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// OfName builds the named preset for seed.
func OfName(name string, seed int64) (Plane, error) {
	p, err := ParsePreset(name)
	if err != nil {
		return nil, err
	}
	return Of(p, seed)
}

func perlinFactory(seed int64) Plane  { return NewPerlin(seed) }
func simplexFactory(seed int64) Plane { return NewSimplex(seed) }

// Of builds preset p for seed.
func Of(p Preset, s int64) (Plane, error) {
	switch p {
	case PresetSimplex:
		return NewSimplex(s), nil
	case PresetCellular:
		return NewCellular(s), nil
	case PresetCellularEdge:
		return From(NewCellular(s)).EdgeDetectFast(cellEdgeThreshold).Plane()
	case PresetCellularEdgeThin:
		return From(NewCellular(s)).Scale(0.25).EdgeDetectFast(cellEdgeThreshold).Plane()
	case PresetCellularEdgeThick:
		return From(NewCellular(s)).Scale(2).EdgeDetectFast(cellEdgeThreshold).Plane()
	case PresetCellularEdgeHairthin:
		return From(NewCellular(s)).Scale(0.1).EdgeDetectFast(cellEdgeThreshold).Plane()
	case PresetCellularHeight:
		return NewCellularHeight(s), nil
	case PresetFlat:
		return NewFlat(s), nil
	case PresetPerlin:
		return NewPerlin(s), nil
	case PresetWhite:
		return NewWhite(s), nil
	case PresetValue:
		return NewValue(s), nil
	case PresetValueHermite:
		return NewValueHermite(s), nil
	case PresetBendplex:
		return Warp(NewSimplex(s), NewPerlin(s+1), 3.5, 0.25), nil
	case PresetDroopy:
		return Warp(NewSimplex(s), NewPerlin(s+1), 1.7, 0.75), nil
	case PresetWrinkleplex:
		return Warp(NewSimplex(s), NewPerlin(s+1), 5.7, 0.15), nil
	case PresetNatural:
		return From(NewSimplex(s)).
			Octave(2, 0.5).
			Warp(NewPerlin(s+2), 0.99, 0.55).
			Warp(NewPerlin(s+1), 8.7, 0.07).
			Plane()
	case PresetWetland:
		return NewBillow(perlinFactory, s, WithOctaves(1), WithGain(0), WithLacunarity(2))
	case PresetLava:
		return NewBillow(perlinFactory, s, WithOctaves(3), WithGain(0.5), WithLacunarity(2))
	case PresetLavaEdge:
		lava, err := Of(PresetLava, s)
		if err != nil {
			return nil, err
		}
		return From(lava).Scale(0.1).Exponent(75).EdgeDetectFast(softEdgeThreshold).Plane()
	case PresetSpatter:
		return NewFBM(simplexFactory, s, WithOctaves(4), WithGain(0.6), WithLacunarity(2.75))
	case PresetTherma:
		lava, err := Of(PresetLava, s+1)
		if err != nil {
			return nil, err
		}
		return From(NewSimplex(s)).Octave(3, 0.5).Warp(lava, 0.75, 3).Scale(4).Plane()
	case PresetThermaEdge:
		therma, err := Of(PresetTherma, s)
		if err != nil {
			return nil, err
		}
		return From(therma).Scale(0.1).Exponent(10).EdgeDetectFast(softEdgeThreshold).Plane()
	}
	return nil, fmt.Errorf("%v: %w", p, ErrUnknownPreset)
}
