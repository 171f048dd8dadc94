// Package recipe describes noise pipelines declaratively so they can live in
// config.yaml next to the rest of the CLI settings.
//
//	recipe:
//	  kind: simplex
//	  seed: 1337
//	  fractal: {type: fbm, octaves: 4, gain: 0.6, lacunarity: 2.75}
//	  stages:
//	    - {op: scale, factor: 0.01}
//	    - {op: warp, scale: 3.5, multiplier: 0.25, source: {kind: perlin, seed_offset: 1}}
//	    - {op: fit, min: 0, max: 1}
package recipe

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/MeKo-Tech/noiseplane/pkg/noise/ext"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ErrInvalid reports a recipe that cannot be built.
var ErrInvalid = errors.New("invalid recipe")

// Recipe is a base plane (a preset or a generator kind, optionally fractal) followed
// by stages applied in order.
type Recipe struct {
	Preset     string   `mapstructure:"preset"`
	Kind       string   `mapstructure:"kind"`
	Seed       *int64   `mapstructure:"seed"`
	SeedOffset int64    `mapstructure:"seed_offset"`
	Fractal    *Fractal `mapstructure:"fractal"`
	Stages     []Stage  `mapstructure:"stages"`
}

// Fractal turns a kind into an octave sum. Zero fields keep the library defaults.
type Fractal struct {
	Type       string  `mapstructure:"type"` // fbm, billow or rigid
	Octaves    int     `mapstructure:"octaves"`
	Gain       float64 `mapstructure:"gain"`
	Lacunarity float64 `mapstructure:"lacunarity"`
}

// Stage is one decorator. Op selects which of the other fields are read.
type Stage struct {
	Op         string  `mapstructure:"op"`
	Factor     float64 `mapstructure:"factor"`
	Min        float64 `mapstructure:"min"`
	Max        float64 `mapstructure:"max"`
	Amount     float64 `mapstructure:"amount"`
	Buckets    int     `mapstructure:"buckets"`
	Exponent   float64 `mapstructure:"exponent"`
	Threshold  float64 `mapstructure:"threshold"`
	Fast       bool    `mapstructure:"fast"`
	Octaves    int     `mapstructure:"octaves"`
	Gain       float64 `mapstructure:"gain"`
	Scale      float64 `mapstructure:"scale"`
	Multiplier float64 `mapstructure:"multiplier"`
	Radius     float64 `mapstructure:"radius"`
	Checks     int     `mapstructure:"checks"`
	Tension    float64 `mapstructure:"tension"`
	Bias       float64 `mapstructure:"bias"`
	SeedOffset int64   `mapstructure:"seed_offset"`
	Source     *Recipe `mapstructure:"source"`
}

var kinds = map[string]noise.Factory{
	"simplex":                func(s int64) noise.Plane { return noise.NewSimplex(s) },
	"perlin":                 func(s int64) noise.Plane { return noise.NewPerlin(s) },
	"cellular":               func(s int64) noise.Plane { return noise.NewCellular(s) },
	"cellular-height":        func(s int64) noise.Plane { return noise.NewCellularHeight(s) },
	"value":                  func(s int64) noise.Plane { return noise.NewValue(s) },
	"value-hermite":          func(s int64) noise.Plane { return noise.NewValueHermite(s) },
	"white":                  func(s int64) noise.Plane { return noise.NewWhite(s) },
	"flat":                   func(s int64) noise.Plane { return noise.NewFlat(s) },
	"opensimplex":            func(s int64) noise.Plane { return ext.NewOpenSimplex(s) },
	"opensimplex-normalized": func(s int64) noise.Plane { return ext.NewOpenSimplexNormalized(s) },
	"classic-perlin":         func(s int64) noise.Plane { return ext.NewClassicPerlin(s) },
}

// Kinds lists the generator kinds a recipe can name.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Decode reads the recipe stored under key. Unknown fields are rejected so typos
// surface instead of silently falling back to defaults.
func Decode(v *viper.Viper, key string) (Recipe, error) {
	var r Recipe
	if !v.IsSet(key) {
		return r, fmt.Errorf("%w: no %q section", ErrInvalid, key)
	}
	err := v.UnmarshalKey(key, &r, func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	})
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return r, nil
}

// Load reads the "recipe" section of a config file.
func Load(path string) (Recipe, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Recipe{}, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}
	return Decode(v, "recipe")
}

// Build constructs the plane. A recipe without a seed uses seed_offset as its seed.
func (r Recipe) Build() (noise.Plane, error) {
	return r.build(0)
}

// SeedFrom returns the recipe seed given the seed of the enclosing recipe.
func (r Recipe) SeedFrom(parent int64) int64 {
	if r.Seed != nil {
		return *r.Seed
	}
	return parent + r.SeedOffset
}

// Describe returns a short label such as "natural" or "simplex fbm +3 stages".
func (r Recipe) Describe() string {
	parts := []string{r.Preset + r.Kind}
	if r.Fractal != nil {
		parts = append(parts, fractalType(r.Fractal.Type))
	}
	if n := len(r.Stages); n > 0 {
		parts = append(parts, fmt.Sprintf("+%d stages", n))
	}
	return strings.Join(parts, " ")
}

func (r Recipe) build(parent int64) (noise.Plane, error) {
	seed := r.SeedFrom(parent)

	base, err := r.base(seed)
	if err != nil {
		return nil, err
	}

	chain := noise.From(base)
	for i, st := range r.Stages {
		chain, err = st.apply(chain, seed)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i+1, st.Op, err)
		}
		if err := chain.Err(); err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i+1, st.Op, err)
		}
	}
	return chain.Plane()
}

func (r Recipe) base(seed int64) (noise.Plane, error) {
	switch {
	case r.Preset != "" && r.Kind != "":
		return nil, fmt.Errorf("%w: preset %q and kind %q are mutually exclusive", ErrInvalid, r.Preset, r.Kind)
	case r.Preset != "":
		if r.Fractal != nil {
			return nil, fmt.Errorf("%w: fractal applies to kinds, not to preset %q", ErrInvalid, r.Preset)
		}
		return noise.OfName(r.Preset, seed)
	case r.Kind == "":
		return nil, fmt.Errorf("%w: needs a preset or a kind", ErrInvalid)
	}

	factory, ok := kinds[strings.ToLower(r.Kind)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q (known: %s)", ErrInvalid, r.Kind, strings.Join(Kinds(), ", "))
	}
	if r.Fractal == nil {
		return factory(seed), nil
	}

	var opts []noise.FractalOption
	if r.Fractal.Octaves != 0 {
		opts = append(opts, noise.WithOctaves(r.Fractal.Octaves))
	}
	if r.Fractal.Gain != 0 {
		opts = append(opts, noise.WithGain(r.Fractal.Gain))
	}
	if r.Fractal.Lacunarity != 0 {
		opts = append(opts, noise.WithLacunarity(r.Fractal.Lacunarity))
	}

	switch fractalType(r.Fractal.Type) {
	case "fbm":
		return noise.NewFBM(factory, seed, opts...)
	case "billow":
		return noise.NewBillow(factory, seed, opts...)
	case "rigid":
		return noise.NewRigidMulti(factory, seed, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown fractal type %q (fbm, billow, rigid)", ErrInvalid, r.Fractal.Type)
	}
}

func fractalType(t string) string {
	switch strings.ToLower(t) {
	case "", "fbm":
		return "fbm"
	case "rigid", "rigid-multi", "rigidmulti":
		return "rigid"
	default:
		return strings.ToLower(t)
	}
}

func (s Stage) apply(c noise.Chain, seed int64) (noise.Chain, error) {
	switch strings.ToLower(s.Op) {
	case "scale":
		if s.Factor == 0 {
			return c, fmt.Errorf("%w: scale needs a non-zero factor", ErrInvalid)
		}
		return c.Scale(s.Factor), nil
	case "invert":
		return c.Invert(), nil
	case "exponent":
		return c.Exponent(s.Exponent), nil
	case "clip":
		return c.Clip(s.Min, s.Max), nil
	case "contrast":
		return c.Contrast(s.Amount), nil
	case "posturize":
		return c.Posturize(s.Buckets), nil
	case "fit":
		return c.Fit(s.Min, s.Max), nil
	case "edge":
		if s.Fast {
			return c.EdgeDetectFast(s.Threshold), nil
		}
		return c.EdgeDetect(s.Threshold), nil
	case "octave":
		return c.Octave(s.Octaves, s.Gain), nil
	case "linear":
		return c.Linear(s.Scale), nil
	case "cubic":
		return c.Cubic(s.Scale), nil
	case "hermite":
		return c.Hermite(s.Scale, noise.WithTension(s.Tension), noise.WithBias(s.Bias)), nil
	case "starcast":
		return c.Starcast(s.Radius, s.Checks), nil
	case "cellularize":
		return c.Cellularize(seed + s.SeedOffset), nil
	case "warp", "add":
		if s.Source == nil {
			return c, fmt.Errorf("%w: %s needs a source", ErrInvalid, s.Op)
		}
		src, err := s.Source.build(seed)
		if err != nil {
			return c, fmt.Errorf("source: %w", err)
		}
		if strings.EqualFold(s.Op, "add") {
			return c.Add(src), nil
		}
		return c.Warp(src, s.Scale, s.Multiplier), nil
	default:
		return c, fmt.Errorf("%w: unknown op %q", ErrInvalid, s.Op)
	}
}
