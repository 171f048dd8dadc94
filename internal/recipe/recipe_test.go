package recipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warpedFBM = `
recipe:
  kind: simplex
  seed: 1337
  fractal:
    type: fbm
    octaves: 4
    gain: 0.6
    lacunarity: 2.75
  stages:
    - op: scale
      factor: 0.01
    - op: warp
      scale: 3.5
      multiplier: 0.25
      source:
        kind: perlin
        seed_offset: 1
    - op: fit
      min: 0
      max: 1
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func assertSamePlane(t *testing.T, want, got noise.Plane) {
	t.Helper()
	assert.Equal(t, want.Range(), got.Range())
	for _, pt := range [][2]float64{{0, 0}, {12.5, -3}, {101, 77.25}, {-640, 512}} {
		assert.Equal(t, want.Noise2D(pt[0], pt[1]), got.Noise2D(pt[0], pt[1]), "at %v", pt)
	}
}

func TestLoadMatchesChain(t *testing.T) {
	r, err := Load(writeConfig(t, warpedFBM))
	require.NoError(t, err)
	require.NotNil(t, r.Seed)
	assert.Equal(t, int64(1337), *r.Seed)
	assert.Equal(t, "simplex fbm +3 stages", r.Describe())

	got, err := r.Build()
	require.NoError(t, err)

	fbm, err := noise.NewFBM(func(s int64) noise.Plane { return noise.NewSimplex(s) }, 1337,
		noise.WithOctaves(4), noise.WithGain(0.6), noise.WithLacunarity(2.75))
	require.NoError(t, err)
	want, err := noise.From(fbm).
		Scale(0.01).
		Warp(noise.NewPerlin(1338), 3.5, 0.25).
		Fit(0, 1).
		Plane()
	require.NoError(t, err)

	assertSamePlane(t, want, got)
}

func TestPresetRecipe(t *testing.T) {
	seed := int64(42)
	got, err := Recipe{Preset: "natural", Seed: &seed}.Build()
	require.NoError(t, err)

	want, err := noise.OfName("natural", 42)
	require.NoError(t, err)
	assertSamePlane(t, want, got)
}

func TestSeedOffset(t *testing.T) {
	seed := int64(7)
	assert.Equal(t, int64(7), Recipe{Seed: &seed, SeedOffset: 3}.SeedFrom(100))
	assert.Equal(t, int64(103), Recipe{SeedOffset: 3}.SeedFrom(100))
	assert.Equal(t, int64(3), Recipe{SeedOffset: 3}.SeedFrom(0))
}

func TestStages(t *testing.T) {
	seed := int64(9)
	base := func() Recipe { return Recipe{Kind: "value", Seed: &seed} }
	value := noise.NewValue(9)

	tests := []struct {
		name  string
		stage Stage
		want  func() (noise.Plane, error)
	}{
		{"invert", Stage{Op: "invert"}, func() (noise.Plane, error) { return noise.Invert(value), nil }},
		{"clip", Stage{Op: "clip", Min: -0.5, Max: 0.5}, func() (noise.Plane, error) { return noise.Clip(value, -0.5, 0.5) }},
		{"posturize", Stage{Op: "posturize", Buckets: 4}, func() (noise.Plane, error) { return noise.Posturize(value, 4) }},
		{"edge fast", Stage{Op: "edge", Threshold: 0.2, Fast: true}, func() (noise.Plane, error) { return noise.EdgeDetectFast(value, 0.2) }},
		{"cubic", Stage{Op: "cubic", Scale: 8}, func() (noise.Plane, error) { return noise.NewCubic(value, 8) }},
		{"cellularize", Stage{Op: "cellularize", SeedOffset: 2}, func() (noise.Plane, error) { return noise.Cellularize(value, 11), nil }},
		{"add", Stage{Op: "add", Source: &Recipe{Kind: "white"}}, func() (noise.Plane, error) { return noise.Add(value, noise.NewWhite(9)), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			r.Stages = []Stage{tt.stage}
			got, err := r.Build()
			require.NoError(t, err)

			want, err := tt.want()
			require.NoError(t, err)
			assertSamePlane(t, want, got)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		r    Recipe
	}{
		{"empty", Recipe{}},
		{"preset and kind", Recipe{Preset: "natural", Kind: "simplex"}},
		{"preset with fractal", Recipe{Preset: "natural", Fractal: &Fractal{Type: "fbm"}}},
		{"unknown kind", Recipe{Kind: "worley"}},
		{"unknown fractal", Recipe{Kind: "simplex", Fractal: &Fractal{Type: "hybrid"}}},
		{"unknown op", Recipe{Kind: "simplex", Stages: []Stage{{Op: "blur"}}}},
		{"warp without source", Recipe{Kind: "simplex", Stages: []Stage{{Op: "warp", Scale: 1, Multiplier: 1}}}},
		{"zero scale", Recipe{Kind: "simplex", Stages: []Stage{{Op: "scale"}}}},
		{"bad source", Recipe{Kind: "simplex", Stages: []Stage{{Op: "add", Source: &Recipe{}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.r.Build()
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Recipe{Kind: "simplex", Stages: []Stage{{Op: "clip", Min: 1, Max: 0}}}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage 1 (clip)")

	_, err = Recipe{Preset: "no-such-preset"}.Build()
	require.ErrorIs(t, err, noise.ErrUnknownPreset)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
recipe:
  kind: simplex
  stages:
    - op: scale
      facter: 0.5
`)))

	_, err := Decode(v, "recipe")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "facter")

	_, err = Decode(v, "missing")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestKinds(t *testing.T) {
	names := Kinds()
	assert.Contains(t, names, "simplex")
	assert.Contains(t, names, "opensimplex")
	assert.IsNonDecreasing(t, names)

	for _, k := range names {
		p, err := Recipe{Kind: k}.Build()
		require.NoError(t, err, k)
		assert.NotNil(t, p)
	}
}
