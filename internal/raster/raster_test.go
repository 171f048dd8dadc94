package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMapsRangeToGray(t *testing.T) {
	ramp := noise.Func2D(func(x, _ float64) float64 { return x }).WithRange(noise.Range{Min: 0, Max: 10})

	img, err := Render(context.Background(), ramp, Options{Width: 11, Height: 2, Step: 1})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 11, 2), img.Bounds())

	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(5, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(10, 0).Y)
}

func TestRenderWindowsLineUp(t *testing.T) {
	p := noise.Scale(noise.NewSimplex(3), 0.1)

	whole, err := Render(context.Background(), p, Options{Width: 16, Height: 4, OriginX: -3, OriginY: 2, Step: 0.5})
	require.NoError(t, err)
	right, err := Render(context.Background(), p, Options{Width: 8, Height: 4, OriginX: 1, OriginY: 2, Step: 0.5})
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, whole.GrayAt(x+8, y), right.GrayAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestRenderDepthSlice(t *testing.T) {
	p := noise.Func3D(func(_, _, z float64) float64 { return z })

	flat, err := Render(context.Background(), p, Options{Width: 1, Height: 1, Step: 1, Depth: 1})
	require.NoError(t, err)
	deep, err := Render(context.Background(), p, Options{Width: 1, Height: 1, Step: 1, Depth: 1, Use3D: true})
	require.NoError(t, err)

	// 2D sampling of a 3D func sees z = 0
	assert.Equal(t, uint8(128), flat.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), deep.GrayAt(0, 0).Y)
}

func TestRenderInvalidOptions(t *testing.T) {
	p := noise.NewPerlin(1)
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: 0, Height: 4, Step: 1}},
		{"zero step", Options{Width: 4, Height: 4}},
		{"nan step", Options{Width: 4, Height: 4, Step: math.NaN()}},
		{"negative blur", Options{Width: 4, Height: 4, Step: 1, Blur: -1}},
		{"negative upscale", Options{Width: 4, Height: 4, Step: 1, Upscale: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(context.Background(), p, tt.opts)
			require.Error(t, err)
		})
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Render(ctx, noise.NewSimplex(1), Options{Width: 4, Height: 4, Step: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPostprocess(t *testing.T) {
	img, err := Render(context.Background(), noise.Constant(0.3), Options{Width: 6, Height: 5, Step: 1})
	require.NoError(t, err)

	soft := Postprocess(img, 1.5, 0)
	require.Equal(t, img.Bounds(), soft.Bounds())

	big := Postprocess(img, 0, 3)
	require.Equal(t, image.Rect(0, 0, 18, 15), big.Bounds())

	for _, out := range []*image.Gray{soft, big} {
		b := out.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				require.InDelta(t, 128, int(out.GrayAt(x, y).Y), 1)
			}
		}
	}

	assert.Same(t, img, Postprocess(img, 0, 1))
}

func TestShade(t *testing.T) {
	assert.Equal(t, uint8(0), Shade(-1, noise.Unit))
	assert.Equal(t, uint8(255), Shade(1, noise.Unit))
	assert.Equal(t, uint8(255), Shade(4, noise.Unit))
	assert.Equal(t, uint8(0), Shade(-4, noise.Unit))
	assert.Equal(t, uint8(0), Shade(math.NaN(), noise.Unit))
	assert.Equal(t, uint8(128), Shade(2, noise.Range{Min: 2, Max: 2}))
}

func TestHistogram(t *testing.T) {
	img, err := Render(context.Background(), noise.NewFlat(0), Options{Width: 3, Height: 3, Step: 1})
	require.NoError(t, err)

	h := Histogram(img)
	assert.Equal(t, 9, h[128])
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name    string
		want    png.CompressionLevel
		wantErr bool
	}{
		{"", png.DefaultCompression, false},
		{"default", png.DefaultCompression, false},
		{"speed", png.BestSpeed, false},
		{"best", png.BestCompression, false},
		{"none", png.NoCompression, false},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompression(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img, err := Render(context.Background(), noise.NewValue(5), Options{Width: 10, Height: 7, Step: 0.3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, png.BestSpeed))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)

	gray, ok := decoded.(*image.Gray)
	require.True(t, ok, "decoded %T", decoded)
	assert.Equal(t, img.Pix, gray.Pix)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, img, png.DefaultCompression))
}

func TestParseRamp(t *testing.T) {
	r, err := ParseRamp("#000000, fff")
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, r[1])

	for _, bad := range []string{"#000", "#000,#12", "#000,#zzzzzz", ""} {
		_, err := ParseRamp(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorize(t *testing.T) {
	ramp := Ramp{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
	}
	assert.Equal(t, ramp[0], ramp.At(0))
	assert.Equal(t, ramp[2], ramp.At(255))
	assert.Equal(t, color.NRGBA{R: 0, G: 128, B: 127, A: 255}, ramp.At(64))

	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(1, 0, color.Gray{Y: 255})
	out := Colorize(img, ramp)
	assert.Equal(t, ramp[0], out.NRGBAAt(0, 0))
	assert.Equal(t, ramp[2], out.NRGBAAt(1, 0))
}
