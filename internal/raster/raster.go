// Package raster renders a window of a plane into grayscale images.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/disintegration/gift"
	xdraw "golang.org/x/image/draw"
)

// Options describes the part of plane space drawn into the image.
type Options struct {
	Width   int
	Height  int
	OriginX float64 // plane coordinate of the top-left pixel
	OriginY float64
	Step    float64 // plane units per pixel
	Depth   float64 // z slice sampled when Use3D is set
	Use3D   bool
	Blur    float32 // gaussian sigma, 0 disables
	Upscale int     // integer magnification, 0 or 1 disables
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", o.Width, o.Height)
	}
	if !(o.Step > 0) || math.IsInf(o.Step, 0) {
		return fmt.Errorf("step must be a positive finite number, got %g", o.Step)
	}
	if o.Blur < 0 {
		return fmt.Errorf("blur sigma must not be negative, got %g", o.Blur)
	}
	if o.Upscale < 0 {
		return fmt.Errorf("upscale must not be negative, got %d", o.Upscale)
	}
	return nil
}

// Render samples p once per pixel and maps the declared range of p onto black..white.
// Pixel (i, j) samples (OriginX + i·Step, OriginY + j·Step), so windows that share an
// edge line up exactly. The context is checked between rows.
func Render(ctx context.Context, p noise.Plane, opts Options) (*image.Gray, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := p.Range()
	use3D := opts.Use3D && p.Caps().Dim3
	img := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))

	for j := 0; j < opts.Height; j++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		y := opts.OriginY + float64(j)*opts.Step
		row := img.Pix[j*img.Stride : j*img.Stride+opts.Width]
		for i := range row {
			x := opts.OriginX + float64(i)*opts.Step
			var v float64
			if use3D {
				v = p.Noise3D(x, y, opts.Depth)
			} else {
				v = p.Noise2D(x, y)
			}
			row[i] = Shade(v, rng)
		}
	}

	return Postprocess(img, opts.Blur, opts.Upscale), nil
}

// Shade maps v from r onto a gray level. Values outside r are clamped, NaN is black
// and a degenerate range renders mid gray.
func Shade(v float64, r noise.Range) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	if r.Degenerate() {
		return 128
	}
	t := (v - r.Min) / (r.Max - r.Min)
	t = math.Max(0, math.Min(1, t))
	return uint8(math.Round(t * 255))
}

// Postprocess softens the image with a gaussian blur and magnifies it by an integer factor.
func Postprocess(img *image.Gray, blur float32, upscale int) *image.Gray {
	if blur > 0 {
		g := gift.New(gift.GaussianBlur(blur))
		dst := image.NewGray(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
	}

	if upscale > 1 {
		b := img.Bounds()
		dst := image.NewGray(image.Rect(0, 0, b.Dx()*upscale, b.Dy()*upscale))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	return img
}

// Histogram counts pixels per gray level.
func Histogram(img *image.Gray) [256]int {
	var h [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h[img.GrayAt(x, y).Y]++
		}
	}
	return h
}

// ParseCompression maps the CLI compression names onto png levels.
func ParseCompression(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	case "none":
		return png.NoCompression, nil
	default:
		return 0, fmt.Errorf("unknown png compression %q (default, speed, best, none)", name)
	}
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, img)
}

// WritePNG writes img to path.
func WritePNG(path string, img image.Image, level png.CompressionLevel) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, img, level); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
