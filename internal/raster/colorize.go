package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Ramp maps gray levels onto evenly spaced color stops. Black lands on the first
// stop, white on the last.
type Ramp []color.NRGBA

// ParseRamp parses comma-separated hex colors such as "#1e3c72,#f4e3b2,fff".
func ParseRamp(s string) (Ramp, error) {
	var ramp Ramp
	for _, part := range strings.Split(s, ",") {
		c, err := parseHexColor(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ramp = append(ramp, c)
	}
	if len(ramp) < 2 {
		return nil, fmt.Errorf("ramp needs at least two colors, got %d", len(ramp))
	}
	return ramp, nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// At returns the ramp color for gray level g.
func (r Ramp) At(g uint8) color.NRGBA {
	if len(r) == 1 {
		return r[0]
	}
	pos := float64(g) / 255 * float64(len(r)-1)
	i := int(pos)
	if i >= len(r)-1 {
		return r[len(r)-1]
	}
	t := pos - float64(i)

	blend := func(a, b uint8) uint8 {
		return uint8(math.Round((1-t)*float64(a) + t*float64(b)))
	}
	a, b := r[i], r[i+1]
	return color.NRGBA{R: blend(a.R, b.R), G: blend(a.G, b.G), B: blend(a.B, b.B), A: blend(a.A, b.A)}
}

// Colorize maps every pixel of img through the ramp.
func Colorize(img *image.Gray, r Ramp) *image.NRGBA {
	var lut [256]color.NRGBA
	for g := range lut {
		lut[g] = r.At(uint8(g))
	}

	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetNRGBA(x, y, lut[img.GrayAt(x, y).Y])
		}
	}
	return dst
}
