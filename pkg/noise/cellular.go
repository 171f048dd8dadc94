package noise

import (
	"math"

	"github.com/MeKo-Tech/noiseplane/internal/lattice"
)

const farAway = 999999

// nearest2 scans the 3x3 cells around the rounded point. It returns the nearest
// feature cell and the first and second smallest distances.
func nearest2(seed int64, x, y float64) (xc, yc int64, f1, f2 float64) {
	xr := lattice.Round(x)
	yr := lattice.Round(y)
	f1, f2 = farAway, farAway

	for xi := xr - 1; xi <= xr+1; xi++ {
		for yi := yr - 1; yi <= yr+1; yi++ {
			ox, oy := lattice.Cell2(lattice.Hash2(seed, xi, yi))
			dx := float64(xi) - x + ox
			dy := float64(yi) - y + oy
			d := (math.Abs(dx) + math.Abs(dy)) + (dx*dx + dy*dy)

			f2 = math.Max(math.Min(f2, d), f1)
			if d < f1 {
				f1 = d
				xc, yc = xi, yi
			}
		}
	}
	return xc, yc, f1, f2
}

// nearest3 is the 3D form of nearest2.
func nearest3(seed int64, x, y, z float64) (xc, yc, zc int64, f1, f2 float64) {
	xr := lattice.Round(x)
	yr := lattice.Round(y)
	zr := lattice.Round(z)
	f1, f2 = farAway, farAway

	for xi := xr - 1; xi <= xr+1; xi++ {
		for yi := yr - 1; yi <= yr+1; yi++ {
			for zi := zr - 1; zi <= zr+1; zi++ {
				ox, oy, oz := lattice.Cell3(lattice.Hash3(seed, xi, yi, zi))
				dx := float64(xi) - x + ox
				dy := float64(yi) - y + oy
				dz := float64(zi) - z + oz
				d := (math.Abs(dx) + math.Abs(dy) + math.Abs(dz)) + (dx*dx + dy*dy + dz*dz)

				f2 = math.Max(math.Min(f2, d), f1)
				if d < f1 {
					f1 = d
					xc, yc, zc = xi, yi, zi
				}
			}
		}
	}
	return xc, yc, zc, f1, f2
}

// Cellular is Voronoi noise. Every sample returns the lattice value of the cell
// whose feature point is nearest, giving flat-shaded cells.
type Cellular struct {
	leaf
}

// NewCellular returns cellular noise for seed.
func NewCellular(seed int64) *Cellular {
	return &Cellular{leaf{seed: seed}}
}

func (c *Cellular) Noise1D(x float64) float64 {
	return c.Noise2D(x, 0)
}

func (c *Cellular) Noise2D(x, y float64) float64 {
	xc, yc, _, _ := nearest2(c.seed, x, y)
	return lattice.Value2(0, xc, yc)
}

func (c *Cellular) Noise3D(x, y, z float64) float64 {
	xc, yc, zc, _, _ := nearest3(c.seed, x, y, z)
	return lattice.Value3(0, xc, yc, zc)
}

// CellularHeight is the F2-F1 variant of cellular noise: zero-ish ridges along
// cell borders rising toward the feature points.
type CellularHeight struct {
	leaf
}

// NewCellularHeight returns height-style cellular noise for seed.
func NewCellularHeight(seed int64) *CellularHeight {
	return &CellularHeight{leaf{seed: seed}}
}

func (c *CellularHeight) Noise1D(x float64) float64 {
	return c.Noise2D(x, 0)
}

func (c *CellularHeight) Noise2D(x, y float64) float64 {
	_, _, f1, f2 := nearest2(c.seed, x, y)
	return f2 - f1 - 1
}

func (c *CellularHeight) Noise3D(x, y, z float64) float64 {
	_, _, _, f1, f2 := nearest3(c.seed, x, y, z)
	return f2 - f1 - 1
}

// Cellularized samples its input once per Voronoi cell, at the integer
// coordinates of the nearest feature cell.
type Cellularized struct {
	wrapped
	seed int64
}

// Cellularize breaks p into Voronoi cells whose layout is derived from seed.
func Cellularize(p Plane, seed int64) *Cellularized {
	return &Cellularized{wrapped: wrapped{in: p}, seed: seed}
}

func (c *Cellularized) Seed() int64 { return c.seed }

func (c *Cellularized) Noise1D(x float64) float64 {
	return c.Noise2D(x, 0)
}

func (c *Cellularized) Noise2D(x, y float64) float64 {
	xc, yc, _, _ := nearest2(c.seed, x, y)
	return c.in.Noise2D(float64(xc), float64(yc))
}

func (c *Cellularized) Noise3D(x, y, z float64) float64 {
	xc, yc, zc, _, _ := nearest3(c.seed, x, y, z)
	return c.in.Noise3D(float64(xc), float64(yc), float64(zc))
}
