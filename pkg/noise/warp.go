package noise

// Warped displaces coordinates by a second plane before sampling the first.
type Warped struct {
	wrapped
	warp       Plane
	scale      float64
	multiplier float64
}

// Warp samples p at coord + multiplier·w(coord·scale). Each output axis reads w at a
// permuted, partly negated coordinate so the axes are displaced independently.
func Warp(p, w Plane, scale, multiplier float64) *Warped {
	return &Warped{wrapped: wrapped{in: p}, warp: w, scale: scale, multiplier: multiplier}
}

func (n *Warped) Noise1D(x float64) float64 {
	s, m := n.scale, n.multiplier
	return n.in.Noise1D(n.warp.Noise1D(x*s)*m + x)
}

func (n *Warped) Noise2D(x, y float64) float64 {
	s, m := n.scale, n.multiplier
	return n.in.Noise2D(
		n.warp.Noise2D(x*s, y*s)*m+x,
		n.warp.Noise2D(y*s, -x*s)*m+y)
}

func (n *Warped) Noise3D(x, y, z float64) float64 {
	s, m := n.scale, n.multiplier
	return n.in.Noise3D(
		n.warp.Noise3D(-x*s, y*s, z*s)*m+x,
		n.warp.Noise3D(y*s, -z*s, x*s)*m+y,
		n.warp.Noise3D(z*s, x*s, -y*s)*m+z)
}

// Caps reports 3D support only when both planes support it.
func (n *Warped) Caps() Caps {
	c := n.in.Caps()
	c.Dim3 = c.Dim3 && n.warp.Caps().Dim3
	return c
}
