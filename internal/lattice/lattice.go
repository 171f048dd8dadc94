// Package lattice provides the seeded integer-lattice hash kernel shared by every
// noise generator. All functions are pure: identical inputs always produce identical
// outputs, on every platform.
//
// Integer arithmetic wraps at 64 bits. The overflow is part of the hash.
package lattice

import "math"

// Axis primes mixed into the hash.
const (
	PrimeX int64 = 1619
	PrimeY int64 = 31337
	PrimeZ int64 = 6971
	PrimeW int64 = 1013
)

const mix = 60493

func finish(h int64) int64 {
	h = h * h * h * mix
	return (h >> 13) ^ h
}

func value(n int64) float64 {
	return float64(n*n*n*mix) / float64(math.MaxInt64)
}

// Hash1 hashes a 1D lattice coordinate.
func Hash1(seed, x int64) int64 {
	return finish(seed ^ PrimeX*x)
}

// Hash2 hashes a 2D lattice coordinate.
func Hash2(seed, x, y int64) int64 {
	h := seed
	h ^= PrimeX * x
	h ^= PrimeY * y
	return finish(h)
}

// Hash3 hashes a 3D lattice coordinate.
func Hash3(seed, x, y, z int64) int64 {
	h := seed
	h ^= PrimeX * x
	h ^= PrimeY * y
	h ^= PrimeZ * z
	return finish(h)
}

// Hash4 hashes a 4D lattice coordinate.
func Hash4(seed, x, y, z, w int64) int64 {
	h := seed
	h ^= PrimeX * x
	h ^= PrimeY * y
	h ^= PrimeZ * z
	h ^= PrimeW * w
	return finish(h)
}

// Value1 returns a signed pseudo-random value, roughly in [-1,1], for a 1D lattice point.
func Value1(seed, x int64) float64 {
	return value(seed ^ PrimeX*x)
}

// Value2 returns the lattice value for a 2D lattice point.
func Value2(seed, x, y int64) float64 {
	n := seed
	n ^= PrimeX * x
	n ^= PrimeY * y
	return value(n)
}

// Value3 returns the lattice value for a 3D lattice point.
func Value3(seed, x, y, z int64) float64 {
	n := seed
	n ^= PrimeX * x
	n ^= PrimeY * y
	n ^= PrimeZ * z
	return value(n)
}

// Grad1 dots the displacement with the hashed 1D gradient.
func Grad1(seed, x int64, xd float64) float64 {
	return xd * grad1[Hash1(seed, x)&2]
}

// Grad2 dots the displacement with the hashed 2D gradient.
func Grad2(seed, x, y int64, xd, yd float64) float64 {
	g := grad2[Hash2(seed, x, y)&7]
	return xd*g[0] + yd*g[1]
}

// Grad3 dots the displacement with the hashed 3D gradient.
func Grad3(seed, x, y, z int64, xd, yd, zd float64) float64 {
	g := grad3[Hash3(seed, x, y, z)&15]
	return xd*g[0] + yd*g[1] + zd*g[2]
}

// Cell2 returns the feature point offset selected by a 2D hash.
func Cell2(hash int64) (float64, float64) {
	c := cell2[hash&255]
	return float64(c[0]), float64(c[1])
}

// Cell3 returns the feature point offset selected by a 3D hash.
func Cell3(hash int64) (float64, float64, float64) {
	c := cell3[hash&255]
	return float64(c[0]), float64(c[1]), float64(c[2])
}

// FastFloor truncates toward zero and steps down once for negative input.
// Negative integers therefore land one cell lower than math.Floor; generators
// stay continuous because the blend weight reaches 1 at that point.
func FastFloor(f float64) int64 {
	if f >= 0 {
		return int64(f)
	}
	return int64(f) - 1
}

// Round rounds half away from zero.
func Round(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}

// Ease is the cubic hermite fade t²(3−2t).
func Ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

// FoldBits turns the bit pattern of f into a lattice key.
func FoldBits(f float64) int64 {
	i := int64(math.Float64bits(f))
	return i ^ (i >> 16)
}
