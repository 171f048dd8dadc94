package tile

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// MaxZoom is the deepest zoom level tiles are rendered at.
const MaxZoom = 24

// Coords represents a tile coordinate in the Web Mercator tile system (z/x/y)
type Coords struct {
	Z uint32 // Zoom level
	X uint32 // X coordinate (column)
	Y uint32 // Y coordinate (row)
}

// String returns the tile coordinate as a string in format "z{zoom}_x{x}_y{y}"
func (c Coords) String() string {
	return fmt.Sprintf("z%d_x%d_y%d", c.Z, c.X, c.Y)
}

// Path returns the flat file name for this tile
func (c Coords) Path(extension string) string {
	return fmt.Sprintf("%s.%s", c.String(), extension)
}

// NestedPath returns the {z}/{x}/{y}.{ext} path for this tile
func (c Coords) NestedPath(extension string) string {
	return fmt.Sprintf("%d/%d/%d.%s", c.Z, c.X, c.Y, extension)
}

// Valid reports whether the column and row exist at the zoom level.
func (c Coords) Valid() bool {
	if c.Z > MaxZoom {
		return false
	}
	n := uint32(1) << c.Z
	return c.X < n && c.Y < n
}

// Tile returns the maptile.Tile for this coordinate
func (c Coords) Tile() maptile.Tile {
	return maptile.New(c.X, c.Y, maptile.Zoom(c.Z))
}

// Bounds returns the geographic bounding box for this tile in WGS84 (EPSG:4326)
// Returns [minLon, minLat, maxLon, maxLat]
func (c Coords) Bounds() [4]float64 {
	bound := c.Tile().Bound()

	return [4]float64{
		bound.Min.Lon(),
		bound.Min.Lat(),
		bound.Max.Lon(),
		bound.Max.Lat(),
	}
}

// Center returns the center point of the tile in WGS84 (lon, lat)
func (c Coords) Center() (float64, float64) {
	bounds := c.Bounds()
	return (bounds[0] + bounds[2]) / 2.0, (bounds[1] + bounds[3]) / 2.0
}

// Window is an axis-aligned area of plane coordinates. Y grows downward,
// matching tile rows.
type Window struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the window.
func (w Window) Width() float64 { return w.MaxX - w.MinX }

// Height returns the vertical extent of the window.
func (w Window) Height() float64 { return w.MaxY - w.MinY }

// Window maps the tile onto plane coordinates. The whole zoom 0 tile covers
// [0, worldSize) on both axes and every zoom level halves the tile edge.
func (c Coords) Window(worldSize float64) Window {
	edge := worldSize / float64(uint64(1)<<c.Z)
	return Window{
		MinX: float64(c.X) * edge,
		MinY: float64(c.Y) * edge,
		MaxX: float64(c.X+1) * edge,
		MaxY: float64(c.Y+1) * edge,
	}
}

// NewCoords creates a new Coords from zoom, x, y values
func NewCoords(z, x, y uint32) Coords {
	return Coords{Z: z, X: x, Y: y}
}

// ParseCoords parses a tile string like "z13_x4297_y2754" into Coords
func ParseCoords(s string) (Coords, error) {
	var c Coords
	_, err := fmt.Sscanf(s, "z%d_x%d_y%d", &c.Z, &c.X, &c.Y)
	if err != nil {
		return c, fmt.Errorf("invalid tile coordinate format: %s", s)
	}
	return c, nil
}

// ParseZXY parses the "{z}/{x}/{y}" form used in tile URLs.
func ParseZXY(s string) (Coords, error) {
	var c Coords
	var rest string
	n, _ := fmt.Sscanf(s, "%d/%d/%d%s", &c.Z, &c.X, &c.Y, &rest)
	if n != 3 {
		return c, fmt.Errorf("invalid tile path: %s", s)
	}
	return c, nil
}

// TilesInBBox returns all tile coordinates within a bounding box across a zoom range.
// bbox: [minLon, minLat, maxLon, maxLat] in WGS84
func TilesInBBox(bbox [4]float64, zoomMin, zoomMax int) []Coords {
	tiles := make([]Coords, 0, TileCount(bbox, zoomMin, zoomMax))

	for z := zoomMin; z <= zoomMax; z++ {
		minX, minY, maxX, maxY := tileSpan(bbox, z)
		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				tiles = append(tiles, NewCoords(uint32(z), x, y))
			}
		}
	}

	return tiles
}

// TileCount returns the number of tiles in a bounding box across a zoom range.
func TileCount(bbox [4]float64, zoomMin, zoomMax int) int {
	count := 0
	for z := zoomMin; z <= zoomMax; z++ {
		minX, minY, maxX, maxY := tileSpan(bbox, z)
		count += int(maxX-minX+1) * int(maxY-minY+1)
	}
	return count
}

// tileSpan returns the inclusive column and row span of bbox at zoom z.
func tileSpan(bbox [4]float64, z int) (minX, minY, maxX, maxY uint32) {
	zoom := maptile.Zoom(z)
	a := maptile.At(orb.Point{bbox[0], bbox[1]}, zoom)
	b := maptile.At(orb.Point{bbox[2], bbox[3]}, zoom)

	minX, maxX = a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	// rows grow southward, so the max latitude gives the smaller row
	minY, maxY = a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return minX, minY, maxX, maxY
}
