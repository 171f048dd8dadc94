package tile

import (
	"testing"
)

func TestCoordsString(t *testing.T) {
	tests := []struct {
		coords   Coords
		expected string
	}{
		{Coords{Z: 13, X: 4297, Y: 2754}, "z13_x4297_y2754"},
		{Coords{Z: 0, X: 0, Y: 0}, "z0_x0_y0"},
		{Coords{Z: 18, X: 12345, Y: 67890}, "z18_x12345_y67890"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.coords.String()
			if result != tt.expected {
				t.Errorf("String() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestCoordsPaths(t *testing.T) {
	coords := Coords{Z: 13, X: 4297, Y: 2754}

	if got := coords.Path("png"); got != "z13_x4297_y2754.png" {
		t.Errorf("Path(png) = %s", got)
	}
	if got := coords.NestedPath("png"); got != "13/4297/2754.png" {
		t.Errorf("NestedPath(png) = %s", got)
	}
}

func TestCoordsValid(t *testing.T) {
	tests := []struct {
		coords Coords
		valid  bool
	}{
		{Coords{Z: 0, X: 0, Y: 0}, true},
		{Coords{Z: 0, X: 1, Y: 0}, false},
		{Coords{Z: 3, X: 7, Y: 7}, true},
		{Coords{Z: 3, X: 8, Y: 0}, false},
		{Coords{Z: 3, X: 0, Y: 8}, false},
		{Coords{Z: MaxZoom + 1, X: 0, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.coords.String(), func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestCoordsWindow(t *testing.T) {
	root := Coords{}.Window(1024)
	if root != (Window{MinX: 0, MinY: 0, MaxX: 1024, MaxY: 1024}) {
		t.Errorf("root window = %+v", root)
	}

	w := Coords{Z: 2, X: 1, Y: 3}.Window(1024)
	want := Window{MinX: 256, MinY: 768, MaxX: 512, MaxY: 1024}
	if w != want {
		t.Errorf("Window = %+v, want %+v", w, want)
	}
	if w.Width() != 256 || w.Height() != 256 {
		t.Errorf("size = %gx%g, want 256x256", w.Width(), w.Height())
	}

	// children tile their parent exactly
	parent := Coords{Z: 4, X: 5, Y: 9}.Window(1000)
	tl := Coords{Z: 5, X: 10, Y: 18}.Window(1000)
	br := Coords{Z: 5, X: 11, Y: 19}.Window(1000)
	if tl.MinX != parent.MinX || tl.MinY != parent.MinY || br.MaxX != parent.MaxX || br.MaxY != parent.MaxY {
		t.Errorf("children %+v %+v do not cover parent %+v", tl, br, parent)
	}
}

func TestCoordsBounds(t *testing.T) {
	bounds := Coords{Z: 0}.Bounds()
	if bounds[0] > -179.999 || bounds[2] < 179.999 {
		t.Errorf("z0 lon span = [%.4f, %.4f], want the whole world", bounds[0], bounds[2])
	}

	coords := Coords{Z: 13, X: 4297, Y: 2754}
	bounds = coords.Bounds()
	if bounds[0] >= bounds[2] {
		t.Errorf("minLon >= maxLon: %.6f >= %.6f", bounds[0], bounds[2])
	}
	if bounds[1] >= bounds[3] {
		t.Errorf("minLat >= maxLat: %.6f >= %.6f", bounds[1], bounds[3])
	}

	lon, lat := coords.Center()
	if lon < bounds[0] || lon > bounds[2] || lat < bounds[1] || lat > bounds[3] {
		t.Errorf("center (%.6f, %.6f) outside bounds %v", lon, lat, bounds)
	}
}

func TestParseCoords(t *testing.T) {
	tests := []struct {
		input    string
		expected Coords
		wantErr  bool
	}{
		{"z13_x4297_y2754", Coords{Z: 13, X: 4297, Y: 2754}, false},
		{"z0_x0_y0", Coords{Z: 0, X: 0, Y: 0}, false},
		{"invalid", Coords{}, true},
		{"z13_x4297", Coords{}, true},
		{"13_4297_2754", Coords{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseCoords(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCoords(%s) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseCoords(%s) unexpected error: %v", tt.input, err)
				return
			}
			if result != tt.expected {
				t.Errorf("ParseCoords(%s) = %+v, want %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseZXY(t *testing.T) {
	tests := []struct {
		input    string
		expected Coords
		wantErr  bool
	}{
		{"3/1/2", Coords{Z: 3, X: 1, Y: 2}, false},
		{"0/0/0", Coords{}, false},
		{"3/1", Coords{}, true},
		{"3/1/2/4", Coords{}, true},
		{"a/b/c", Coords{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseZXY(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseZXY(%s) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseZXY(%s) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseZXY(%s) = %+v, want %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTilesInBBox(t *testing.T) {
	bbox := [4]float64{9.7, 52.3, 9.9, 52.4}

	tiles := TilesInBBox(bbox, 0, 6)
	if len(tiles) != TileCount(bbox, 0, 6) {
		t.Errorf("TilesInBBox returned %d tiles, TileCount says %d", len(tiles), TileCount(bbox, 0, 6))
	}
	if tiles[0] != (Coords{}) {
		t.Errorf("first tile = %s, want z0_x0_y0", tiles[0])
	}

	for _, c := range tiles {
		if !c.Valid() {
			t.Errorf("tile %s is outside its zoom level", c)
		}
		b := c.Bounds()
		if b[2] < bbox[0] || b[0] > bbox[2] || b[3] < bbox[1] || b[1] > bbox[3] {
			t.Errorf("tile %s bounds %v miss bbox %v", c, b, bbox)
		}
	}
}
