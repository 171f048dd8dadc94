// Package mbtiles provides MBTiles format support for reading and writing tile databases.
package mbtiles

import (
	"strconv"
	"strings"
)

// Metadata contains MBTiles metadata fields.
type Metadata struct {
	Name        string // Human-readable tileset identifier
	Format      string // Tile data type (png, jpg, webp)
	Description string
	Type        string // "baselayer" or "overlay"
	Version     string
	Generator   string // Preset, kind or recipe the tiles were rendered from
	Bounds      [4]float64
	Center      [3]float64
	MinZoom     int
	MaxZoom     int
	Seed        int64
	HasSeed     bool
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	set := func(key, value string) {
		if value != "" {
			result[key] = value
		}
	}
	set("name", m.Name)
	set("format", m.Format)
	set("description", m.Description)
	set("type", m.Type)
	set("version", m.Version)
	set("generator", m.Generator)

	// zoom 0 is a legitimate minimum, so zooms are written whenever a range is set
	if m.MaxZoom > 0 || m.MinZoom > 0 {
		result["minzoom"] = strconv.Itoa(m.MinZoom)
		result["maxzoom"] = strconv.Itoa(m.MaxZoom)
	}
	if m.Bounds != [4]float64{} {
		result["bounds"] = joinFloats(m.Bounds[:])
	}
	if m.Center != [3]float64{} {
		result["center"] = joinFloats(m.Center[:2]) + "," + strconv.Itoa(int(m.Center[2]))
	}
	if m.HasSeed {
		result["seed"] = strconv.FormatInt(m.Seed, 10)
	}

	return result
}

// metadataFromMap is the inverse of ToMap. Unparseable numeric fields are left zero.
func metadataFromMap(values map[string]string) Metadata {
	meta := Metadata{
		Name:        values["name"],
		Format:      values["format"],
		Description: values["description"],
		Type:        values["type"],
		Version:     values["version"],
		Generator:   values["generator"],
	}

	if v, ok := values["minzoom"]; ok {
		meta.MinZoom, _ = strconv.Atoi(v)
	}
	if v, ok := values["maxzoom"]; ok {
		meta.MaxZoom, _ = strconv.Atoi(v)
	}
	if v, ok := values["seed"]; ok {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			meta.Seed, meta.HasSeed = s, true
		}
	}
	if v, ok := values["bounds"]; ok {
		splitFloats(v, meta.Bounds[:])
	}
	if v, ok := values["center"]; ok {
		splitFloats(v, meta.Center[:])
	}

	return meta
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return strings.Join(parts, ",")
}

// splitFloats fills dst from a comma separated list when the lengths match.
func splitFloats(s string, dst []float64) {
	parts := strings.Split(s, ",")
	if len(parts) != len(dst) {
		return
	}
	for i, part := range parts {
		if f, err := strconv.ParseFloat(strings.TrimSpace(part), 64); err == nil {
			dst[i] = f
		}
	}
}
