package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/MeKo-Tech/noiseplane/internal/mbtiles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert folder tiles to MBTiles format",
	Long:  `Convert a tile folder written by "tiles --format folder" (flat or nested) to an MBTiles database.`,
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("input-dir", "./tiles", "Input directory containing tiles")
	convertCmd.Flags().StringP("output", "o", "", "Output MBTiles file path (required)")
	convertCmd.Flags().String("name", "noiseplane", "Tileset name")
	convertCmd.Flags().String("description", "Procedural noise tiles", "Tileset description")
	convertCmd.Flags().String("bounds", "", "Bounding box: minLon,minLat,maxLon,maxLat (optional)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.input_dir", "input-dir"},
		{"convert.output", "output"},
		{"convert.name", "name"},
		{"convert.description", "description"},
		{"convert.bounds", "bounds"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	var bounds [4]float64
	if s := viper.GetString("convert.bounds"); s != "" {
		parsed, err := parseBBox(s)
		if err != nil {
			return fmt.Errorf("invalid bounds: %w", err)
		}
		bounds = parsed
	}

	n, err := convertFolder(
		viper.GetString("convert.input_dir"),
		viper.GetString("convert.output"),
		mbtiles.Metadata{
			Name:        viper.GetString("convert.name"),
			Description: viper.GetString("convert.description"),
			Bounds:      bounds,
		},
	)
	if err != nil {
		return err
	}
	logger.Info("Conversion complete", "output", viper.GetString("convert.output"), "tiles", n)
	return nil
}

// convertFolder copies every tile below inputDir into a new MBTiles file. Zoom range,
// format and center are filled in from the tiles found.
func convertFolder(inputDir, outputFile string, metadata mbtiles.Metadata) (int, error) {
	if outputFile == "" {
		return 0, fmt.Errorf("--output is required")
	}
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return 0, fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	logger.Info("Converting folder tiles to MBTiles", "input_dir", inputDir, "output", outputFile)

	tiles, minZoom, maxZoom, err := scanTilesDirectory(inputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan tiles directory: %w", err)
	}
	if len(tiles) == 0 {
		return 0, fmt.Errorf("no tiles found in %s", inputDir)
	}
	logger.Info("Found tiles", "count", len(tiles), "min_zoom", minZoom, "max_zoom", maxZoom)

	metadata.Format = "png"
	metadata.Type = "overlay"
	metadata.Version = "1.0"
	metadata.MinZoom = minZoom
	metadata.MaxZoom = maxZoom
	if metadata.Bounds != [4]float64{} {
		metadata.Center = [3]float64{
			(metadata.Bounds[0] + metadata.Bounds[2]) / 2,
			(metadata.Bounds[1] + metadata.Bounds[3]) / 2,
			float64((minZoom + maxZoom) / 2),
		}
	}

	writer, err := mbtiles.New(outputFile, metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to create MBTiles writer: %w", err)
	}

	converted := 0
	for _, ti := range tiles {
		data, err := os.ReadFile(ti.path)
		if err != nil {
			logger.Error("Failed to read tile", "path", ti.path, "error", err)
			continue
		}
		if err := writer.WriteTile(ti.z, ti.x, ti.y, data); err != nil {
			logger.Error("Failed to write tile", "coords", fmt.Sprintf("%d/%d/%d", ti.z, ti.x, ti.y), "error", err)
			continue
		}

		converted++
		if converted%100 == 0 {
			logger.Info("Progress", "converted", converted, "total", len(tiles))
		}
	}

	if err := writer.Close(); err != nil {
		return converted, fmt.Errorf("failed to finish MBTiles: %w", err)
	}
	return converted, nil
}

type tileInfo struct {
	z, x, y int
	path    string
}

var (
	// z{zoom}_x{x}_y{y}.png
	flatTilePattern = regexp.MustCompile(`^z(\d+)_x(\d+)_y(\d+)\.png$`)
	// {z}/{x}/{y}.png relative to the input directory
	nestedTilePattern = regexp.MustCompile(`^(\d+)/(\d+)/(\d+)\.png$`)
)

// scanTilesDirectory finds flat and nested tiles below dir.
func scanTilesDirectory(dir string) ([]tileInfo, int, int, error) {
	var tiles []tileInfo
	minZoom := 999
	maxZoom := 0

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := flatTilePattern.FindStringSubmatch(d.Name())
		if matches == nil {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return nil
			}
			matches = nestedTilePattern.FindStringSubmatch(filepath.ToSlash(rel))
		}
		if matches == nil {
			return nil
		}

		z, _ := strconv.Atoi(matches[1])
		x, _ := strconv.Atoi(matches[2])
		y, _ := strconv.Atoi(matches[3])
		tiles = append(tiles, tileInfo{z: z, x: x, y: y, path: path})

		minZoom = min(minZoom, z)
		maxZoom = max(maxZoom, z)
		return nil
	})
	if err != nil {
		return nil, 0, 0, err
	}

	if len(tiles) == 0 {
		minZoom = 0
		maxZoom = 0
	}

	return tiles, minZoom, maxZoom, nil
}
