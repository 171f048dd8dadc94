package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/MeKo-Tech/noiseplane/internal/mbtiles"
	"github.com/MeKo-Tech/noiseplane/internal/pipeline"
	"github.com/MeKo-Tech/noiseplane/internal/recipe"
	"github.com/MeKo-Tech/noiseplane/internal/tile"
	"github.com/MeKo-Tech/noiseplane/internal/worker"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// worldBBox covers every Web Mercator tile.
const worldBBox = "-180,-85.0511,180,85.0511"

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Render the plane as XYZ tiles",
	Long: `Render the plane as XYZ tiles into a folder or an MBTiles file.

The zoom 0 tile covers plane coordinates [0, world-size) on both axes; every zoom
level halves the tile edge. Without --bbox a single tile (--zoom/--x/--y) is rendered.`,
	Args: cobra.NoArgs,
	RunE: runTiles,
}

func init() {
	rootCmd.AddCommand(tilesCmd)

	// Single tile flags
	tilesCmd.Flags().IntP("zoom", "z", 0, "Zoom level (for single tile mode)")
	tilesCmd.Flags().IntP("x", "x", 0, "X tile coordinate (for single tile mode)")
	tilesCmd.Flags().IntP("y", "y", 0, "Y tile coordinate (for single tile mode)")

	// Batch flags
	tilesCmd.Flags().String("bbox", "", "Bounding box: minLon,minLat,maxLon,maxLat (\"world\" for every tile)")
	tilesCmd.Flags().Int("zoom-min", 0, "Minimum zoom level for batch rendering")
	tilesCmd.Flags().Int("zoom-max", 0, "Maximum zoom level for batch rendering")
	tilesCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	tilesCmd.Flags().Bool("progress", true, "Show progress bar during batch rendering")
	tilesCmd.Flags().Bool("allow-failures", false, "Exit successfully even if some tiles fail")

	// Common flags
	tilesCmd.Flags().Bool("force", false, "Force re-rendering even if tile exists")
	tilesCmd.Flags().Int("tile-size", 256, "Tile size in pixels")
	tilesCmd.Flags().Float64("world-size", pipeline.DefaultWorldSize, "Plane units covered by the zoom 0 tile")
	tilesCmd.Flags().Float32("blur", 0, "Gaussian blur sigma applied to every tile")
	tilesCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	// Output format flags
	tilesCmd.Flags().String("format", "folder", "Output format: folder or mbtiles")
	tilesCmd.Flags().String("output-file", "", "Output file path for MBTiles format (e.g., noise.mbtiles)")
	tilesCmd.Flags().String("folder-structure", "flat", "Folder structure for folder format: flat (z{z}_x{x}_y{y}.png) or nested ({z}/{x}/{y}.png)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"tiles.zoom", "zoom"},
		{"tiles.x", "x"},
		{"tiles.y", "y"},
		{"tiles.bbox", "bbox"},
		{"tiles.zoom_min", "zoom-min"},
		{"tiles.zoom_max", "zoom-max"},
		{"tiles.workers", "workers"},
		{"tiles.progress", "progress"},
		{"tiles.allow_failures", "allow-failures"},
		{"tiles.force", "force"},
		{"tiles.tile_size", "tile-size"},
		{"tiles.world_size", "world-size"},
		{"tiles.blur", "blur"},
		{"tiles.png_compression", "png-compression"},
		{"tiles.format", "format"},
		{"tiles.output_file", "output-file"},
		{"tiles.folder_structure", "folder-structure"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, tilesCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

// tilesJob is everything a tiles run needs once flags are read.
type tilesJob struct {
	plane           noise.Plane
	recipe          recipe.Recipe
	bbox            string
	outputDir       string
	outputFile      string
	format          string
	folderStructure string
	pngCompression  string
	zoomMin         int
	zoomMax         int
	workers         int
	tileSize        int
	worldSize       float64
	blur            float32
	showProgress    bool
	force           bool
	allowFailures   bool
}

func runTiles(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	job := tilesJob{
		bbox:            viper.GetString("tiles.bbox"),
		outputDir:       viper.GetString("output-dir"),
		outputFile:      viper.GetString("tiles.output_file"),
		format:          viper.GetString("tiles.format"),
		folderStructure: viper.GetString("tiles.folder_structure"),
		pngCompression:  viper.GetString("tiles.png_compression"),
		zoomMin:         viper.GetInt("tiles.zoom_min"),
		zoomMax:         viper.GetInt("tiles.zoom_max"),
		workers:         viper.GetInt("tiles.workers"),
		tileSize:        viper.GetInt("tiles.tile_size"),
		worldSize:       viper.GetFloat64("tiles.world_size"),
		blur:            float32(viper.GetFloat64("tiles.blur")),
		showProgress:    viper.GetBool("tiles.progress"),
		force:           viper.GetBool("tiles.force"),
		allowFailures:   viper.GetBool("tiles.allow_failures"),
	}

	if job.format != "folder" && job.format != "mbtiles" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'mbtiles'", job.format)
	}
	if job.format == "mbtiles" {
		if job.outputFile == "" {
			return fmt.Errorf("--output-file is required when using --format=mbtiles")
		}
		if job.bbox == "" {
			return fmt.Errorf("mbtiles format requires batch rendering (use --bbox)")
		}
	}

	var err error
	job.plane, job.recipe, err = loadPlane(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(renderContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if job.bbox != "" {
		return runBatchTiles(ctx, job)
	}

	coords := tile.NewCoords(
		uint32(viper.GetInt("tiles.zoom")),
		uint32(viper.GetInt("tiles.x")),
		uint32(viper.GetInt("tiles.y")),
	)
	return runSingleTile(ctx, job, coords)
}

func runSingleTile(ctx context.Context, job tilesJob, coords tile.Coords) error {
	if !coords.Valid() {
		return fmt.Errorf("invalid tile %s", coords)
	}

	logger.Info("Starting tile rendering",
		"coords", coords.String(),
		"output_dir", job.outputDir,
		"plane", job.recipe.Describe(),
		"tile_size", job.tileSize,
		"force", job.force,
	)

	gen, err := pipeline.NewGenerator(job.plane, job.outputDir, job.tileSize, logger, pipeline.GeneratorOptions{
		PNGCompression:  job.pngCompression,
		FolderStructure: job.folderStructure,
		WorldSize:       job.worldSize,
		Blur:            job.blur,
	})
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	path, err := gen.Generate(ctx, coords, job.force)
	if err != nil {
		return fmt.Errorf("failed to render tile: %w", err)
	}

	logger.Info("Tile rendered", "coords", coords.String(), "path", path)
	return nil
}

func runBatchTiles(ctx context.Context, job tilesJob) error {
	bboxStr := job.bbox
	if bboxStr == "world" {
		bboxStr = worldBBox
	}
	bbox, err := parseBBox(bboxStr)
	if err != nil {
		return fmt.Errorf("invalid bbox: %w", err)
	}

	if job.zoomMin < 0 || job.zoomMin > job.zoomMax {
		return fmt.Errorf("--zoom-min (%d) must be between 0 and --zoom-max (%d)", job.zoomMin, job.zoomMax)
	}
	if job.zoomMax > tile.MaxZoom {
		return fmt.Errorf("--zoom-max (%d) must be <= %d", job.zoomMax, tile.MaxZoom)
	}

	workers := job.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tiles := tile.TilesInBBox(bbox, job.zoomMin, job.zoomMax)

	logger.Info("Starting batch tile rendering",
		"bbox", bboxStr,
		"zoom_range", fmt.Sprintf("%d-%d", job.zoomMin, job.zoomMax),
		"tiles", len(tiles),
		"workers", workers,
		"plane", job.recipe.Describe(),
		"format", job.format,
	)

	var writer *mbtiles.Writer
	opts := pipeline.GeneratorOptions{
		PNGCompression:  job.pngCompression,
		FolderStructure: job.folderStructure,
		WorldSize:       job.worldSize,
		Blur:            job.blur,
	}
	if job.format == "mbtiles" {
		writer, err = mbtiles.New(job.outputFile, tilesMetadata(job, bbox))
		if err != nil {
			return fmt.Errorf("failed to create MBTiles writer: %w", err)
		}
		defer writer.Close()
		opts.TileWriter = writer
	}

	gen, err := pipeline.NewGenerator(job.plane, job.outputDir, job.tileSize, logger, opts)
	if err != nil {
		return fmt.Errorf("failed to init generator: %w", err)
	}

	tasks := worker.Tasks(tiles, job.force)
	progress := worker.NewProgress(len(tasks), job.showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Generator:  gen,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	failed := worker.Failed(results)
	for _, r := range failed {
		logger.Error("Tile rendering failed", "coords", r.Task.Coords.String(), "error", r.Err)
	}
	logger.Info(progress.Summary())

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("failed to flush MBTiles: %w", err)
		}
		logger.Info("MBTiles written", "path", job.outputFile, "tiles", writer.Written())
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tile rendering interrupted: %w", err)
	}
	if len(failed) > 0 {
		if !job.allowFailures {
			return fmt.Errorf("%d tiles failed to render", len(failed))
		}
		logger.Warn("Some tiles failed to render, continuing due to --allow-failures", "failed_count", len(failed))
	}
	return nil
}

func tilesMetadata(job tilesJob, bbox [4]float64) mbtiles.Metadata {
	seed := int64(0)
	if job.recipe.Seed != nil {
		seed = *job.recipe.Seed
	}
	return mbtiles.Metadata{
		Name:        "noiseplane",
		Format:      "png",
		Description: fmt.Sprintf("Procedural noise %s, world size %g", job.recipe.Describe(), job.worldSize),
		Type:        "overlay",
		Version:     "1.0",
		Generator:   job.recipe.Describe(),
		Bounds:      bbox,
		Center: [3]float64{
			(bbox[0] + bbox[2]) / 2,
			(bbox[1] + bbox[3]) / 2,
			float64((job.zoomMin + job.zoomMax) / 2),
		},
		MinZoom: job.zoomMin,
		MaxZoom: job.zoomMax,
		Seed:    seed,
		HasSeed: job.recipe.Seed != nil,
	}
}

// parseBBox parses a bounding box string "minLon,minLat,maxLon,maxLat" into [4]float64.
func parseBBox(s string) ([4]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return [4]float64{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}

	var bbox [4]float64
	for i, part := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [4]float64{}, fmt.Errorf("invalid number at position %d: %w", i, err)
		}
		bbox[i] = val
	}

	if bbox[0] >= bbox[2] {
		return [4]float64{}, fmt.Errorf("minLon (%.4f) must be < maxLon (%.4f)", bbox[0], bbox[2])
	}
	if bbox[1] >= bbox[3] {
		return [4]float64{}, fmt.Errorf("minLat (%.4f) must be < maxLat (%.4f)", bbox[1], bbox[3])
	}

	return bbox, nil
}
