package cmd

import (
	"context"
	"fmt"
	"image"

	"github.com/MeKo-Tech/noiseplane/internal/raster"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a window of the plane to a grayscale PNG",
	Long: `Render a window of the plane to a grayscale PNG. Pixel (i, j) samples
(origin-x + i*step, origin-y + j*step); the declared range of the plane maps to
black..white.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Int("width", 512, "Image width in samples")
	renderCmd.Flags().Int("height", 512, "Image height in samples")
	renderCmd.Flags().Float64("origin-x", 0, "Plane X coordinate of the top-left pixel")
	renderCmd.Flags().Float64("origin-y", 0, "Plane Y coordinate of the top-left pixel")
	renderCmd.Flags().Float64("step", 1, "Plane distance between neighbouring pixels")
	renderCmd.Flags().Float64("depth", 0, "Z coordinate of the slice (only with --use-3d)")
	renderCmd.Flags().Bool("use-3d", false, "Sample the plane in 3D at --depth")
	renderCmd.Flags().StringP("out", "o", "noise.png", "Output PNG path")
	renderCmd.Flags().Float32("blur", 0, "Gaussian blur sigma applied after sampling")
	renderCmd.Flags().Int("upscale", 1, "Integer magnification applied after sampling")
	renderCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")
	renderCmd.Flags().String("colors", "", "Color ramp from low to high values, e.g. \"#1e3c72,#f4e3b2\" (default grayscale)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"render.width", "width"},
		{"render.height", "height"},
		{"render.origin_x", "origin-x"},
		{"render.origin_y", "origin-y"},
		{"render.step", "step"},
		{"render.depth", "depth"},
		{"render.use_3d", "use-3d"},
		{"render.out", "out"},
		{"render.blur", "blur"},
		{"render.upscale", "upscale"},
		{"render.png_compression", "png-compression"},
		{"render.colors", "colors"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, renderCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	opts := raster.Options{
		Width:   viper.GetInt("render.width"),
		Height:  viper.GetInt("render.height"),
		OriginX: viper.GetFloat64("render.origin_x"),
		OriginY: viper.GetFloat64("render.origin_y"),
		Step:    viper.GetFloat64("render.step"),
		Depth:   viper.GetFloat64("render.depth"),
		Use3D:   viper.GetBool("render.use_3d"),
		Blur:    float32(viper.GetFloat64("render.blur")),
		Upscale: viper.GetInt("render.upscale"),
	}
	out := viper.GetString("render.out")

	compression, err := raster.ParseCompression(viper.GetString("render.png_compression"))
	if err != nil {
		return err
	}

	var ramp raster.Ramp
	if colors := viper.GetString("render.colors"); colors != "" {
		ramp, err = raster.ParseRamp(colors)
		if err != nil {
			return err
		}
	}

	p, r, err := loadPlane(cmd)
	if err != nil {
		return err
	}

	logger.Info("Rendering plane",
		"plane", r.Describe(),
		"seed", *r.Seed,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"origin", fmt.Sprintf("%g,%g", opts.OriginX, opts.OriginY),
		"step", opts.Step,
	)

	img, err := raster.Render(renderContext(cmd), p, opts)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	var encoded image.Image = img
	if ramp != nil {
		encoded = raster.Colorize(img, ramp)
	}
	if err := raster.WritePNG(out, encoded, compression); err != nil {
		return err
	}

	lo, hi := grayBounds(img)
	logger.Info("PNG written", "path", out, "bounds", img.Bounds().String(), "min_gray", lo, "max_gray", hi)
	return nil
}

// grayBounds returns the darkest and brightest gray level present.
func grayBounds(img *image.Gray) (lo, hi int) {
	h := raster.Histogram(img)
	lo, hi = -1, -1
	for level, n := range h {
		if n == 0 {
			continue
		}
		if lo < 0 {
			lo = level
		}
		hi = level
	}
	return lo, hi
}

// renderContext falls back to Background when a command runs without one.
func renderContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
