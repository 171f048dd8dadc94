package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/MeKo-Tech/noiseplane/internal/pipeline"
	"github.com/MeKo-Tech/noiseplane/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve plane tiles rendered on demand (or from an MBTiles file)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("mbtiles", "", "Serve pre-rendered tiles from this MBTiles file instead of rendering")
	serveCmd.Flags().Int("max-concurrent-generations", runtime.NumCPU(), "Max concurrent tile renders (default: number of CPUs)")
	serveCmd.Flags().Duration("generation-timeout", 30*time.Second, "Timeout per tile render")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for served tiles")

	serveCmd.Flags().Int("tile-size", 256, "Base tile size in pixels (@2x requests render twice as large)")
	serveCmd.Flags().Float64("world-size", pipeline.DefaultWorldSize, "Plane units covered by the zoom 0 tile")
	serveCmd.Flags().Float32("blur", 0, "Gaussian blur sigma applied to every tile")
	serveCmd.Flags().String("png-compression", "speed", "PNG compression (default, speed, best, none)")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("serve.addr", "addr")
	mustBind("serve.mbtiles", "mbtiles")
	mustBind("serve.max_concurrent_generations", "max-concurrent-generations")
	mustBind("serve.generation_timeout", "generation-timeout")
	mustBind("serve.cache_control", "cache-control")

	mustBind("serve.tile_size", "tile-size")
	mustBind("serve.world_size", "world-size")
	mustBind("serve.blur", "blur")
	mustBind("serve.png_compression", "png-compression")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	addr := viper.GetString("serve.addr")
	mux, closeFn, err := newServeMux(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(renderContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Tile server listening", "addr", addr, "tiles", "http://"+addr+"/tiles/{z}/{x}/{y}.png")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newServeMux(cmd *cobra.Command) (*http.ServeMux, func(), error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	if path := viper.GetString("serve.mbtiles"); path != "" {
		h, err := server.NewMBTilesHandler(server.MBTilesConfig{
			MBTilesPath:  path,
			CacheControl: viper.GetString("serve.cache_control"),
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		mux.Handle("/tiles/", h.Handler())
		logger.Info("Serving MBTiles", "path", path)
		return mux, func() { _ = h.Close() }, nil
	}

	p, r, err := loadPlane(cmd)
	if err != nil {
		return nil, nil, err
	}

	od, err := server.NewOnDemandTiles(p, server.OnDemandTilesConfig{
		PNGCompression:           viper.GetString("serve.png_compression"),
		CacheControl:             viper.GetString("serve.cache_control"),
		BaseTileSize:             viper.GetInt("serve.tile_size"),
		WorldSize:                viper.GetFloat64("serve.world_size"),
		Blur:                     float32(viper.GetFloat64("serve.blur")),
		MaxConcurrentGenerations: viper.GetInt("serve.max_concurrent_generations"),
		GenerationTimeout:        viper.GetDuration("serve.generation_timeout"),
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	mux.Handle("/tiles/", od.Handler())
	mux.Handle("/status", od.StatusHandler())
	mux.Handle("/sample", od.SampleHandler())
	logger.Info("Rendering tiles on demand", "plane", r.Describe(), "seed", *r.Seed)
	return mux, func() {}, nil
}
