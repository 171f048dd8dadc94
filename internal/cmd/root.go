package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/noiseplane/internal/recipe"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noiseplane",
	Short: "Sample, render and serve procedural noise planes",
	Long: `noiseplane builds deterministic noise planes (presets, generator kinds or recipes
from config.yaml) and samples them, renders them to PNG, exports them as tiles or
MBTiles and serves them over HTTP.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("output-dir", "./tiles", "Output directory for generated tiles")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("preset", noise.PresetSimplex.String(), "Preset plane (list them with the presets command)")
	rootCmd.PersistentFlags().String("kind", "", "Generator kind instead of a preset (simplex, perlin, cellular, ...)")
	rootCmd.PersistentFlags().Int64("seed", 1337, "Deterministic seed")

	for _, name := range []string{"output-dir", "verbose", "preset", "kind", "seed"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("NOISEPLANE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// resolveRecipe picks the plane description. --preset or --kind on the command line
// win over a recipe section in the config file; without either the preset flag
// (default simplex) is used. --seed overrides the recipe seed when given.
func resolveRecipe(cmd *cobra.Command) (recipe.Recipe, error) {
	flags := cmd.Flags()
	seed := viper.GetInt64("seed")
	explicit := flags.Changed("preset") || flags.Changed("kind")

	if viper.IsSet("recipe") && !explicit {
		r, err := recipe.Decode(viper.GetViper(), "recipe")
		if err != nil {
			return r, err
		}
		if r.Seed == nil || flags.Changed("seed") {
			r.Seed = &seed
		}
		return r, nil
	}

	r := recipe.Recipe{Kind: viper.GetString("kind"), Seed: &seed}
	if r.Kind == "" {
		r.Preset = viper.GetString("preset")
	}
	return r, nil
}

// loadPlane builds the plane selected by flags and config.
func loadPlane(cmd *cobra.Command) (noise.Plane, recipe.Recipe, error) {
	r, err := resolveRecipe(cmd)
	if err != nil {
		return nil, r, err
	}
	p, err := r.Build()
	if err != nil {
		return nil, r, fmt.Errorf("failed to build plane %q: %w", r.Describe(), err)
	}
	logger.Debug("Plane ready", "plane", r.Describe(), "seed", *r.Seed, "range", p.Range())
	return p, r, nil
}
