package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the plane value at one coordinate",
	Long: `Print the plane value at one coordinate. The dimension follows the flags given:
--x alone samples 1D, --x --y 2D and --x --y --z 3D.

With --choices the value picks one entry of a weighted list instead, e.g.
  noiseplane sample --x 10 --y 4 --choices forest:3,plains:2,desert:1`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().Float64("x", 0, "X coordinate")
	sampleCmd.Flags().Float64("y", 0, "Y coordinate")
	sampleCmd.Flags().Float64("z", 0, "Z coordinate")
	sampleCmd.Flags().String("choices", "", "Weighted choices name:weight,... picked by the sample")

	if err := viper.BindPFlag("sample.choices", sampleCmd.Flags().Lookup("choices")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	var coords []float64
	for _, name := range []string{"x", "y", "z"} {
		if !cmd.Flags().Changed(name) {
			break
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return err
		}
		coords = append(coords, v)
	}
	if len(coords) == 0 {
		return fmt.Errorf("--x is required")
	}

	p, _, err := loadPlane(cmd)
	if err != nil {
		return err
	}

	choices, err := parseChoices(viper.GetString("sample.choices"))
	if err != nil {
		return err
	}
	return writeSample(cmd.OutOrStdout(), p, coords, choices)
}

func writeSample(w io.Writer, p noise.Plane, coords []float64, choices []noise.Choice[string]) error {
	if len(choices) > 0 {
		picked, err := noise.PickWeighted(p, choices, coords...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, picked)
		return err
	}

	v, err := noise.Sample(p, coords...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

// parseChoices parses "name:weight,name:weight". A missing weight counts as 1.
func parseChoices(s string) ([]noise.Choice[string], error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []noise.Choice[string]
	for _, part := range strings.Split(s, ",") {
		name, weight, hasWeight := strings.Cut(strings.TrimSpace(part), ":")
		if name == "" {
			return nil, fmt.Errorf("invalid choice %q: empty name", part)
		}
		w := 1.0
		if hasWeight {
			var err error
			w, err = strconv.ParseFloat(weight, 64)
			if err != nil || w < 0 {
				return nil, fmt.Errorf("invalid weight in choice %q", part)
			}
		}
		out = append(out, noise.Choice[string]{Item: name, Weight: w})
	}
	return out, nil
}
