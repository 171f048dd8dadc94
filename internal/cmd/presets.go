package cmd

import (
	"fmt"
	"io"

	"github.com/MeKo-Tech/noiseplane/internal/recipe"
	"github.com/MeKo-Tech/noiseplane/pkg/noise"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset planes and generator kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPresets(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func listPresets(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Presets:"); err != nil {
		return err
	}
	for _, p := range noise.Presets() {
		plane, err := noise.Of(p, 0)
		if err != nil {
			return fmt.Errorf("preset %s: %w", p, err)
		}
		r := plane.Range()
		fmt.Fprintf(w, "  %-24s [%g, %g]\n", p, r.Min, r.Max)
	}

	fmt.Fprintln(w, "Kinds:")
	for _, k := range recipe.Kinds() {
		fmt.Fprintf(w, "  %s\n", k)
	}
	return nil
}
