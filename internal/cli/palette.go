package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inkswatch/internal/colour"
	"github.com/jmylchreest/inkswatch/internal/inks"
	"github.com/jmylchreest/inkswatch/internal/swatch"
)

var (
	// Palette command flags
	paletteSize    int
	paletteHarmony string
	paletteSwatch  string
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <theme>",
	Short: "Build an ink palette from a theme, colour list or harmony",
	Long: `Build a palette of distinct inks matching a set of target colours.

The theme argument is one of:
  - a built-in theme name (see "inkswatch themes")
  - a comma-separated list of hex colours
  - a single base hex colour, when --harmony is given

Examples:
  inkswatch palette ocean
  inkswatch palette --size 3 "#1f3a5f,#c0392b,#f4d03f"
  inkswatch palette --harmony triadic "#1f3a5f"
  inkswatch palette autumn --swatch autumn.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteSize, "size", "s", 5, fmt.Sprintf("number of inks (max %d)", inks.MaxPaletteSize))
	paletteCmd.Flags().StringVar(&paletteHarmony, "harmony", "", "harmony rule applied to a base colour ("+harmonyNames()+")")
	paletteCmd.Flags().StringVar(&paletteSwatch, "swatch", "", "also write the palette as a PNG image to this path")
}

func harmonyNames() string {
	rules := colour.HarmonyRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	palette, err := sess.service.BuildPalette(inks.PaletteRequest{
		Theme:   args[0],
		Size:    paletteSize,
		Harmony: paletteHarmony,
	})
	if err != nil {
		return fmt.Errorf("failed to build palette: %w", err)
	}

	if paletteSwatch != "" {
		if err := writePaletteSwatch(paletteSwatch, palette); err != nil {
			return err
		}
		sess.logger.Info("wrote palette swatch", "path", paletteSwatch, "inks", len(palette.Inks))
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, palette)
	}
	if len(palette.Inks) == 0 {
		_, err := fmt.Fprintln(out, "No inks available for this palette")
		return err
	}
	if err := renderInks(out, palette.Inks); err != nil {
		return err
	}
	if len(palette.Inks) < palette.Requested {
		fmt.Fprintf(out, "\nFound %d of %d requested inks\n", len(palette.Inks), palette.Requested)
	}
	return nil
}

func writePaletteSwatch(path string, palette *inks.Palette) error {
	bands := make([]swatch.Band, len(palette.Inks))
	for i, ink := range palette.Inks {
		label := ink.Name
		if ink.Maker != "" && !strings.Contains(strings.ToLower(ink.Name), strings.ToLower(ink.Maker)) {
			label = ink.Maker + " " + ink.Name
		}
		bands[i] = swatch.Band{Label: label + "  " + ink.Hex, Colour: ink.RGB}
	}
	if err := swatch.WriteFile(path, bands, swatch.Options{}); err != nil {
		return fmt.Errorf("failed to write swatch: %w", err)
	}
	return nil
}
