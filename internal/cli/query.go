package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/inkswatch/internal/inks"
)

var (
	// Query command flags
	searchLimit int
	colourLimit int
	makerLimit  int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search inks by maker and name",
	Long: `Fuzzy search the catalog by maker and ink name. Case and accents are
ignored, so "hematite" finds "Hématite".

Examples:
  inkswatch search "oxblood"
  inkswatch search --limit 3 --format json "sailor yama"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// colourCmd represents the colour command
var colourCmd = &cobra.Command{
	Use:     "colour <hex>",
	Aliases: []string{"color"},
	Short:   "Describe a colour and find the closest inks",
	Long: `Classify a hex colour and list the inks nearest to it in RGB space.

Examples:
  inkswatch colour "#1f3a5f"
  inkswatch colour --limit 10 1f3a5f`,
	Args: cobra.ExactArgs(1),
	RunE: runColour,
}

// inkCmd represents the ink command
var inkCmd = &cobra.Command{
	Use:   "ink <id>",
	Short: "Show the full record for one ink",
	Args:  cobra.ExactArgs(1),
	RunE:  runInk,
}

// makerCmd represents the maker command
var makerCmd = &cobra.Command{
	Use:   "maker [name]",
	Short: "List makers, or the inks of one maker",
	Long: `Without an argument, list every maker with its ink count. With a maker
name, list that maker's inks in catalog order.

Examples:
  inkswatch maker
  inkswatch maker "diamine"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaker,
}

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in palette themes",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	colourCmd.Flags().IntVarP(&colourLimit, "limit", "n", 5, "number of closest inks to list")
	makerCmd.Flags().IntVarP(&makerLimit, "limit", "n", 50, "maximum number of inks to list")
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	results, err := sess.service.SearchByName(args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("failed to search inks: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, results)
	}
	if len(results) == 0 {
		_, err := fmt.Fprintf(out, "No inks match %q\n", args[0])
		return err
	}
	return renderInks(out, results)
}

// runColour executes the colour command.
func runColour(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	search, err := sess.service.SearchByColour(args[0], colourLimit)
	if err != nil {
		return fmt.Errorf("failed to match colour: %w", err)
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, search)
	}
	if err := renderColourInfo(out, search.Target); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return renderInks(out, search.Results)
}

// runInk executes the ink command.
func runInk(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	details, err := sess.service.Details(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, details)
	}

	fmt.Fprintf(out, "ID:          %s\nName:        %s\n", details.ID, details.Name)
	if details.Maker != "" {
		fmt.Fprintf(out, "Maker:       %s\n", details.Maker)
	}
	if details.ShortName != "" {
		fmt.Fprintf(out, "Short name:  %s\n", details.ShortName)
	}
	if details.ScanDate != "" {
		fmt.Fprintf(out, "Scanned:     %s\n", details.ScanDate)
	}
	if err := renderColourInfo(out, details.Colour); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Details:     %s\nSwatch:      %s\n", details.DetailURL, details.ImageURL)
	return err
}

// runMaker executes the maker command.
func runMaker(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		makers := sess.service.Makers()
		if format == formatJSON {
			return writeJSON(out, makers)
		}
		table := NewTable([]string{"Maker", "Inks"})
		for _, m := range makers {
			table.AddRow([]string{m.Maker, strconv.Itoa(m.Count)})
		}
		_, err := io.WriteString(out, table.Render())
		return err
	}

	listing, err := sess.service.ByMaker(args[0], makerLimit)
	if err != nil {
		return fmt.Errorf("failed to list maker inks: %w", err)
	}
	if format == formatJSON {
		return writeJSON(out, listing)
	}
	if listing.Total == 0 {
		_, err := fmt.Fprintf(out, "No inks found for maker %q\n", args[0])
		return err
	}
	if err := renderInks(out, listing.Inks); err != nil {
		return err
	}
	if listing.Total > len(listing.Inks) {
		fmt.Fprintf(out, "\nShowing %d of %d inks (use --limit to see more)\n", len(listing.Inks), listing.Total)
	}
	return nil
}

// runThemes executes the themes command. It needs no catalog.
func runThemes(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	themes := inks.Themes()
	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, themes)
	}

	table := NewTable([]string{"Theme", "Colours"})
	for _, t := range themes {
		table.AddRow([]string{t.Name, strings.Join(t.Colours, " ")})
	}
	_, err = io.WriteString(out, table.Render())
	return err
}
