package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/jmylchreest/inkswatch/internal/colour"
	"github.com/jmylchreest/inkswatch/internal/inks"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

const previewWidth = 4

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatchCell renders a colour as a preview block plus hex on terminals and
// as the bare hex elsewhere.
func swatchCell(w io.Writer, rgb colour.RGB) string {
	if isTerminal(w) {
		return colour.FormatColourWithPreview(rgb, previewWidth)
	}
	return rgb.Hex()
}

func formatDistance(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(*d, 'f', 2, 64)
}

// renderInks writes ink results as a table. Distance is shown when any
// result carries one.
func renderInks(w io.Writer, results []inks.InkResult) error {
	withDistance := false
	for _, r := range results {
		if r.Distance != nil {
			withDistance = true
			break
		}
	}

	headers := []string{"ID", "Maker", "Name", "Colour"}
	if withDistance {
		headers = append(headers, "Distance")
	}

	table := NewTable(headers)
	table.SetColumnMaxWidth(2, 48)
	for _, r := range results {
		row := []string{r.ID, r.Maker, r.Name, swatchCell(w, r.RGB)}
		if withDistance {
			row = append(row, formatDistance(r.Distance))
		}
		table.AddRow(row)
	}

	_, err := io.WriteString(w, table.Render())
	return err
}

// renderColourInfo writes a colour analysis block.
func renderColourInfo(w io.Writer, info inks.ColourInfo) error {
	_, err := fmt.Fprintf(w, "Colour:      %s\nRGB:         %d, %d, %d\nHSL:         %s\nFamily:      %s\nDescription: %s\n",
		swatchCell(w, info.RGB), info.RGB.R, info.RGB.G, info.RGB.B, info.HSL, info.Family, info.Description)
	return err
}
