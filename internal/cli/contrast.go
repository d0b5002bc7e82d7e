package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rustpress-net/chroma/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Contrast command flags
	contrastFormat  string
	contrastPreview bool
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <hexA> <hexB>",
	Short: "Score the WCAG contrast between two colours",
	Long: `Calculate the WCAG 2.0 contrast ratio between two colours and report
which conformance levels it meets.

The ratio ranges from 1:1 (identical) to 21:1 (black on white) and is
symmetric, so argument order does not matter.

Examples:
  # Body text on background
  chroma contrast "#1f2937" "#f9fafb"

  # JSON for tooling
  chroma contrast --format json "#3b82f6" "#ffffff"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "table", "output format (table, json)")
	contrastCmd.Flags().BoolVar(&contrastPreview, "preview", false, "show colour previews in terminal")
}

// contrastReport is the JSON shape of a contrast check.
type contrastReport struct {
	ColourA string           `json:"colourA"`
	ColourB string           `json:"colourB"`
	Ratio   float64          `json:"ratio"`
	WCAG    colour.WCAGLevel `json:"wcag"`
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	ratio, err := colour.ContrastRatioHex(args[0], args[1])
	if err != nil {
		return err
	}
	level := colour.ClassifyContrast(ratio)
	logger.Debug("contrast computed", "ratio", ratio, "level", level.Level)

	switch contrastFormat {
	case "table":
		if previewEnabled(contrastPreview) {
			a := colour.HexToRGB(args[0])
			b := colour.HexToRGB(args[1])
			fmt.Println(colour.PreviewWithText(a, args[0], 10) + " on " + colour.PreviewWithText(b, args[1], 10))
		}
		table := NewTable([]string{"CHECK", "RESULT"})
		table.AddRow([]string{"Ratio", colour.FormatRatio(ratio)})
		table.AddRow([]string{"Level", level.Level})
		table.AddRow([]string{"AA", passFail(level.AA)})
		table.AddRow([]string{"AAA", passFail(level.AAA)})
		table.AddRow([]string{"AA Large", passFail(level.AALarge)})
		table.AddRow([]string{"AAA Large", passFail(level.AAALarge)})
		fmt.Print(table.Render())
		return nil
	case "json":
		report := contrastReport{
			ColourA: args[0],
			ColourB: args[1],
			Ratio:   ratio,
			WCAG:    level,
		}
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", contrastFormat)
	}
}

// passFail renders a boolean check for table output.
func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
