package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rustpress-net/chroma/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Simulate command flags
	simulateMode    string
	simulateFormat  string
	simulatePreview bool
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <hex>",
	Short: "Simulate colour vision deficiencies",
	Long: `Approximate how a colour appears under colour vision deficiencies.

Without --mode, every mode is reported: normal, protanopia,
deuteranopia, tritanopia and achromatopsia. The simulation is a fast
display-space approximation intended for previews, not a calibrated
colour appearance model.

Examples:
  # All modes for a brand colour
  chroma simulate "#e11d48"

  # Single mode
  chroma simulate --mode deuteranopia "#10b981"

  # With terminal previews
  chroma simulate --preview "#3b82f6"`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateMode, "mode", "m", "",
		"vision mode (normal, protanopia, deuteranopia, tritanopia, achromatopsia); default: all")
	simulateCmd.Flags().StringVarP(&simulateFormat, "format", "f", "table", "output format (table, json)")
	simulateCmd.Flags().BoolVar(&simulatePreview, "preview", false, "show colour previews in terminal")
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	hex := args[0]

	modes := colour.ValidVisionModes()
	if simulateMode != "" {
		modes = []colour.VisionMode{colour.VisionMode(simulateMode)}
	}

	results := make(map[colour.VisionMode]string, len(modes))
	for _, mode := range modes {
		simulated, err := colour.SimulateVision(hex, mode)
		if err != nil {
			return err
		}
		results[mode] = simulated
		logger.Debug("simulated", "mode", mode, "input", hex, "output", simulated)
	}

	switch simulateFormat {
	case "table":
		headers := []string{"MODE", "COLOUR"}
		if previewEnabled(simulatePreview) {
			headers = append(headers, "PREVIEW")
		}
		table := NewTable(headers)
		for _, mode := range modes {
			row := []string{string(mode), results[mode]}
			if previewEnabled(simulatePreview) {
				row = append(row, colour.Preview(colour.HexToRGB(results[mode]), swatchWidth))
			}
			table.AddRow(row)
		}
		fmt.Print(table.Render())
		return nil
	case "json":
		jsonBytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", simulateFormat)
	}
}
