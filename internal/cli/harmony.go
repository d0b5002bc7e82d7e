package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rustpress-net/chroma/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Harmony command flags
	harmonyType    string
	harmonyFormat  string
	harmonyPreview bool
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <hex>",
	Short: "Generate a harmony colour scheme",
	Long: `Generate a colour scheme by rotating the hue of a base colour.

Supported schemes: complementary, triadic, tetradic, analogous,
split-complementary. Saturation and lightness are preserved, so an
achromatic base yields a scheme of identical greys.

Examples:
  # Complementary pair (default)
  chroma harmony "#ff0000"

  # Triadic scheme with previews
  chroma harmony --type triadic --preview "#3b82f6"

  # Split-complementary as JSON
  chroma harmony -t split-complementary -f json "#10b981"`,
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().StringVarP(&harmonyType, "type", "t", "complementary",
		"harmony type (complementary, triadic, tetradic, analogous, split-complementary)")
	harmonyCmd.Flags().StringVarP(&harmonyFormat, "format", "f", "hex", "output format (hex, json)")
	harmonyCmd.Flags().BoolVar(&harmonyPreview, "preview", false, "show colour previews in terminal")
}

// runHarmony executes the harmony command.
func runHarmony(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	scheme, err := colour.Harmony(args[0], colour.HarmonyType(harmonyType))
	if err != nil {
		return err
	}
	logger.Debug("generated harmony scheme", "type", harmonyType, "colours", len(scheme))

	switch harmonyFormat {
	case "hex":
		for _, hex := range scheme {
			if previewEnabled(harmonyPreview) {
				fmt.Println(colour.Preview(colour.HexToRGB(hex), swatchWidth) + " " + hex)
			} else {
				fmt.Println(hex)
			}
		}
		return nil
	case "json":
		jsonBytes, err := json.MarshalIndent(scheme, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: hex, json)", harmonyFormat)
	}
}
