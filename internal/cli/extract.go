package cli

import (
	"fmt"
	"os"

	"github.com/rustpress-net/chroma/internal/colour"
	"github.com/rustpress-net/chroma/internal/image"
	"github.com/spf13/cobra"
)

var (
	// Extract command flags
	extractColours int
	extractFormat  string
	extractOutput  string
	extractSeed    int64
	extractPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract dominant colours from an image",
	Long: `Extract the dominant colours from an image using k-means clustering.

The image may be a local file (JPEG, PNG, GIF, WebP) or an HTTP(S) URL.
Colours are reported in cluster order, not sorted by frequency.

Centroid initialization is random; pass --seed for reproducible output.

Examples:
  # Extract 5 colours (default) from an image
  chroma extract wallpaper.jpg

  # Extract 8 colours with terminal previews
  chroma extract --preview --colours 8 wallpaper.png

  # Deterministic extraction as JSON
  chroma extract --seed 42 --format json wallpaper.jpg

  # Save the palette to a file
  chroma extract --output palette.txt https://example.com/hero.webp`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().SetNormalizeFunc(normalizeFlagSpelling)
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 5, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().Int64Var(&extractSeed, "seed", 0, "random seed for deterministic extraction (0 = random)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.AlgorithmKMeans,
		ColorCount: extractColours,
		Seed:       extractSeed,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor, err := colour.NewExtractor(config.Algorithm, config.NewRand())
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	logger.Debug("extracting colours", "count", config.ColorCount, "seed", config.Seed)
	palette, err := extractor.Extract(img, config.ColorCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "colours", palette.Len())

	output, err := formatPalette(palette, extractFormat, previewEnabled(extractPreview))
	if err != nil {
		return err
	}

	return writeOutput(output, extractOutput)
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		output := ""
		for _, c := range palette.Colors {
			if showPreview {
				output += colour.Preview(c, swatchWidth) + " " + c.Hex() + "\n"
			} else {
				output += c.Hex() + "\n"
			}
		}
		return output, nil
	case "rgb":
		output := ""
		for _, c := range palette.Colors {
			if showPreview {
				output += colour.Preview(c, swatchWidth) + " " + c.String() + "\n"
			} else {
				output += c.String() + "\n"
			}
		}
		return output, nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// writeOutput writes command output to a file, or stdout when path is empty.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
