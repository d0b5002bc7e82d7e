package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rustpress-net/chroma/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Theme command flags
	themeDark    bool
	themeFormat  string
	themeOutput  string
	themePreview bool
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme <primary-hex>",
	Short: "Generate a theme palette from a primary colour",
	Long: `Generate a complete theme palette from a single primary colour.

The palette covers eleven roles: primary, secondary, accent, background,
surface, text, textMuted, border, success, warning and error. Use --dark
to derive the dark-mode variant of the generated palette.

Examples:
  # Light theme from a blue primary
  chroma theme "#3b82f6"

  # Dark-mode variant with terminal previews
  chroma theme --dark --preview "#3b82f6"

  # Emit CSS custom properties
  chroma theme --format css "#10b981"

  # JSON for the customizer persistence layer
  chroma theme --format json "#e11d48"`,
	Args: cobra.ExactArgs(1),
	RunE: runTheme,
}

func init() {
	themeCmd.Flags().BoolVar(&themeDark, "dark", false, "derive the dark-mode palette")
	themeCmd.Flags().StringVarP(&themeFormat, "format", "f", "table", "output format (table, json, css)")
	themeCmd.Flags().StringVarP(&themeOutput, "output", "o", "", "output file (default: stdout)")
	themeCmd.Flags().BoolVar(&themePreview, "preview", false, "show colour previews in terminal")
}

// runTheme executes the theme command.
func runTheme(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	theme, err := colour.ThemeFromPrimary(args[0])
	if err != nil {
		return err
	}
	logger.Debug("generated light palette", "primary", theme.Primary)

	if themeDark {
		theme, err = colour.DarkTheme(theme)
		if err != nil {
			return err
		}
		logger.Debug("derived dark palette", "primary", theme.Primary)
	}

	output, err := formatTheme(theme, themeFormat, previewEnabled(themePreview))
	if err != nil {
		return err
	}

	return writeOutput(output, themeOutput)
}

// formatTheme formats a theme palette according to the specified format.
func formatTheme(theme colour.ThemeColors, format string, showPreview bool) (string, error) {
	switch format {
	case "table":
		headers := []string{"ROLE", "COLOUR"}
		if showPreview {
			headers = append(headers, "PREVIEW")
		}
		table := NewTable(headers)
		for _, role := range colour.RoleNames() {
			hex, _ := theme.Role(role)
			row := []string{role, hex}
			if showPreview {
				row = append(row, colour.Preview(colour.HexToRGB(hex), swatchWidth))
			}
			table.AddRow(row)
		}
		return table.Render(), nil
	case "json":
		jsonBytes, err := json.MarshalIndent(theme, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "css":
		var sb strings.Builder
		sb.WriteString(":root {\n")
		for _, role := range colour.RoleNames() {
			hex, _ := theme.Role(role)
			sb.WriteString(fmt.Sprintf("  --color-%s: %s;\n", cssRoleName(role), hex))
		}
		sb.WriteString("}\n")
		return sb.String(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json, css)", format)
	}
}

// cssRoleName converts a camelCase role name to kebab-case for CSS
// custom properties (textMuted -> text-muted).
func cssRoleName(role string) string {
	var sb strings.Builder
	for _, r := range role {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
