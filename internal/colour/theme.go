package colour

import (
	"fmt"
	"math"
)

// ThemeColors is the fixed record of named colour roles a theme is
// generated into. The customizer front end serializes this record and
// the CSS emission layer consumes it, so the JSON field names are part
// of the contract.
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Border     string `json:"border"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

// Brand status colours are fixed constants, independent of the seed.
// The dark variants are lighter so they hold up on dark surfaces.
const (
	lightSuccess = "#10b981"
	lightWarning = "#f59e0b"
	lightError   = "#ef4444"

	darkSuccess = "#34d399"
	darkWarning = "#fbbf24"
	darkError   = "#f87171"
)

// ThemeFromPrimary synthesizes a full light theme palette from a single
// seed colour. Secondary and accent rotate the seed's hue; the neutral
// roles reuse the seed's hue at low saturation so the whole palette
// stays tinted consistently.
func ThemeFromPrimary(hex string) (ThemeColors, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return ThemeColors{}, fmt.Errorf("invalid primary colour: %w", err)
	}
	hsl := rgb.HSL()
	h, s, l := hsl.H, hsl.S, hsl.L

	return ThemeColors{
		Primary:    rgb.Hex(),
		Secondary:  HSL{H: h + 30, S: math.Max(s-10, 0), L: l}.Hex(),
		Accent:     HSL{H: h + 180, S: math.Min(s+10, 100), L: l}.Hex(),
		Background: HSL{H: h, S: 5, L: 98}.Hex(),
		Surface:    "#ffffff",
		Text:       HSL{H: h, S: 10, L: 15}.Hex(),
		TextMuted:  HSL{H: h, S: 5, L: 45}.Hex(),
		Border:     HSL{H: h, S: 10, L: 88}.Hex(),
		Success:    lightSuccess,
		Warning:    lightWarning,
		Error:      lightError,
	}, nil
}

// DarkTheme derives a dark palette from a light one. Only the primary's
// hue and saturation carry over; every lightness is recomputed for dark
// surfaces. The derivation is one-directional: applying it twice does
// not recover the original palette.
func DarkTheme(light ThemeColors) (ThemeColors, error) {
	rgb, err := ParseHex(light.Primary)
	if err != nil {
		return ThemeColors{}, fmt.Errorf("invalid primary colour: %w", err)
	}
	hsl := rgb.HSL()
	h, s := hsl.H, hsl.S

	return ThemeColors{
		Primary:    HSL{H: h, S: math.Min(s+10, 100), L: 60}.Hex(),
		Secondary:  HSL{H: h + 30, S: math.Min(s, 80), L: 55}.Hex(),
		Accent:     HSL{H: h + 180, S: math.Min(s+15, 100), L: 65}.Hex(),
		Background: HSL{H: h, S: 15, L: 10}.Hex(),
		Surface:    HSL{H: h, S: 12, L: 15}.Hex(),
		Text:       HSL{H: h, S: 5, L: 95}.Hex(),
		TextMuted:  HSL{H: h, S: 5, L: 60}.Hex(),
		Border:     HSL{H: h, S: 10, L: 25}.Hex(),
		Success:    darkSuccess,
		Warning:    darkWarning,
		Error:      darkError,
	}, nil
}

// RoleNames returns the theme role names in display order.
func RoleNames() []string {
	return []string{
		"primary", "secondary", "accent",
		"background", "surface",
		"text", "textMuted", "border",
		"success", "warning", "error",
	}
}

// Role returns the hex value for a named role.
func (tc ThemeColors) Role(name string) (string, bool) {
	switch name {
	case "primary":
		return tc.Primary, true
	case "secondary":
		return tc.Secondary, true
	case "accent":
		return tc.Accent, true
	case "background":
		return tc.Background, true
	case "surface":
		return tc.Surface, true
	case "text":
		return tc.Text, true
	case "textMuted":
		return tc.TextMuted, true
	case "border":
		return tc.Border, true
	case "success":
		return tc.Success, true
	case "warning":
		return tc.Warning, true
	case "error":
		return tc.Error, true
	default:
		return "", false
	}
}
