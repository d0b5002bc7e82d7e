package colour

import (
	"encoding/json"
	"testing"
)

func TestThemeFromPrimary(t *testing.T) {
	theme, err := ThemeFromPrimary("#3b82f6")
	if err != nil {
		t.Fatalf("ThemeFromPrimary() error = %v", err)
	}

	if theme.Primary != "#3b82f6" {
		t.Errorf("Primary = %s, want #3b82f6", theme.Primary)
	}
	if theme.Surface != "#ffffff" {
		t.Errorf("Surface = %s, want #ffffff", theme.Surface)
	}

	// Status colours are brand constants, independent of the seed.
	if theme.Success != "#10b981" || theme.Warning != "#f59e0b" || theme.Error != "#ef4444" {
		t.Errorf("status colours = %s/%s/%s, want #10b981/#f59e0b/#ef4444",
			theme.Success, theme.Warning, theme.Error)
	}

	// Background is near-white, text near-black, regardless of seed hue.
	if l := HexToRGB(theme.Background).HSL().L; l < 95 {
		t.Errorf("Background lightness = %v, want >= 95", l)
	}
	if l := HexToRGB(theme.Text).HSL().L; l > 20 {
		t.Errorf("Text lightness = %v, want <= 20", l)
	}

	// Every role is populated with a parseable colour.
	for _, role := range RoleNames() {
		hex, ok := theme.Role(role)
		if !ok {
			t.Fatalf("Role(%q) not found", role)
		}
		if _, err := ParseHex(hex); err != nil {
			t.Errorf("Role(%q) = %q, not a valid colour: %v", role, hex, err)
		}
	}
}

func TestThemeFromPrimaryHueRelationships(t *testing.T) {
	theme, err := ThemeFromPrimary("#ff0000")
	if err != nil {
		t.Fatalf("ThemeFromPrimary() error = %v", err)
	}

	// Accent sits opposite the primary on the colour wheel.
	accentHue := HexToRGB(theme.Accent).HSL().H
	if accentHue < 179 || accentHue > 181 {
		t.Errorf("Accent hue = %v, want ~180", accentHue)
	}

	// Secondary is rotated +30 degrees.
	secondaryHue := HexToRGB(theme.Secondary).HSL().H
	if secondaryHue < 29 || secondaryHue > 31 {
		t.Errorf("Secondary hue = %v, want ~30", secondaryHue)
	}
}

func TestDarkTheme(t *testing.T) {
	seeds := []string{"#3b82f6", "#ff0000", "#10b981", "#f0f0a0"}

	for _, seed := range seeds {
		t.Run(seed, func(t *testing.T) {
			light, err := ThemeFromPrimary(seed)
			if err != nil {
				t.Fatalf("ThemeFromPrimary() error = %v", err)
			}
			if l := HexToRGB(light.Background).HSL().L; l < 50 {
				t.Fatalf("light Background lightness = %v, want >= 50", l)
			}

			dark, err := DarkTheme(light)
			if err != nil {
				t.Fatalf("DarkTheme() error = %v", err)
			}

			// The defining invariant: dark backgrounds are dark.
			if l := HexToRGB(dark.Background).HSL().L; l >= 50 {
				t.Errorf("dark Background lightness = %v, want < 50", l)
			}
			if l := HexToRGB(dark.Text).HSL().L; l < 90 {
				t.Errorf("dark Text lightness = %v, want >= 90", l)
			}

			// Dark mode swaps in the lighter brand constants.
			if dark.Success != "#34d399" || dark.Warning != "#fbbf24" || dark.Error != "#f87171" {
				t.Errorf("dark status colours = %s/%s/%s, want #34d399/#fbbf24/#f87171",
					dark.Success, dark.Warning, dark.Error)
			}
		})
	}
}

func TestThemeErrors(t *testing.T) {
	if _, err := ThemeFromPrimary("#xyz"); err == nil {
		t.Error("ThemeFromPrimary() expected error for malformed hex")
	}
	if _, err := DarkTheme(ThemeColors{Primary: "nope"}); err == nil {
		t.Error("DarkTheme() expected error for malformed primary")
	}
}

func TestThemeColorsJSON(t *testing.T) {
	// The serialized field names are consumed by the persistence and
	// CSS emission layers; keep them stable.
	theme, err := ThemeFromPrimary("#3b82f6")
	if err != nil {
		t.Fatalf("ThemeFromPrimary() error = %v", err)
	}

	data, err := json.Marshal(theme)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, role := range RoleNames() {
		if _, ok := fields[role]; !ok {
			t.Errorf("serialized theme missing field %q", role)
		}
	}
	if len(fields) != len(RoleNames()) {
		t.Errorf("serialized theme has %d fields, want %d", len(fields), len(RoleNames()))
	}
}

func TestRoleUnknown(t *testing.T) {
	theme := ThemeColors{}
	if _, ok := theme.Role("shadow"); ok {
		t.Error(`Role("shadow") = ok, want not found`)
	}
}
