// Package colour implements the colour science engine behind the theme
// customizer: colour space conversion, WCAG contrast analysis, harmony
// and theme palette generation, colour vision simulation, and dominant
// colour extraction.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a hex colour string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL represents a colour in HSL colour space.
// H is the hue in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NewRGB creates an RGB colour from floating point channel values.
// Each channel is clamped to [0, 255] and rounded to the nearest integer,
// so chained palette arithmetic that overshoots stays well-defined.
func NewRGB(r, g, b float64) RGB {
	return RGB{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// clampChannel clamps a channel value to [0, 255] and rounds to nearest.
func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// ParseHex parses a hex colour string into an RGB value.
// The input must be exactly six hex digits with an optional leading "#".
// Returns ErrInvalidHex (wrapped) for anything else.
func ParseHex(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// HexToRGB parses a hex colour string, mapping any parse failure to
// black. This is the boundary adapter for callers like a live colour
// picker that must never fail on partial input; use ParseHex when the
// failure needs to be visible.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// Hex returns the RGB colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// HSL converts the colour to HSL colour space.
func (rgb RGB) HSL() HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic: no hue, no saturation.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: normalizeHue(h), S: s * 100, L: l * 100}
}

// RGB converts the colour to RGB. Hue is treated as circular modulo 360,
// saturation and lightness are clamped to [0, 100] before conversion.
func (hsl HSL) RGB() RGB {
	h := normalizeHue(hsl.H) / 360.0
	s := clampPercent(hsl.S) / 100.0
	l := clampPercent(hsl.L) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := l * 255.0
		return NewRGB(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+1.0/3.0)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3.0)

	return NewRGB(r*255.0, g*255.0, b*255.0)
}

// Hex converts the colour to a lowercase hex string.
func (hsl HSL) Hex() string {
	return hsl.RGB().Hex()
}

// hueToRGB is a helper for HSL to RGB conversion. t is a hue phase in
// [0, 1) plus an offset of ±1/3 for the red and blue channels.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// normalizeHue wraps a hue angle into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clampPercent clamps a percentage value to [0, 100].
func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
