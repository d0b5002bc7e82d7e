package colour

import (
	"fmt"
	"math"
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Channel values outside [0, 255] are clamped first.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(r, g, b float64) float64 {
	rf := gammaCorrect(float64(clampChannel(r)) / 255.0)
	gf := gammaCorrect(float64(clampChannel(g)) / 255.0)
	bf := gammaCorrect(float64(clampChannel(b)) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies sRGB gamma linearization to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(float64(a.R), float64(a.G), float64(a.B))
	l2 := Luminance(float64(b.R), float64(b.G), float64(b.B))

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex calculates the contrast ratio between two hex colours.
func ContrastRatioHex(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(a, b), nil
}

// WCAGLevel describes which WCAG 2.0 contrast thresholds a ratio meets.
type WCAGLevel struct {
	Level    string `json:"level"`
	AA       bool   `json:"aa"`
	AAA      bool   `json:"aaa"`
	AALarge  bool   `json:"aaLarge"`
	AAALarge bool   `json:"aaaLarge"`
}

// WCAG 2.0 contrast thresholds. Comparisons are inclusive.
const (
	wcagAAA      = 7.0
	wcagAA       = 4.5
	wcagAAALarge = 4.5
	wcagAALarge  = 3.0
)

// ClassifyContrast classifies a contrast ratio against the WCAG 2.0
// thresholds. Level is the highest label reached: "AAA", "AA",
// "AA Large" or "Fail".
func ClassifyContrast(ratio float64) WCAGLevel {
	level := WCAGLevel{
		AA:       ratio >= wcagAA,
		AAA:      ratio >= wcagAAA,
		AALarge:  ratio >= wcagAALarge,
		AAALarge: ratio >= wcagAAALarge,
	}

	switch {
	case level.AAA:
		level.Level = "AAA"
	case level.AA:
		level.Level = "AA"
	case level.AALarge:
		level.Level = "AA Large"
	default:
		level.Level = "Fail"
	}

	return level
}

// String returns a human-readable summary, e.g. "AA (4.54:1)".
func (l WCAGLevel) String() string {
	return l.Level
}

// FormatRatio formats a contrast ratio for display, e.g. "4.54:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
