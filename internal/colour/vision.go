package colour

import "fmt"

// VisionMode selects a colour vision deficiency to simulate.
type VisionMode string

const (
	VisionNormal        VisionMode = "normal"
	VisionProtanopia    VisionMode = "protanopia"
	VisionDeuteranopia  VisionMode = "deuteranopia"
	VisionTritanopia    VisionMode = "tritanopia"
	VisionAchromatopsia VisionMode = "achromatopsia"
)

// visionMatrices holds a fixed 3x3 transform per mode. The matrices are
// applied to gamma-encoded RGB rather than linear light: this is a fast
// preview approximation, not a calibrated colour appearance model, and
// the outputs are part of the contract. Every row sums to 1, so greys
// are fixed points under all modes.
var visionMatrices = map[VisionMode][3][3]float64{
	VisionNormal: {
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	},
	VisionProtanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	VisionDeuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	VisionTritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
	VisionAchromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
}

// ValidVisionModes returns a list of valid vision mode names.
func ValidVisionModes() []VisionMode {
	return []VisionMode{
		VisionNormal,
		VisionProtanopia,
		VisionDeuteranopia,
		VisionTritanopia,
		VisionAchromatopsia,
	}
}

// IsValid checks if the vision mode is recognised.
func (m VisionMode) IsValid() bool {
	_, ok := visionMatrices[m]
	return ok
}

// SimulateVision approximates how a colour appears under a colour
// vision deficiency. VisionNormal applies the identity matrix, so the
// output equals the (canonicalized) input exactly.
func SimulateVision(hex string, mode VisionMode) (string, error) {
	m, ok := visionMatrices[mode]
	if !ok {
		return "", fmt.Errorf("unknown vision mode: %s (valid modes: %v)", mode, ValidVisionModes())
	}

	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}

	r := float64(rgb.R)
	g := float64(rgb.G)
	b := float64(rgb.B)

	return NewRGB(
		m[0][0]*r+m[0][1]*g+m[0][2]*b,
		m[1][0]*r+m[1][1]*g+m[1][2]*b,
		m[2][0]*r+m[2][1]*g+m[2][2]*b,
	).Hex(), nil
}
