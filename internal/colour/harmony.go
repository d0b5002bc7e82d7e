package colour

import "fmt"

// HarmonyType selects a fixed set of hue offsets for scheme generation.
type HarmonyType string

const (
	// HarmonyComplementary pairs the base colour with its opposite hue.
	HarmonyComplementary HarmonyType = "complementary"

	// HarmonyTriadic spaces three colours evenly around the wheel.
	HarmonyTriadic HarmonyType = "triadic"

	// HarmonyTetradic spaces four colours at right angles.
	HarmonyTetradic HarmonyType = "tetradic"

	// HarmonyAnalogous takes the neighbours 30 degrees either side.
	HarmonyAnalogous HarmonyType = "analogous"

	// HarmonySplitComplementary takes the two hues adjacent to the
	// complement instead of the complement itself.
	HarmonySplitComplementary HarmonyType = "split-complementary"
)

// harmonyOffsets maps each harmony type to its hue offsets in degrees,
// in output order.
var harmonyOffsets = map[HarmonyType][]float64{
	HarmonyComplementary:      {0, 180},
	HarmonyTriadic:            {0, 120, 240},
	HarmonyTetradic:           {0, 90, 180, 270},
	HarmonyAnalogous:          {-30, 0, 30},
	HarmonySplitComplementary: {0, 150, 210},
}

// ValidHarmonyTypes returns a list of valid harmony type names.
func ValidHarmonyTypes() []HarmonyType {
	return []HarmonyType{
		HarmonyComplementary,
		HarmonyTriadic,
		HarmonyTetradic,
		HarmonyAnalogous,
		HarmonySplitComplementary,
	}
}

// IsValid checks if the harmony type is recognised.
func (t HarmonyType) IsValid() bool {
	_, ok := harmonyOffsets[t]
	return ok
}

// Harmony generates a colour scheme from a base colour by rotating its
// hue, keeping saturation and lightness fixed. The base colour appears
// at its offset-0 position in the result (second for analogous, first
// for every other type). An achromatic base has no hue to rotate, so
// every output equals the base; that follows from the HSL formula and
// is not special-cased.
func Harmony(hex string, t HarmonyType) ([]string, error) {
	offsets, ok := harmonyOffsets[t]
	if !ok {
		return nil, fmt.Errorf("unknown harmony type: %s (valid types: %v)", t, ValidHarmonyTypes())
	}

	rgb, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}
	hsl := rgb.HSL()

	scheme := make([]string, len(offsets))
	for i, offset := range offsets {
		scheme[i] = HSL{H: hsl.H + offset, S: hsl.S, L: hsl.L}.Hex()
	}

	return scheme, nil
}
