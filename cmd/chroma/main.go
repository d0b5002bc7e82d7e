// Chroma - a theme colour engine
//
// Chroma converts colours between representations, scores WCAG
// contrast, generates theme palettes and harmony schemes, simulates
// colour vision deficiencies, and extracts dominant colours from
// images.
package main

import (
	"github.com/rustpress-net/chroma/internal/cli"
)

func main() {
	cli.Execute()
}
