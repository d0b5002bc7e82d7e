package cli

import (
	"os"

	"golang.org/x/term"
)

// swatchWidth is the character width of colour preview blocks.
const swatchWidth = 8

// previewEnabled reports whether colour previews should be rendered:
// the flag must be set and stdout must be a terminal, so piped output
// stays free of escape sequences.
func previewEnabled(requested bool) bool {
	return requested && term.IsTerminal(int(os.Stdout.Fd()))
}
