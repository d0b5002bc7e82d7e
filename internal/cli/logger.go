package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger builds the logger for a command invocation. With --verbose
// it logs at Debug to stderr; otherwise logging is off and command
// output is the only thing written.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "chroma",
		Output: os.Stderr,
		Level:  level,
	})
}
