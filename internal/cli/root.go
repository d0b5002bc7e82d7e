// Package cli provides the command-line interface for Chroma.
package cli

import (
	"fmt"
	"os"

	"github.com/rustpress-net/chroma/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chroma",
	Short: "A theme colour engine",
	Long: `Chroma is the colour engine behind the theme customizer: it converts
between colour spaces, scores WCAG contrast, generates harmony schemes
and full theme palettes from a single seed colour, simulates colour
vision deficiencies, and extracts dominant colours from images.

All commands are pure computations over their arguments; nothing is
persisted and no state is kept between runs.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(simulateCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
