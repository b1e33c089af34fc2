package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brandgen",
	Short: "Procedural brand icon generator",
	Long: `brandgen renders the brand icon designs from canvas primitives
(rectangles, disks, rings and thick lines) and writes them as truecolor PNGs
with its own encoder.

Each (design, theme) pair is rendered at 1024x1024 and downsampled to the
sizes of the selected profile. A manifest records every file with its
content hash.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"brandgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[brandgen] "+format+"\n", args...)
	}
}
