package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version   = "N/A"
	buildDate = "N/A"
	commit    = "N/A"
)

// SetBuildInfo records the values injected at build time.
func SetBuildInfo(v, date, c string) {
	version, buildDate, commit = v, date, c
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipAppAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "repairctl %s\n", version)
		fmt.Fprintf(out, "  Commit:     %s\n", commit)
		fmt.Fprintf(out, "  Built:      %s\n", buildDate)
		fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
