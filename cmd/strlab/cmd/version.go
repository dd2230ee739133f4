package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/strlab/pkg/core/version"
)

var showComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "strlab v%s\n", version.Platform)
		fmt.Fprintf(out, "  Git Commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)

		if showComponents {
			fmt.Fprintln(out, "  Components:")
			for _, name := range version.Components() {
				fmt.Fprintf(out, "    %-9s %s\n", name, version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&showComponents, "components", false, "also print component versions")
	rootCmd.AddCommand(versionCmd)
}
