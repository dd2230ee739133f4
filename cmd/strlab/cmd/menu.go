package cmd

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Starts the console menu",
	Long: `Starts the line-based console menu. The same menu runs when strlab
is started without a subcommand.

  1-6  run a task
  0    exit`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := newTable().REPL(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fail(cmd, "menu failed", err)
	}
	return nil
}
