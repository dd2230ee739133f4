package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/strlab/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive TUI",
	Long: `Starts the terminal user interface over the same tasks as the menu.

Navigation:
  Up/Down, j/k  - select a task
  0-6           - open a task directly
  Enter         - open the task, then run it
  Esc           - back to the menu
  Ctrl+C        - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(
		tui.NewModel(newTable()),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if _, err := p.Run(); err != nil {
		return fail(cmd, "TUI failed", err)
	}

	return nil
}
