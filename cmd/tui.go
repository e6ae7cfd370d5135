package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/datepicker/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive picker.

The current range is shown as ◀ label ▶ and every change is saved,
so the CLI commands continue from wherever the TUI left off.

Keyboard shortcuts:
  - ←/h, →/l: Previous/next day, week or month
  - d, w, m: Switch granularity
  - t: Jump to today
  - Enter/p: Type a date
  - Tab/1-2: Switch between picker and config
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// runTUIProgram starts the interactive program; replaced in tests
var runTUIProgram = tui.Run

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := runTUIProgram(services); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the terminal UI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
