package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/datepicker/internal/service"
)

var nextCmd = &cobra.Command{
	Use:   "next [n]",
	Short: "Move the range forward",
	Long: `Move the current range forward by one unit of the current granularity,
or by n units when given.

Examples:
  datepicker next                   Next day, week or month
  datepicker next 3                 Three units forward`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStep(args, 1)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev [n]",
	Short: "Move the range back",
	Long: `Move the current range back by one unit of the current granularity,
or by n units when given.

Examples:
  datepicker prev                   Previous day, week or month
  datepicker prev 12                Twelve units back`,
	Aliases: []string{"previous"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStep(args, -1)
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick <date>",
	Short: "Select the range containing a date",
	Long: `Select the day, week or month containing the given date.
Picking a date inside the current range leaves it unchanged.

Supported formats:
  YYYY-MM-DD, DD/MM/YYYY, DD.MM.YYYY  A specific day
  YYYY-MM, MM-YYYY, MM.YYYY           The first day of a month
  today (t), yesterday (y), tomorrow  Relative to the current date

Examples:
  datepicker pick 2024-02-29
  datepicker pick 29.02.2024
  datepicker pick 03-2024`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPick(strings.Join(args, " "))
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Select the range containing today",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPickerOp("Failed to select today", func(svc *service.PickerService) (*service.Result, error) {
			return svc.Today()
		})
	},
}

var granularityCmd = &cobra.Command{
	Use:   "granularity <day|week|month>",
	Short: "Switch between day, week and month",
	Long: `Switch the granularity and re-derive the range from its current start.

Examples:
  datepicker granularity month      June 2024 when a day in June was shown
  datepicker granularity w          Short forms d, w and m are accepted`,
	Aliases: []string{"g"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runPickerOp("Failed to change granularity", func(svc *service.PickerService) (*service.Result, error) {
			return svc.SetGranularity(args[0])
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved range",
	Long:  `Remove the saved range so the next command starts from today with the configured default granularity.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReset()
	},
}

// runStep parses the optional count and steps in the given direction
func runStep(args []string, direction int) {
	n := 1
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid count")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %q is not a non-negative whole number\n", args[0])
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use 'datepicker next 3' or 'datepicker prev 3'")
			deps.Exit(1)
			return
		}
		n = parsed
	}

	runPickerOp("Failed to move the range", func(svc *service.PickerService) (*service.Result, error) {
		return svc.Step(direction * n)
	})
}

// runPick selects the range containing the typed date
func runPick(input string) {
	services, ok := loadServices()
	if !ok {
		return
	}

	result, err := services.Picker.Pick(input)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to pick date")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD, DD.MM.YYYY or MM-YYYY (e.g., 2024-02-29)")
		deps.Exit(1)
		return
	}
	printResult(result, true)
}

// runPickerOp runs a picker service operation and prints the outcome
func runPickerOp(summary string, op func(svc *service.PickerService) (*service.Result, error)) {
	services, ok := loadServices()
	if !ok {
		return
	}

	result, err := op(services.Picker)
	if err != nil {
		reportError(summary, err)
		return
	}
	printResult(result, true)
}

func runReset() {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := services.Picker.Reset(); err != nil {
		reportError("Failed to reset", err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "Saved range cleared")
}
