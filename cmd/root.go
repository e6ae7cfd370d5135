package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/service"
	"github.com/xolan/datepicker/internal/state"
)

// boundaryLayout prints range boundaries with the millisecond end-of-day
const boundaryLayout = "2006-01-02 15:04:05.000"

var rootCmd = &cobra.Command{
	Use:   "datepicker",
	Short: "Step through days, weeks and months",
	Long: `datepicker keeps a current date range and steps it by day, week or month.

Usage:
  datepicker                          Show the current range
  datepicker next [n]                 Move forward one (or n) units
  datepicker prev [n]                 Move back one (or n) units
  datepicker pick <date>              Select the range containing a date
  datepicker today                    Select the range containing today
  datepicker granularity <unit>       Switch between day, week and month
  datepicker reset                    Forget the saved range
  datepicker tui                      Interactive picker

Weeks run Monday to Sunday. Ranges start at 00:00:00.000 and end at 23:59:59.999.
Date formats: YYYY-MM-DD, DD/MM/YYYY, DD.MM.YYYY, MM-YYYY, today, yesterday, tomorrow`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		showRange()
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(granularityCmd)
	rootCmd.AddCommand(resetCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"datepicker version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadServices resolves the services or reports the failure and exits
func loadServices() (*service.Services, bool) {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your config directory is accessible and config.toml is valid")
		deps.Exit(1)
		return nil, false
	}
	return services, true
}

// showRange prints the current range without changing it
func showRange() {
	services, ok := loadServices()
	if !ok {
		return
	}

	result, err := services.Picker.Show()
	if err != nil {
		reportError("Failed to load the current range", err)
		return
	}
	printResult(result, false)
}

// reportError prints an error with a hint matching its kind and exits
func reportError(summary string, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", summary)
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	switch {
	case errors.Is(err, daterange.ErrInvalidGranularity):
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Valid granularities: %s\n", granularityNames())
	case errors.Is(err, daterange.ErrStepOutOfRange), errors.Is(err, state.ErrYearOutOfRange):
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use a smaller count; the range must stay within years 0 to 9999")
	case errors.Is(err, daterange.ErrNullRange), errors.Is(err, daterange.ErrInvertedRange):
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'datepicker reset' to start from today")
	case strings.Contains(err.Error(), "picker state"):
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'datepicker reset' to discard the saved range")
	}
	deps.Exit(1)
}

// printResult displays the picker label and exact boundaries
func printResult(result *service.Result, showUnchanged bool) {
	label := fmt.Sprintf("%s: %s", capitalize(string(result.Granularity)), result.Label)
	if showUnchanged && !result.Changed {
		label += " (unchanged)"
	}
	_, _ = fmt.Fprintln(deps.Stdout, label)
	_, _ = fmt.Fprintf(deps.Stdout, "From: %s\n", result.Range.Start.Format(boundaryLayout))
	_, _ = fmt.Fprintf(deps.Stdout, "To:   %s\n", result.Range.End.Format(boundaryLayout))
}

func granularityNames() string {
	var names []string
	for _, g := range daterange.Granularities() {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
