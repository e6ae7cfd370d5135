package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for datepicker.

Shows the configuration file location, whether it exists, and all current settings.

By default, datepicker works without any configuration file. All settings have defaults:
  - default_granularity: week
  - timezone: Local (system timezone)
  - theme: dracula

Examples:
  datepicker config                  Show all current settings
  datepicker config init             Write a commented sample config file

Configuration file location:
  ~/.config/datepicker/config.toml   Linux
  %APPDATA%\datepicker\config.toml   Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	services, ok := loadServices()
	if !ok {
		return
	}
	cfg := services.Config.Get()
	exists := services.Config.Exists()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for datepicker")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", services.Config.GetPath())
	if exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Granularity:     %s\n", cfg.DefaultGranularity)
	_, _ = fmt.Fprintf(deps.Stdout, "Timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !exists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'datepicker config init' to create a config file with all options.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample config file
func initConfig() {
	services, ok := loadServices()
	if !ok {
		return
	}

	if err := services.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit the existing file or remove it first")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", services.Config.GetPath())
}
