// Package cli provides the command-line interface for Skilldeck.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "skilldeck",
	Short: "Track your skills from the terminal",
	Long: `Track your skills from the terminal

A terminal client for the skills service: browse, search and sort your
skill associations, adjust levels, and add skills from the catalog.

Run without arguments to launch the interactive TUI.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  credentials, search terms, or skill names.

  It will only be used to improve Skilldeck.

  Opt-out with:
  	SKILLDECK_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runTUI,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Track command execution (skip for the root TUI command)
		if cmd.Name() != "skilldeck" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(setLevelCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	// Track app exit for CLI mode (non-TUI subcommands)
	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "skilldeck" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs)
	}

	return err
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "session", "signed in", "unauthorized", "credentials"):
		return "auth_error"
	case containsAny(errStr, "network", "timeout", "connection", "refused"):
		return "network_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
