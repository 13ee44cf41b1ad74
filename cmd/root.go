// =============================================================================
// Budget & Actual Validator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'validate') are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (validator)
//   ├── validateCmd (validator validate)
//   └── versionCmd (validator version)
//
// The root command owns the global flags (--config, --verbose) and the
// creation of the application logger.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the run configuration file.
// Empty means built-in defaults (all settings can still be set via flags).
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "validator",

	Short: "Budget & Actual Validator - Reconcile two sides of a budget/actual report",

	Long: `Budget & Actual Validator is a CLI tool that checks whether two sets of
named numeric records (a "left" and a "right" side of one spreadsheet, such
as a budget/actual reporting pair) agree within tolerance.

Names that differ slightly between the two sides are reconciled with fuzzy
string matching before the numbers are compared.

Key Features:
  - Robust numeric parsing (currency symbols, thousands separators,
    parenthesized negatives)
  - Exact-then-fuzzy name matching with a configurable threshold
  - Heuristic header row detection
  - CSV export of every result that needs attention

Example Usage:
  validator validate --file report.xlsx             # Reconcile with defaults
  validator validate --file report.xlsx --show-all  # List matching rows too
  validator validate --file report.xlsx --config my.yaml`,

	// Run prints the help message when no subcommand is given.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// LOGGING
// =============================================================================

// newLogger builds the application logger. Log output goes to stderr so the
// validation listing on stdout stays clean for piping.
func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the run configuration file (defaults apply when omitted)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
