// =============================================================================
// Budget & Actual Validator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Budget & Actual Validator CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   validator validate --file report.xlsx   - Reconcile one workbook
//   validator version                       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core reconciliation logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/madhukesh048/budget-validator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
