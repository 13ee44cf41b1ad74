// =============================================================================
// Budget & Actual Validator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the full
// reconciliation pipeline for one workbook.
//
// COMMAND USAGE:
//   validator validate --file report.xlsx [flags]
//
// FLAGS:
//   --file        : Path of the workbook (or CSV) to validate (required)
//   --sheet       : Workbook sheet name (default: first sheet)
//   --tolerance   : Numeric tolerance override
//   --threshold   : Fuzzy-match threshold override
//   --show-all    : List every result, not only attention-needing ones
//   --output      : Output directory override for the CSV export
//   --dry-run     : Run the validation but skip the CSV export
//
// PIPELINE:
//   1. Load the run configuration (file values, then flag overrides)
//   2. Load the grid from the workbook
//   3. Reconcile (header detection, index build, matching, comparison)
//   4. Print the listing and summary
//   5. Write the mismatch CSV export
//
// Finding mismatches is the tool's job, so the exit code stays zero when
// mismatches exist; only input-fatal errors exit non-zero.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/madhukesh048/budget-validator/internal/config"
	"github.com/madhukesh048/budget-validator/internal/grid"
	"github.com/madhukesh048/budget-validator/internal/recon"
	"github.com/madhukesh048/budget-validator/internal/report"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputFile is the workbook (or CSV) to validate.
var inputFile string

// sheetName selects the workbook sheet; empty means the first sheet.
var sheetName string

// toleranceFlag overrides the configured numeric tolerance.
var toleranceFlag float64

// thresholdFlag overrides the configured fuzzy-match threshold.
var thresholdFlag float64

// showAll lists every result instead of only attention-needing ones.
var showAll bool

// outputDir overrides the configured export directory.
var outputDir string

// dryRun skips writing the CSV export.
var dryRun bool

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Reconcile the left and right side of one workbook",
	Long: `The validate command loads one workbook, pairs each left-side line item
with a right-side line item (exact name match first, fuzzy match otherwise),
and checks that the budget and actual values agree within tolerance.

The listing on stdout shows every result that needs attention; a CSV export
with the same rows is written to the output directory.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

// init registers the validate command and its flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&inputFile, "file", "", "Path of the workbook or CSV to validate")
	validateCmd.MarkFlagRequired("file")

	validateCmd.Flags().StringVar(&sheetName, "sheet", "", "Workbook sheet name (default: first sheet)")
	validateCmd.Flags().Float64Var(&toleranceFlag, "tolerance", 0.01, "Maximum absolute difference that still counts as agreeing")
	validateCmd.Flags().Float64Var(&thresholdFlag, "threshold", 0.60, "Minimum similarity score for a fuzzy name match")
	validateCmd.Flags().BoolVar(&showAll, "show-all", false, "List every result, not only attention-needing ones")
	validateCmd.Flags().StringVar(&outputDir, "output", "", "Output directory for the CSV export")
	validateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the validation but skip the CSV export")
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// runValidate executes the pipeline for one workbook.
func runValidate(cmd *cobra.Command) error {
	// Configuration: file values first, explicit flags override.
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Debug("configuration loaded",
		"tolerance", cfg.Tolerance,
		"fuzzy_threshold", cfg.FuzzyThreshold,
		"auto_detect_header", cfg.AutoDetectHeader)

	// Load the grid. File decoding problems are input-fatal.
	g, err := grid.Load(inputFile, cfg.Sheet)
	if err != nil {
		return err
	}
	logger.Info("grid loaded",
		"source", g.Source,
		"rows", g.RowCount(),
		"columns", g.ColumnCount())

	// Reconcile.
	engine := recon.NewEngine(recon.Options{
		LeftName:         cfg.Columns.LeftName,
		LeftBudget:       cfg.Columns.LeftBudget,
		LeftActual:       cfg.Columns.LeftActual,
		RightName:        cfg.Columns.RightName,
		RightBudget:      cfg.Columns.RightBudget,
		RightActual:      cfg.Columns.RightActual,
		Tolerance:        cfg.Tolerance,
		FuzzyThreshold:   cfg.FuzzyThreshold,
		AutoDetectHeader: cfg.AutoDetectHeader,
		StartRow:         cfg.Rows.Start,
		EndRow:           cfg.Rows.End,
	})

	run, err := engine.Run(g)
	if err != nil {
		return err
	}

	if run.HeaderRow >= 0 {
		logger.Info("header row detected and excluded", "row", run.HeaderRow)
	}

	// Listing and summary on stdout.
	report.WriteListing(os.Stdout, run, cfg.ShowAll)

	// CSV export of everything needing attention.
	if dryRun {
		logger.Info("dry run, skipping CSV export")
		return nil
	}

	path, err := report.WriteCSV(run.Results, cfg.OutputDir)
	if err != nil {
		return err
	}
	if path == "" {
		logger.Info("nothing needs attention, no export written")
	} else {
		fmt.Printf("\nMismatch export written to %s\n", path)
	}

	return nil
}

// applyFlagOverrides copies explicitly-set flags over the file-provided
// configuration. Flags the user did not touch leave the file values alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = toleranceFlag
	}
	if cmd.Flags().Changed("threshold") {
		cfg.FuzzyThreshold = thresholdFlag
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet = sheetName
	}
	if cmd.Flags().Changed("show-all") {
		cfg.ShowAll = showAll
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDir
	}
}
