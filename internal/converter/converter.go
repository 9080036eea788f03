// =============================================================================
// CSV to LaTeX Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the
// pipeline for one input file, from CSV parsing to the written .tex file.
//
// CONVERSION PIPELINE:
//   1. Load the input CSV into a table
//   2. Optionally print a preview of the table
//   3. Render the table as a LaTeX tabular block
//   4. Write the block to the output path
//
// Any failure aborts the run. The output file is only opened after loading
// and rendering have both succeeded, so a missing or malformed input never
// touches an existing output.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/latexwriter"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/types"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/internal/validation"
	"github.com/ginjaninja78/CSV-to-LaTeX-conversion/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a successful conversion.
type Result struct {
	// RunID identifies this run in log lines.
	RunID string

	// InputFile is the path of the CSV that was read.
	InputFile string

	// OutputFile is the path of the .tex file that was written.
	OutputFile string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// Rows is the number of data rows (excluding the header row).
	Rows int

	// Columns is the number of table columns (excluding the index column).
	Columns int

	// BytesWritten is the size of the output file.
	BytesWritten int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one CSV file to one LaTeX file.
type Converter struct {
	cfg    *config.Config
	logger Logger

	// previewOut receives the table preview when cfg.Preview is set.
	previewOut io.Writer
}

// Logger is the logging interface used by the converter.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter.
//
// PARAMETERS:
//   - cfg: The validated configuration.
//   - logger: Destination for log lines. nil uses NewLogger(os.Stderr, false).
//   - previewOut: Destination for --preview output. nil uses os.Stdout.
func New(cfg *config.Config, logger Logger, previewOut io.Writer) *Converter {
	if logger == nil {
		logger = NewLogger(os.Stderr, false)
	}
	if previewOut == nil {
		previewOut = os.Stdout
	}
	return &Converter{
		cfg:        cfg,
		logger:     logger,
		previewOut: previewOut,
	}
}

// NewLogger returns a text slog logger writing to w.
// verbose lowers the level to debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - The result on success.
//   - An error wrapping *types.NotFoundError, *types.ParseError or
//     *types.WriteError on failure, or ctx.Err() if ctx is done first.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		RunID:      uuid.New().String(),
		InputFile:  c.cfg.Input,
		OutputFile: c.cfg.Output,
	}

	cwd, _ := os.Getwd()
	c.logger.Info("starting conversion",
		"run_id", result.RunID,
		"cwd", cwd,
		"input", c.cfg.Input,
		"output", c.cfg.Output,
	)

	// =========================================================================
	// STEP 1: LOAD INPUT
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := csvparser.Load(c.cfg.Input, c.cfg.CSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	result.Stats.Rows = table.NumRows()
	result.Stats.Columns = table.NumColumns()
	c.logger.Debug("loaded table",
		"run_id", result.RunID,
		"rows", table.NumRows(),
		"columns", table.NumColumns(),
		"header", table.HasHeader,
		"kinds", columnKinds(table),
	)

	if c.cfg.Preview {
		RenderPreview(c.previewOut, table, c.cfg.LaTeX.Index)
	}

	// =========================================================================
	// STEP 2: RENDER
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := latexwriter.RenderWithOptions(table, RenderOptions(c.cfg.LaTeX))
	if err != nil {
		return nil, fmt.Errorf("failed to render table: %w", err)
	}

	// =========================================================================
	// STEP 3: WRITE OUTPUT
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	replaced := utils.FileExists(c.cfg.Output)

	n, err := utils.WriteTextFile(text, c.cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	result.Stats.BytesWritten = n
	result.Stats.ProcessingTime = time.Since(startTime)

	c.logger.Info("conversion complete",
		"run_id", result.RunID,
		"output", c.cfg.Output,
		"rows", result.Stats.Rows,
		"columns", result.Stats.Columns,
		"bytes", n,
		"replaced", replaced,
		"elapsed", result.Stats.ProcessingTime,
	)

	return result, nil
}

// columnKinds names the inferred kind of every column, in order.
func columnKinds(table *types.Table) string {
	kinds := validation.InferColumnKinds(table)
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return strings.Join(names, ",")
}

// RenderOptions maps the LaTeX settings onto writer options.
func RenderOptions(settings config.LaTeXSettings) latexwriter.RenderOptions {
	return latexwriter.RenderOptions{
		IncludeRowIndex: settings.Index,
		Booktabs:        settings.Booktabs,
		ColumnFormat:    settings.ColumnFormat,
		Caption:         settings.Caption,
		Label:           settings.Label,
		Position:        settings.Position,
		NaRep:           settings.NaRep,
	}
}
