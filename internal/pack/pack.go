package pack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"xlsxpack/internal/config"
	"xlsxpack/internal/excel"
	"xlsxpack/internal/logger"
)

// ErrSourceNotFound indicates the source workbook does not exist.
var ErrSourceNotFound = errors.New("source workbook not found")

// Result describes one pack extraction run.
type Result struct {
	Success       bool     `json:"success"`
	Source        string   `json:"source"`
	Output        string   `json:"output"`
	SheetsCopied  []string `json:"sheets_copied"`
	SheetsMissing []string `json:"sheets_missing"`
	ExpectedPages int      `json:"expected_pages"`
	PageTolerance int      `json:"page_tolerance"`
}

// Create builds the pack workbook: it opens the source read-only, walks
// the configured sheets in order, copies each one with its print layout
// into a fresh workbook and saves that workbook once at the end.
// Configured sheets absent from the source are recorded in the Result
// and skipped; they never abort the run.
func Create(sourcePath, outputPath string, cfg *config.Config, defaults excel.PrintDefaults) (*Result, error) {
	if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}

	fmt.Printf("Loading source workbook: %s\n", sourcePath)
	src, err := excel.OpenFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source workbook: %w", err)
	}
	defer src.Close()

	sourceSheets := src.GetSheetNames()
	fmt.Printf("  Source sheets: %v\n", sourceSheets)
	logger.Info("Opened source workbook", "path", sourcePath, "sheets", len(sourceSheets))

	dst := excel.CreateNewFile()
	defer dst.Close()

	// A new workbook starts with exactly one sheet; the first copied
	// sheet takes it over so no orphan placeholder remains
	defaultSheet := dst.GetSheetNames()[0]

	copied := []string{}
	missing := []string{}
	totalExpectedPages := 0

	for _, spec := range cfg.SortedSheets() {
		if !src.HasSheet(spec.Name) {
			fmt.Printf("  WARNING: Sheet '%s' not found in source\n", spec.Name)
			logger.Warn("Sheet not found in source", "sheet", spec.Name)
			missing = append(missing, spec.Name)
			continue
		}

		if len(copied) == 0 {
			if err := dst.RenameSheet(defaultSheet, spec.Name); err != nil {
				return nil, fmt.Errorf("failed to rename initial sheet to %s: %w", spec.Name, err)
			}
		} else {
			if err := dst.AddSheet(spec.Name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", spec.Name, err)
			}
		}

		fmt.Printf("  Copying sheet: %s (expected %d pages)\n", spec.Name, spec.ExpectedPages)
		if err := excel.CopySheet(src, dst, spec.Name); err != nil {
			return nil, fmt.Errorf("failed to copy sheet %s: %w", spec.Name, err)
		}

		printArea := excel.ResolvePrintArea(src, spec.Name, defaults)
		if err := dst.SetPrintArea(spec.Name, printArea); err != nil {
			return nil, fmt.Errorf("failed to set print area on %s: %w", spec.Name, err)
		}
		fmt.Printf("    Print area: %s\n", printArea)

		if err := excel.ApplyPageSetup(dst, spec.Name, spec.Orientation, src); err != nil {
			return nil, fmt.Errorf("failed to apply page setup on %s: %w", spec.Name, err)
		}

		copied = append(copied, spec.Name)
		totalExpectedPages += spec.ExpectedPages
	}

	fmt.Printf("Saving pack workbook: %s\n", outputPath)
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := dst.SaveAs(outputPath); err != nil {
		return nil, fmt.Errorf("failed to save pack workbook: %w", err)
	}

	logger.Info("Pack created",
		"output", outputPath,
		"sheets_copied", len(copied),
		"sheets_missing", len(missing),
		"expected_pages", totalExpectedPages)

	return &Result{
		Success:       true,
		Source:        sourcePath,
		Output:        outputPath,
		SheetsCopied:  copied,
		SheetsMissing: missing,
		ExpectedPages: totalExpectedPages,
		PageTolerance: cfg.PageTolerance,
	}, nil
}
