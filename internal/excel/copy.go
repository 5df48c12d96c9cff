package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CopySheet mirrors a source sheet into a sheet of the same name in the
// destination workbook: merged ranges first, then cell values/formulas
// and styles, then column and row sizing. Formulas are carried over as
// text and never evaluated.
func CopySheet(src, dst *Editor, sheetName string) error {
	maxCol, maxRow, err := sheetBounds(src, sheetName)
	if err != nil {
		return err
	}

	subordinates, err := copyMergedCells(src, dst, sheetName)
	if err != nil {
		return fmt.Errorf("failed to copy merged cells: %w", err)
	}
	if err := copyCells(src, dst, sheetName, maxCol, maxRow, subordinates); err != nil {
		return err
	}
	if err := copyColumnDimensions(src, dst, sheetName, maxCol); err != nil {
		return err
	}
	return copyRowDimensions(src, dst, sheetName, maxRow)
}

// copyMergedCells recreates every merged range and returns the set of
// subordinate cells, the non-anchor members of a merge. Only the
// top-left anchor of a merge carries data, so subordinates are skipped
// by the cell copy that follows.
func copyMergedCells(src, dst *Editor, sheetName string) (map[string]bool, error) {
	merges, err := src.file.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	subordinates := make(map[string]bool)
	for _, merge := range merges {
		start, end := merge.GetStartAxis(), merge.GetEndAxis()
		if err := dst.file.MergeCell(sheetName, start, end); err != nil {
			return nil, err
		}

		startCol, startRow, err := excelize.CellNameToCoordinates(start)
		if err != nil {
			return nil, err
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(end)
		if err != nil {
			return nil, err
		}
		for row := startRow; row <= endRow; row++ {
			for col := startCol; col <= endCol; col++ {
				if col == startCol && row == startRow {
					continue // anchor keeps its value
				}
				cell, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return nil, err
				}
				subordinates[cell] = true
			}
		}
	}
	return subordinates, nil
}

func copyCells(src, dst *Editor, sheetName string, maxCol, maxRow int, subordinates map[string]bool) error {
	// Styles are deduplicated: identical source styles map to a single
	// destination style ID.
	styleCache := make(map[int]int)

	for row := 1; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if subordinates[cell] {
				continue
			}
			if err := copyCellValue(src, dst, sheetName, cell); err != nil {
				return fmt.Errorf("failed to copy cell %s: %w", cell, err)
			}
			if err := copyCellStyle(src, dst, sheetName, cell, styleCache); err != nil {
				return fmt.Errorf("failed to copy style of cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func copyCellValue(src, dst *Editor, sheetName, cell string) error {
	formula, err := src.file.GetCellFormula(sheetName, cell)
	if err != nil {
		return err
	}
	if formula != "" {
		return dst.file.SetCellFormula(sheetName, cell, formula)
	}

	raw, err := src.file.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	cellType, err := src.file.GetCellType(sheetName, cell)
	if err != nil {
		return err
	}
	switch cellType {
	case excelize.CellTypeBool:
		return dst.file.SetCellBool(sheetName, cell, raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return dst.file.SetCellStr(sheetName, cell, raw)
	default:
		// Numeric cells carry no type attribute, so numbers arrive here
		return dst.file.SetCellValue(sheetName, cell, parseNumericValue(raw))
	}
}

func copyCellStyle(src, dst *Editor, sheetName, cell string, styleCache map[int]int) error {
	styleID, err := src.file.GetCellStyle(sheetName, cell)
	if err != nil {
		return err
	}
	if styleID == 0 {
		// Default style, nothing to carry over
		return nil
	}

	dstStyleID, ok := styleCache[styleID]
	if !ok {
		style, err := src.file.GetStyle(styleID)
		if err != nil {
			return err
		}
		// NewStyle registers an independent copy in the destination, so
		// later changes to either workbook's styles stay isolated
		dstStyleID, err = dst.file.NewStyle(style)
		if err != nil {
			return err
		}
		styleCache[styleID] = dstStyleID
	}
	return dst.file.SetCellStyle(sheetName, cell, cell, dstStyleID)
}

func copyColumnDimensions(src, dst *Editor, sheetName string, maxCol int) error {
	for col := 1; col <= maxCol; col++ {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if width, err := src.file.GetColWidth(sheetName, colName); err == nil && width > 0 {
			if err := dst.file.SetColWidth(sheetName, colName, colName, width); err != nil {
				return err
			}
		}
		if visible, err := src.file.GetColVisible(sheetName, colName); err == nil && !visible {
			if err := dst.file.SetColVisible(sheetName, colName, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyRowDimensions(src, dst *Editor, sheetName string, maxRow int) error {
	for row := 1; row <= maxRow; row++ {
		if height, err := src.file.GetRowHeight(sheetName, row); err == nil && height > 0 {
			if err := dst.file.SetRowHeight(sheetName, row, height); err != nil {
				return err
			}
		}
		if visible, err := src.file.GetRowVisible(sheetName, row); err == nil && !visible {
			if err := dst.file.SetRowVisible(sheetName, row, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetBounds returns the rightmost column and bottom row to walk when
// copying. The declared dimension and the populated rows can disagree
// (in-memory writes do not refresh the dimension), so take the wider of
// the two.
func sheetBounds(e *Editor, sheetName string) (int, int, error) {
	maxCol, maxRow := 0, 0
	if dim, err := e.file.GetSheetDimension(sheetName); err == nil && dim != "" {
		if _, _, endCol, endRow, err := ParseRange(dim); err == nil {
			maxCol, maxRow = endCol, endRow
		}
	}

	rows, err := e.file.GetRows(sheetName)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) > maxRow {
		maxRow = len(rows)
	}
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxCol, maxRow, nil
}

// parseNumericValue attempts to parse a raw cell value as a number and
// returns the appropriate type. Returns the original string if it's not
// a valid number.
func parseNumericValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	if intVal, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return floatVal
	}
	return value
}
