package excel

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

var rangeRegexp = regexp.MustCompile(`^(\$?[A-Z]+\$?\d+)(?::(\$?[A-Z]+\$?\d+))?$`)

// ParseRange parses Excel's range string (e.g. A1:C10 or A1)
func ParseRange(rangeStr string) (int, int, int, int, error) {
	matches := rangeRegexp.FindStringSubmatch(rangeStr)
	if matches == nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(matches[1])
	if err != nil {
		return 0, 0, 0, 0, err
	}

	if matches[2] == "" {
		// Single cell case
		return startCol, startRow, startCol, startRow, nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(matches[2])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return startCol, startRow, endCol, endRow, nil
}

// NormalizeRange rewrites a range in plain A1 form, stripping absolute
// markers. Invalid input is returned unchanged.
func NormalizeRange(rangeStr string) string {
	startCol, startRow, endCol, endRow, err := ParseRange(rangeStr)
	if err != nil {
		return rangeStr
	}
	startCell, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return rangeStr
	}
	endCell, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return rangeStr
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// absoluteRange rewrites a range with absolute references ($A$1:$C$10)
// for use in a defined name.
func absoluteRange(rangeStr string) (string, error) {
	startCol, startRow, endCol, endRow, err := ParseRange(rangeStr)
	if err != nil {
		return "", err
	}
	startCell, err := excelize.CoordinatesToCellName(startCol, startRow, true)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(endCol, endRow, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// PrintDefaults holds the per-sheet print boundaries applied when a
// source sheet declares no print area of its own. Keys are exact sheet
// names; unrecognized sheets get the fallback column and row.
type PrintDefaults struct {
	Columns        map[string]string
	Rows           map[string]int
	FallbackColumn string
	FallbackRow    int
}

// ResolvePrintArea returns the print area to assign for a sheet. A
// print area declared on the source sheet wins unchanged; otherwise the
// area runs from A1 to the default boundary for that sheet name.
func ResolvePrintArea(src *Editor, sheetName string, defaults PrintDefaults) string {
	if area := src.GetPrintArea(sheetName); area != "" {
		return area
	}

	maxCol := defaults.FallbackColumn
	if col, ok := defaults.Columns[sheetName]; ok {
		maxCol = col
	}
	maxRow := defaults.FallbackRow
	if row, ok := defaults.Rows[sheetName]; ok {
		maxRow = row
	}
	return fmt.Sprintf("A1:%s%d", maxCol, maxRow)
}
