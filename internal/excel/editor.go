package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const printAreaDefinedName = "_xlnm.Print_Area"

type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	file := excelize.NewFile()
	return &Editor{
		file:     file,
		filepath: "",
	}
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// HasSheet reports whether the workbook contains a sheet with the given name
func (e *Editor) HasSheet(sheetName string) bool {
	index, err := e.file.GetSheetIndex(sheetName)
	return err == nil && index >= 0
}

// AddSheet creates a new sheet
func (e *Editor) AddSheet(sheetName string) error {
	_, err := e.file.NewSheet(sheetName)
	return err
}

// RenameSheet renames an existing sheet
func (e *Editor) RenameSheet(oldName, newName string) error {
	return e.file.SetSheetName(oldName, newName)
}

// GetCellValue returns the value in a specific cell
func (e *Editor) GetCellValue(sheet, cell string) (string, error) {
	return e.file.GetCellValue(sheet, cell)
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// SetCellFormula sets a formula for a specific cell
func (e *Editor) SetCellFormula(sheet, cell, formula string) error {
	return e.file.SetCellFormula(sheet, cell, formula)
}

// GetCellFormula returns the formula in a specific cell (if any)
func (e *Editor) GetCellFormula(sheet, cell string) (string, error) {
	return e.file.GetCellFormula(sheet, cell)
}

// GetPrintArea returns the print area declared for a sheet, normalized
// to plain A1 form (no sheet prefix, no absolute markers), or "" when
// the sheet declares none. Multiple areas stay comma separated.
func (e *Editor) GetPrintArea(sheetName string) string {
	for _, dn := range e.file.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaDefinedName) {
			continue
		}
		refSheet, ranges := parsePrintAreaReference(dn.RefersTo)
		if dn.Scope == sheetName || refSheet == sheetName {
			return strings.Join(ranges, ",")
		}
	}
	return ""
}

// SetPrintArea declares the print area for a sheet. The range is given
// in plain A1 form and stored as a sheet-scoped defined name with
// absolute references, which is how XLSX records print areas.
func (e *Editor) SetPrintArea(sheetName, area string) error {
	parts := strings.Split(area, ",")
	refs := make([]string, 0, len(parts))
	for _, part := range parts {
		ref, err := absoluteRange(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid print area %q: %w", part, err)
		}
		refs = append(refs, fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheetName, "'", "''"), ref))
	}
	return e.file.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaDefinedName,
		RefersTo: strings.Join(refs, ","),
		Scope:    sheetName,
	})
}

// parsePrintAreaReference splits a print area reference like
// 'Annual CF'!$A$1:$N$45,'Annual CF'!$P$1:$R$10 into the sheet name and
// its normalized A1 ranges.
func parsePrintAreaReference(ref string) (string, []string) {
	var sheetName string
	var ranges []string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			if sheetName == "" {
				sheetName = sheet
			}
			rangeStr = part[idx+1:]
		}
		ranges = append(ranges, NormalizeRange(rangeStr))
	}
	return sheetName, ranges
}

// GetPageLayout returns the page layout options of a sheet
func (e *Editor) GetPageLayout(sheet string) (excelize.PageLayoutOptions, error) {
	return e.file.GetPageLayout(sheet)
}

// SetPageLayout sets page layout options on a sheet
func (e *Editor) SetPageLayout(sheet string, opts *excelize.PageLayoutOptions) error {
	return e.file.SetPageLayout(sheet, opts)
}

// GetSheetProps returns the sheet property options of a sheet
func (e *Editor) GetSheetProps(sheet string) (excelize.SheetPropsOptions, error) {
	return e.file.GetSheetProps(sheet)
}

// SetSheetProps sets sheet property options on a sheet
func (e *Editor) SetSheetProps(sheet string, opts *excelize.SheetPropsOptions) error {
	return e.file.SetSheetProps(sheet, opts)
}

// GetPageMargins returns the page margins of a sheet
func (e *Editor) GetPageMargins(sheet string) (excelize.PageLayoutMarginsOptions, error) {
	return e.file.GetPageMargins(sheet)
}

// SetPageMargins sets the page margins of a sheet
func (e *Editor) SetPageMargins(sheet string, opts *excelize.PageLayoutMarginsOptions) error {
	return e.file.SetPageMargins(sheet, opts)
}
