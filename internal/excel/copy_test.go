package excel

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

const testSheet = "Sheet1"

func TestCopySheetValuesAndFormulas(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()
	dst := CreateNewFile()
	defer dst.Close()

	if err := src.SetCellValue(testSheet, "A1", 42); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := src.SetCellFormula(testSheet, "B1", "A1*2"); err != nil {
		t.Fatalf("SetCellFormula: %v", err)
	}
	if err := src.SetCellValue(testSheet, "C1", "Net Operating Income"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := src.SetCellValue(testSheet, "D2", 3.14); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	if err := CopySheet(src, dst, testSheet); err != nil {
		t.Fatalf("CopySheet: %v", err)
	}

	checks := []struct {
		cell string
		want string
	}{
		{"A1", "42"},
		{"C1", "Net Operating Income"},
		{"D2", "3.14"},
	}
	for _, c := range checks {
		got, err := dst.GetCellValue(testSheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}

	// Formula text is carried over, never evaluated
	formula, err := dst.GetCellFormula(testSheet, "B1")
	if err != nil {
		t.Fatalf("GetCellFormula: %v", err)
	}
	if formula != "A1*2" {
		t.Errorf("formula B1 = %q, want %q", formula, "A1*2")
	}
}

func TestCopySheetMergedCells(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()
	dst := CreateNewFile()
	defer dst.Close()

	if err := src.SetCellValue(testSheet, "A1", "Investment Summary"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := src.file.MergeCell(testSheet, "A1", "B2"); err != nil {
		t.Fatalf("MergeCell: %v", err)
	}

	if err := CopySheet(src, dst, testSheet); err != nil {
		t.Fatalf("CopySheet: %v", err)
	}

	merges, err := dst.file.GetMergeCells(testSheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("got %d merged ranges, want 1", len(merges))
	}
	if start, end := merges[0].GetStartAxis(), merges[0].GetEndAxis(); start != "A1" || end != "B2" {
		t.Errorf("merged range = %s:%s, want A1:B2", start, end)
	}

	got, err := dst.GetCellValue(testSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "Investment Summary" {
		t.Errorf("anchor cell = %q, want %q", got, "Investment Summary")
	}
}

func TestCopySheetStyles(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()
	dst := CreateNewFile()
	defer dst.Close()

	styleID, err := src.file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 2,
	})
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	if err := src.SetCellValue(testSheet, "A1", 1234.5); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := src.file.SetCellStyle(testSheet, "A1", "A1", styleID); err != nil {
		t.Fatalf("SetCellStyle: %v", err)
	}

	if err := CopySheet(src, dst, testSheet); err != nil {
		t.Fatalf("CopySheet: %v", err)
	}

	dstStyleID, err := dst.file.GetCellStyle(testSheet, "A1")
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}
	if dstStyleID == 0 {
		t.Fatal("destination cell has no style")
	}
	style, err := dst.file.GetStyle(dstStyleID)
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Error("bold font was not carried over")
	}
	if style.NumFmt != 2 {
		t.Errorf("number format = %d, want 2", style.NumFmt)
	}
}

func TestCopySheetDimensions(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()
	dst := CreateNewFile()
	defer dst.Close()

	// A far cell so the copy walks past the sized columns and rows
	if err := src.SetCellValue(testSheet, "E10", "x"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := src.file.SetColWidth(testSheet, "B", "B", 22.5); err != nil {
		t.Fatalf("SetColWidth: %v", err)
	}
	if err := src.file.SetRowHeight(testSheet, 3, 30); err != nil {
		t.Fatalf("SetRowHeight: %v", err)
	}
	if err := src.file.SetColVisible(testSheet, "C", false); err != nil {
		t.Fatalf("SetColVisible: %v", err)
	}
	if err := src.file.SetRowVisible(testSheet, 4, false); err != nil {
		t.Fatalf("SetRowVisible: %v", err)
	}

	if err := CopySheet(src, dst, testSheet); err != nil {
		t.Fatalf("CopySheet: %v", err)
	}

	if width, err := dst.file.GetColWidth(testSheet, "B"); err != nil || width != 22.5 {
		t.Errorf("column B width = %v (err %v), want 22.5", width, err)
	}
	if height, err := dst.file.GetRowHeight(testSheet, 3); err != nil || height != 30 {
		t.Errorf("row 3 height = %v (err %v), want 30", height, err)
	}
	if visible, err := dst.file.GetColVisible(testSheet, "C"); err != nil || visible {
		t.Errorf("column C visible = %v (err %v), want hidden", visible, err)
	}
	if visible, err := dst.file.GetRowVisible(testSheet, 4); err != nil || visible {
		t.Errorf("row 4 visible = %v (err %v), want hidden", visible, err)
	}
}
