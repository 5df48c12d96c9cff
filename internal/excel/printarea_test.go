package excel

import (
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSCol  int
		wantSRow  int
		wantECol  int
		wantERow  int
		wantError bool
	}{
		{
			name:     "simple range",
			input:    "A1:M50",
			wantSCol: 1, wantSRow: 1, wantECol: 13, wantERow: 50,
		},
		{
			name:     "single cell",
			input:    "B5",
			wantSCol: 2, wantSRow: 5, wantECol: 2, wantERow: 5,
		},
		{
			name:     "absolute references",
			input:    "$A$1:$N$45",
			wantSCol: 1, wantSRow: 1, wantECol: 14, wantERow: 45,
		},
		{
			name:     "multi-letter columns",
			input:    "A1:BM60",
			wantSCol: 1, wantSRow: 1, wantECol: 65, wantERow: 60,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "missing row number",
			input:     "A:C",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sCol, sRow, eCol, eRow, err := ParseRange(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseRange(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseRange(%q) unexpected error: %v", tt.input, err)
				return
			}
			if sCol != tt.wantSCol || sRow != tt.wantSRow || eCol != tt.wantECol || eRow != tt.wantERow {
				t.Errorf("ParseRange(%q) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.input, sCol, sRow, eCol, eRow, tt.wantSCol, tt.wantSRow, tt.wantECol, tt.wantERow)
			}
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already normalized",
			input: "A1:K30",
			want:  "A1:K30",
		},
		{
			name:  "strips absolute references",
			input: "$A$1:$K$30",
			want:  "A1:K30",
		},
		{
			name:  "invalid input returns original",
			input: "not-a-range",
			want:  "not-a-range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRange(tt.input); got != tt.want {
				t.Errorf("NormalizeRange(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func testPrintDefaults() PrintDefaults {
	return PrintDefaults{
		Columns:        map[string]string{"Annual CF": "N"},
		Rows:           map[string]int{"Annual CF": 45},
		FallbackColumn: "Z",
		FallbackRow:    100,
	}
}

func TestResolvePrintAreaPassThrough(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()

	if err := src.SetPrintArea("Sheet1", "A1:K30"); err != nil {
		t.Fatalf("SetPrintArea: %v", err)
	}

	got := ResolvePrintArea(src, "Sheet1", testPrintDefaults())
	if got != "A1:K30" {
		t.Errorf("ResolvePrintArea = %q, want %q", got, "A1:K30")
	}
}

func TestResolvePrintAreaDefaults(t *testing.T) {
	src := CreateNewFile()
	defer src.Close()

	if err := src.RenameSheet("Sheet1", "Annual CF"); err != nil {
		t.Fatalf("RenameSheet: %v", err)
	}
	if err := src.AddSheet("Unknown Sheet"); err != nil {
		t.Fatalf("AddSheet: %v", err)
	}

	defaults := testPrintDefaults()
	if got := ResolvePrintArea(src, "Annual CF", defaults); got != "A1:N45" {
		t.Errorf("known sheet: ResolvePrintArea = %q, want %q", got, "A1:N45")
	}
	if got := ResolvePrintArea(src, "Unknown Sheet", defaults); got != "A1:Z100" {
		t.Errorf("unknown sheet: ResolvePrintArea = %q, want %q", got, "A1:Z100")
	}
}

func TestSetPrintAreaStoredAsDefinedName(t *testing.T) {
	e := CreateNewFile()
	defer e.Close()

	if err := e.SetPrintArea("Sheet1", "A1:M50"); err != nil {
		t.Fatalf("SetPrintArea: %v", err)
	}

	if got := e.GetPrintArea("Sheet1"); got != "A1:M50" {
		t.Errorf("GetPrintArea = %q, want %q", got, "A1:M50")
	}
}
