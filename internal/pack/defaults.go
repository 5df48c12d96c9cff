package pack

import "xlsxpack/internal/excel"

// DefaultPrintAreas returns the print boundaries used when a source
// sheet declares no print area. The per-sheet entries are conservative
// estimates for the known IND_ACQ sheets; anything else gets the wide
// Z/100 fallback.
func DefaultPrintAreas() excel.PrintDefaults {
	return excel.PrintDefaults{
		Columns: map[string]string{
			"Investment Summary": "M",  // ~13 columns
			"Returns Summary":    "G",  // ~7 columns
			"Error Check":        "F",  // ~6 columns
			"Model Outputs":      "H",  // ~8 columns
			"Annual CF":          "N",  // ~14 columns (years 0-10 + labels)
			"Assumptions":        "F",  // ~6 columns
			"Rent Roll":          "L",  // ~12 columns
			"Renovation Budget":  "E",  // ~5 columns
			"Monthly CF":         "BM", // ~65 columns (60 months + headers)
		},
		Rows: map[string]int{
			"Investment Summary": 50,
			"Returns Summary":    40,
			"Error Check":        30,
			"Model Outputs":      60,
			"Annual CF":          45,
			"Assumptions":        80,
			"Rent Roll":          50,
			"Renovation Budget":  40,
			"Monthly CF":         60,
		},
		FallbackColumn: "Z",
		FallbackRow:    100,
	}
}
