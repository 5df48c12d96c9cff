package excel

import (
	"github.com/xuri/excelize/v2"
)

// Fixed pack margins in inches.
const (
	PackMargin       = 0.5
	PackHeaderMargin = 0.3
)

// ApplyPageSetup configures printing for a destination sheet. Paper
// size, scale and fit-to-page flags come from the source sheet when it
// carries its own page setup, otherwise the sheet is fit to one page
// wide with unconstrained height. Orientation always comes from the
// pack config, and margins are always the fixed pack constants.
func ApplyPageSetup(dst *Editor, sheetName, orientation string, src *Editor) error {
	layout, err := src.file.GetPageLayout(sheetName)
	if err != nil {
		return err
	}
	props, err := src.file.GetSheetProps(sheetName)
	if err != nil {
		return err
	}

	if hasPageSetup(layout) {
		if err := dst.file.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
			Size:        layout.Size,
			AdjustTo:    layout.AdjustTo,
			FitToWidth:  layout.FitToWidth,
			FitToHeight: layout.FitToHeight,
		}); err != nil {
			return err
		}
		if props.FitToPage != nil {
			if err := dst.file.SetSheetProps(sheetName, &excelize.SheetPropsOptions{
				FitToPage: props.FitToPage,
			}); err != nil {
				return err
			}
		}
	} else {
		fitToPage := true
		fitToWidth := 1
		fitToHeight := 0 // auto height, content flows to as many pages as needed
		if err := dst.file.SetSheetProps(sheetName, &excelize.SheetPropsOptions{
			FitToPage: &fitToPage,
		}); err != nil {
			return err
		}
		if err := dst.file.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
			FitToWidth:  &fitToWidth,
			FitToHeight: &fitToHeight,
		}); err != nil {
			return err
		}
	}

	// Orientation is an intentional override, never copied from source
	if err := dst.file.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Orientation: &orientation,
	}); err != nil {
		return err
	}

	margin := PackMargin
	headerMargin := PackHeaderMargin
	return dst.file.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
		Left:   &margin,
		Right:  &margin,
		Top:    &margin,
		Bottom: &margin,
		Header: &headerMargin,
		Footer: &headerMargin,
	})
}

// hasPageSetup reports whether a sheet carries page setup worth copying.
// GetPageLayout fills unset fields with Excel's defaults, so a layout
// holding only default values counts as absent and the sheet gets the
// pack's fit-to-page defaults instead.
func hasPageSetup(layout excelize.PageLayoutOptions) bool {
	if layout.FitToWidth != nil && *layout.FitToWidth > 1 {
		return true
	}
	if layout.FitToHeight != nil && *layout.FitToHeight != 1 {
		return true
	}
	if layout.AdjustTo != nil && *layout.AdjustTo != 100 {
		return true
	}
	if layout.Size != nil && *layout.Size > 1 {
		return true
	}
	return false
}
