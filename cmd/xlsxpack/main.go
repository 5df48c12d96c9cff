package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"xlsxpack/internal/config"
	"xlsxpack/internal/logger"
	"xlsxpack/internal/pack"
)

var (
	configPath string
	jsonOutput bool
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxpack <source.xlsx> <output_pack.xlsx>",
		Short: "Extract investor pack sheets from a full XLSX workbook",
		Long: `xlsxpack creates a curated "pack" workbook containing only
investor-facing sheets, with print areas and page setup applied so the
result is ready for PDF export.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "docs/IND_ACQ_PACK_EXPORT.json", "Pack export config JSON")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	sourcePath, outputPath := args[0], args[1]

	if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		return fmt.Errorf("source file not found: %s", sourcePath)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		return err
	}

	result, err := pack.Create(sourcePath, outputPath, cfg, pack.DefaultPrintAreas())
	if err != nil {
		logger.Error("Pack extraction failed", "error", err)
		return err
	}

	printSummary(result)

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

func printSummary(result *pack.Result) {
	fmt.Println()
	fmt.Println("Pack created successfully:")
	fmt.Println(okStyle.Render(fmt.Sprintf("✓ Sheets copied: %d", len(result.SheetsCopied))))
	fmt.Println(okStyle.Render(fmt.Sprintf("✓ Expected pages: %d (±%d)", result.ExpectedPages, result.PageTolerance)))
	if len(result.SheetsMissing) > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("WARNING: Missing sheets: %v", result.SheetsMissing)))
	}
}
