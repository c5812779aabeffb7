package excel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gitlab.com/toeic-drill.net/internal/domain"
)

// ExportConfig defines where and how results are written
type ExportConfig struct {
	FilePath  string
	SheetName string
}

// DefaultExportConfig returns the default export configuration for path
func DefaultExportConfig(path string) ExportConfig {
	return ExportConfig{
		FilePath:  path,
		SheetName: "Results",
	}
}

var header = []interface{}{"problemId", "result"}

// ExportResults writes one row per record, in the order the endpoint returned them
func ExportResults(config ExportConfig, records []domain.ResultRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), config.SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(config.SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{record.ProblemID, string(record.Result)}
		if err := f.SetSheetRow(config.SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if dir := filepath.Dir(config.FilePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := f.SaveAs(config.FilePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
