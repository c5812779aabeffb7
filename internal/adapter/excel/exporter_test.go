package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"gitlab.com/toeic-drill.net/internal/domain"
)

func TestExportResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "part5-600.xlsx")
	records := []domain.ResultRecord{
		{ProblemID: "p5_600_001", Result: domain.StatusCorrect},
		{ProblemID: "p5_600_002", Result: domain.StatusIncorrect},
	}

	if err := ExportResults(DefaultExportConfig(path), records); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Results")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	want := [][]string{
		{"problemId", "result"},
		{"p5_600_001", "correct"},
		{"p5_600_002", "incorrect"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %v", len(want), rows)
	}
	for i := range want {
		if rows[i][0] != want[i][0] || rows[i][1] != want[i][1] {
			t.Fatalf("row %d: got %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestExportEmptyWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportResults(DefaultExportConfig(path), nil); err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Results")
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %v", rows)
	}
}
