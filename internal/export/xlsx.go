package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkotturi/claimtriage/internal/model"
)

// BatchXLSX builds an XLSX workbook from batch results: one row per
// document, suitable for handing to a claims team that lives in
// spreadsheets.
func BatchXLSX(results []*model.ProcessResult) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Claims"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	// Drop the default sheet so the workbook opens on Claims
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Document",
		"Status",
		"Route",
		"Reasoning",
		"Missing Fields",
		"Fraud Indicators",
		"Estimated Damage",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.DocumentName)
		write(2, r.Status)

		if r.Status == model.StatusSuccess {
			write(3, string(r.RecommendedRoute))
			write(4, truncate(r.Reasoning, 140))
		} else {
			write(4, truncate(r.Error, 140))
		}

		write(5, strings.Join(r.MissingFields, ", "))
		write(6, strings.Join(r.FraudIndicators, ", "))

		if r.EstimatedDamage != nil {
			write(7, *r.EstimatedDamage)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // document
	_ = f.SetColWidth(sheet, "B", "C", 18) // status, route
	_ = f.SetColWidth(sheet, "D", "D", 56) // reasoning
	_ = f.SetColWidth(sheet, "E", "F", 32) // missing, fraud
	_ = f.SetColWidth(sheet, "G", "G", 16) // damage

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteBatchXLSX writes the workbook into outputDir and returns its path.
func WriteBatchXLSX(results []*model.ProcessResult, outputDir string) (string, error) {
	data, err := BatchXLSX(results)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(outputDir, "batch_summary.xlsx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write xlsx: %w", err)
	}
	return path, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
