package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"github.com/xuri/excelize/v2"

	"paygap/domain/compensation"
)

// TestKit generates demo datasets and writes them in the source spreadsheet
// formats, so the full load pipeline can run against synthetic data.
type TestKit struct {
	config GeneratorConfig
	table  compensation.Table
}

// NewTestKit creates a kit with default configuration
func NewTestKit() *TestKit {
	return NewTestKitWithConfig(DefaultGeneratorConfig())
}

// NewTestKitWithConfig creates a kit with custom configuration
func NewTestKitWithConfig(config GeneratorConfig) *TestKit {
	gen := NewCompensationGenerator(config)
	return &TestKit{config: config, table: gen.Generate()}
}

// Table returns the generated dataset directly, bypassing file I/O.
func (tk *TestKit) Table() compensation.Table {
	return tk.table
}

var csvHeaders = []string{
	"CEO Name", "Company", "Ticker", "Industry", "Salary", "Pay Ratio",
	"Median Worker Pay", "Market Cap (Billions)", "CEO Tenure (Years)",
	"Employees", "Pay Level",
}

// WriteCSV writes the dataset as a CSV in source cell formats: currency with
// dollar signs and thousands separators, ratios as "N:1", blanks for missing.
func (tk *TestKit) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range tk.table {
		if err := w.Write(sourceRow(rec)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteWorkbook writes the dataset as an Excel workbook, same cell formats.
func (tk *TestKit) WriteWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells := make([]interface{}, len(csvHeaders))
	for i, h := range csvHeaders {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range tk.table {
		row := sourceRow(rec)
		for j, v := range row {
			cells[j] = v
		}
		addr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// sourceRow renders one record the way the upstream spreadsheet formats it.
func sourceRow(rec compensation.Record) []string {
	return []string{
		rec.Name,
		rec.Company,
		rec.Ticker,
		rec.Industry,
		currencyCell(rec.Salary),
		ratioCell(rec.PayRatio),
		currencyCell(rec.MedianWorkerPay),
		numericCell(rec.MarketCapBillions),
		numericCell(rec.CEOTenureYears),
		numericCell(rec.Employees),
		rec.PayLevel.String(),
	}
}

func currencyCell(v float64) string {
	if compensation.Missing(v) {
		return ""
	}
	return "$" + groupThousands(int64(math.Round(v)))
}

func ratioCell(v float64) string {
	if compensation.Missing(v) {
		return ""
	}
	return fmt.Sprintf("%s:1", groupThousands(int64(math.Round(v))))
}

func numericCell(v float64) string {
	if compensation.Missing(v) {
		return ""
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
