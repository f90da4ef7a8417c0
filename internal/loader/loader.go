package loader

import (
	"log"
	"strings"

	"paygap/domain/compensation"
	"paygap/internal"
)

// Report summarizes what one load pass did to the raw data. The original
// pipeline silently discarded cells that failed coercion; the report makes
// that loss visible without turning it into an error.
type Report struct {
	SourceFile     string         `json:"source_file"`
	RowsRead       int            `json:"rows_read"`
	RowsKept       int            `json:"rows_kept"`
	RowsDropped    int            `json:"rows_dropped"`
	MappedColumns  []string       `json:"mapped_columns"`
	IgnoredColumns []string       `json:"ignored_columns"`
	CellFailures   map[string]int `json:"cell_failures"`
}

// TotalCellFailures sums per-field coercion failures.
func (r *Report) TotalCellFailures() int {
	total := 0
	for _, n := range r.CellFailures {
		total += n
	}
	return total
}

// Load reads the spreadsheet at path and builds the canonical table:
// headers mapped through the fixed dictionary, cells coerced per field kind,
// rows missing name or salary dropped. Deterministic and side-effect-free
// aside from failing loudly on unreadable input.
func Load(path string) (compensation.Table, *Report, error) {
	raw, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, nil, err
	}
	table, report := Normalize(raw)
	report.SourceFile = path

	log.Printf("[Loader] Canonical table built: %d of %d rows kept, %d cell failures",
		report.RowsKept, report.RowsRead, report.TotalCellFailures())
	if report.RowsDropped > 0 {
		internal.DefaultLogger.Warn("dropped %d rows missing a CEO name or salary", report.RowsDropped)
	}
	return table, report, nil
}

// Normalize converts raw rows into the canonical table. Split from Load so
// tests and in-memory sources can skip the file system.
func Normalize(raw *RawTable) (compensation.Table, *Report) {
	report := &Report{
		RowsRead:     len(raw.Rows),
		CellFailures: make(map[string]int),
	}

	// Resolve which canonical columns this source actually carries.
	present := make(map[string]compensation.Column)
	for _, header := range raw.Headers {
		if header == "" {
			continue
		}
		if col, ok := compensation.ColumnMapping[header]; ok {
			present[header] = col
			report.MappedColumns = append(report.MappedColumns, col.Field)
		} else {
			report.IgnoredColumns = append(report.IgnoredColumns, header)
		}
	}

	table := make(compensation.Table, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := emptyRecord()
		for header, col := range present {
			rawCell := row[header]
			switch col.Kind {
			case compensation.FieldString:
				setStringField(&rec, col.Field, coerceString(rawCell))
			case compensation.FieldLevel:
				rec.PayLevel = compensation.ParsePayLevel(coerceString(rawCell))
			default:
				val, failed := coerceNumeric(rawCell, col.Kind)
				if failed {
					report.CellFailures[col.Field]++
					internal.DefaultLogger.Debug("unparseable %s cell %q, treating as missing", col.Field, rawCell)
				}
				setNumericField(&rec, col.Field, val)
			}
		}

		// Mandatory fields: a record without a name or a usable salary
		// cannot participate in any view.
		if strings.TrimSpace(rec.Name) == "" || compensation.Missing(rec.Salary) {
			report.RowsDropped++
			continue
		}
		table = append(table, rec)
	}
	report.RowsKept = len(table)

	return table, report
}

// emptyRecord starts every numeric field at missing so absent columns do not
// masquerade as zeros.
func emptyRecord() compensation.Record {
	return compensation.Record{
		Salary:            compensation.MissingValue(),
		PayRatio:          compensation.MissingValue(),
		MedianWorkerPay:   compensation.MissingValue(),
		MarketCapBillions: compensation.MissingValue(),
		CEOTenureYears:    compensation.MissingValue(),
		Employees:         compensation.MissingValue(),
	}
}

func setStringField(rec *compensation.Record, field, val string) {
	switch field {
	case compensation.FieldName:
		rec.Name = val
	case compensation.FieldCompany:
		rec.Company = val
	case compensation.FieldTicker:
		rec.Ticker = val
	case compensation.FieldIndustry:
		rec.Industry = coerceIndustry(val)
	}
}

func setNumericField(rec *compensation.Record, field string, val float64) {
	switch field {
	case compensation.FieldSalary:
		rec.Salary = val
	case compensation.FieldPayRatio:
		rec.PayRatio = val
	case compensation.FieldMedianWorkerPay:
		rec.MedianWorkerPay = val
	case compensation.FieldMarketCapBillions:
		rec.MarketCapBillions = val
	case compensation.FieldCEOTenureYears:
		rec.CEOTenureYears = val
	case compensation.FieldEmployees:
		rec.Employees = val
	}
}
