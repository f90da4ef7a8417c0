package loader

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paygap/internal/errors"

	"github.com/xuri/excelize/v2"
)

// RawRow maps trimmed source headers to raw cell strings for one data row.
type RawRow map[string]string

// RawTable is the untyped result of reading a spreadsheet: one header row
// plus every data row, all cells still strings.
type RawTable struct {
	Headers []string
	Rows    []RawRow
}

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads the source into raw string rows. Any failure here is
// file-level and unrecoverable: callers should halt rather than continue
// with partial data.
func (r *DataReader) ReadData() (*RawTable, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.SourceError(strings.ToUpper(r.fileType)+" file not found: "+r.filePath, err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	default:
		return r.readExcelData()
	}
}

// readExcelData reads the first worksheet into raw rows
func (r *DataReader) readExcelData() (*RawTable, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.SourceError("failed to open Excel file "+r.filePath, err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.SourceError("Excel file has no worksheets", nil)
	}

	// The source workbook carries the data on its first sheet.
	readStart := time.Now()
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.SourceError("failed to read sheet "+sheets[0], err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)", sheets[0], float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readCSVData reads CSV data into raw rows
func (r *DataReader) readCSVData() (*RawTable, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.SourceError("failed to open CSV file "+r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.SourceError("failed to read CSV file "+r.filePath, err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows converts raw string rows into RawTable format
func (r *DataReader) processRows(rows [][]string) (*RawTable, error) {
	if len(rows) < 2 {
		return nil, errors.SourceError("source must have at least a header row and one data row", nil)
	}

	// Extract headers from first row, trimmed so mapping is whitespace-proof
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRow)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &RawTable{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
