package loader

import (
	"os"
	"path/filepath"
	"testing"

	"paygap/domain/compensation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compensation.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = `CEO Name,Company,Ticker,Industry,Salary,Pay Ratio,Median Worker Pay,Market Cap (Billions),CEO Tenure (Years),Employees,Pay Level
Alice Ames,Amalgamated,AMA,Technology,"$1,250,000","1,447:1","$58,000",210.5,12,"45,000",Extreme
Bob Barre,Barre Corp,BRC,Retail,"$980,000",312:1,"$31,400",55.1,4,"120,000",High
,Ghost Inc,GHO,Technology,"$2,000,000",100:1,"$60,000",10,2,500,Low
Carol Cho,Cho Health,CHO,,"$415,000",not a ratio,"$44,100",8.2,7,"2,300",Medium
Dan Doe,Doe Mills,DOE,nan,n/a,55:1,"$39,000",1.1,3,800,Minimal
Eve Eden,Eden Air,EDN,Aviation,"$127,000",9:1,"$41,000",2.4,1,950,Stratospheric
`

func TestLoadMapsAndCoerces(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	table, report, err := Load(path)
	require.NoError(t, err)

	// Ghost Inc has no CEO name, Dan Doe has an unparseable salary.
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, 6, report.RowsRead)
	assert.Equal(t, 2, report.RowsDropped)
	assert.Equal(t, 4, report.RowsKept)

	alice := table[0]
	assert.Equal(t, "Alice Ames", alice.Name)
	assert.Equal(t, "Amalgamated", alice.Company)
	assert.Equal(t, 1250000.0, alice.Salary)
	assert.Equal(t, 1447.0, alice.PayRatio)
	assert.Equal(t, 58000.0, alice.MedianWorkerPay)
	assert.Equal(t, 210.5, alice.MarketCapBillions)
	assert.Equal(t, 45000.0, alice.Employees)
	assert.Equal(t, compensation.LevelExtreme, alice.PayLevel.String())
	assert.True(t, alice.PayLevel.Known())
}

func TestLoadTreatsMissingIndustryAsUnknown(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	table, _, err := Load(path)
	require.NoError(t, err)

	var carol compensation.Record
	for _, rec := range table {
		if rec.Name == "Carol Cho" {
			carol = rec
		}
	}
	require.Equal(t, "Carol Cho", carol.Name, "row missing only industry must be retained")
	assert.False(t, carol.HasIndustry())
	// Unparseable ratio degrades to missing, not an error.
	assert.True(t, compensation.Missing(carol.PayRatio))
}

func TestLoadReportsCellFailures(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	_, report, err := Load(path)
	require.NoError(t, err)

	// Carol's "not a ratio" is a failure on a kept row; Dan's "n/a" salary is
	// counted even though the row is later dropped for it.
	assert.Equal(t, 1, report.CellFailures[compensation.FieldPayRatio])
	assert.Equal(t, 1, report.CellFailures[compensation.FieldSalary])
	assert.Equal(t, 2, report.TotalCellFailures())
}

func TestLoadKeepsOutOfDomainPayLevel(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	table, _, err := Load(path)
	require.NoError(t, err)

	var eve compensation.Record
	for _, rec := range table {
		if rec.Name == "Eve Eden" {
			eve = rec
		}
	}
	require.Equal(t, "Eve Eden", eve.Name)
	assert.Equal(t, "Stratospheric", eve.PayLevel.String())
	assert.False(t, eve.PayLevel.Known())
	assert.Equal(t, 0, eve.PayLevel.Rank())
}

func TestLoadIgnoresUnmappedColumns(t *testing.T) {
	path := writeCSV(t, `CEO Name,Salary,Shoe Size
Frank Fox,"$500,000",11
`)

	table, report, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Contains(t, report.IgnoredColumns, "Shoe Size")
	assert.Contains(t, report.MappedColumns, compensation.FieldSalary)
}

func TestLoadTrimsHeaderWhitespace(t *testing.T) {
	path := writeCSV(t, `  CEO Name , Salary
Gina Gray,"$750,000"
`)

	table, _, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Gina Gray", table[0].Name)
	assert.Equal(t, 750000.0, table[0].Salary)
}

func TestLoadMissingFileFailsLoudly(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "no-such-file.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.csv")
}

func TestLoadHeaderOnlyFailsLoudly(t *testing.T) {
	path := writeCSV(t, "CEO Name,Salary\n")
	_, _, err := Load(path)
	require.Error(t, err)
}

func TestCoerceNumericRules(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		kind   compensation.FieldKind
		want   float64
		failed bool
		isMiss bool
	}{
		{"currency with symbol", "$1,250,000", compensation.FieldCurrency, 1250000, false, false},
		{"currency plain", "980000", compensation.FieldCurrency, 980000, false, false},
		{"ratio with thousands", "1,447:1", compensation.FieldRatio, 1447, false, false},
		{"ratio simple", "312:1", compensation.FieldRatio, 312, false, false},
		{"ratio bare number", "55", compensation.FieldRatio, 55, false, false},
		{"numeric with thousands", "45,000", compensation.FieldNumeric, 45000, false, false},
		{"numeric decimal", "210.5", compensation.FieldNumeric, 210.5, false, false},
		{"empty is missing not failure", "", compensation.FieldCurrency, 0, false, true},
		{"garbage fails", "n/a", compensation.FieldCurrency, 0, true, true},
		{"garbage ratio fails", "not a ratio", compensation.FieldRatio, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, failed := coerceNumeric(tt.raw, tt.kind)
			assert.Equal(t, tt.failed, failed)
			if tt.isMiss {
				assert.True(t, compensation.Missing(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
