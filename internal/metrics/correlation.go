package metrics

import (
	"paygap/domain/compensation"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Correlation is the Pearson matrix over the numeric drivers of pay.
// Complete-case: only rows where every included field is simultaneously
// non-missing contribute, so every cell is computed over the same sample.
type Correlation struct {
	Fields []string    `json:"fields"`
	Matrix [][]float64 `json:"matrix"`
	// SampleSize is the number of complete rows the matrix was computed on.
	SampleSize int `json:"sample_size"`
}

// correlationFields are the candidate drivers, in presentation order.
var correlationFields = []string{
	compensation.FieldSalary,
	compensation.FieldMarketCapBillions,
	compensation.FieldEmployees,
	compensation.FieldCEOTenureYears,
	compensation.FieldPayRatio,
}

// Correlate computes the complete-case Pearson correlation matrix over the
// candidate fields that are present (at least one non-missing value) in the
// filtered view. Fewer than two complete rows or fewer than two present
// fields yield an empty result the renderer shows as a placeholder.
func Correlate(table compensation.Table) Correlation {
	fields := presentFields(table)
	if len(fields) < 2 {
		return Correlation{}
	}

	// Row-wise complete-case deletion across all included fields at once,
	// not pairwise: every cell of the matrix shares one sample.
	var rows [][]float64
	for _, rec := range table {
		vals := make([]float64, len(fields))
		complete := true
		for i, f := range fields {
			v := fieldValue(rec, f)
			if compensation.Missing(v) {
				complete = false
				break
			}
			vals[i] = v
		}
		if complete {
			rows = append(rows, vals)
		}
	}
	if len(rows) < 2 {
		return Correlation{}
	}

	data := mat.NewDense(len(rows), len(fields), nil)
	for i, vals := range rows {
		data.SetRow(i, vals)
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, data, nil)

	matrix := make([][]float64, len(fields))
	for i := range fields {
		matrix[i] = make([]float64, len(fields))
		for j := range fields {
			matrix[i][j] = corr.At(i, j)
		}
	}

	return Correlation{
		Fields:     fields,
		Matrix:     matrix,
		SampleSize: len(rows),
	}
}

// presentFields keeps the candidate fields with any non-missing value.
func presentFields(table compensation.Table) []string {
	out := make([]string, 0, len(correlationFields))
	for _, f := range correlationFields {
		for _, rec := range table {
			if !compensation.Missing(fieldValue(rec, f)) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

func fieldValue(rec compensation.Record, field string) float64 {
	switch field {
	case compensation.FieldSalary:
		return rec.Salary
	case compensation.FieldPayRatio:
		return rec.PayRatio
	case compensation.FieldMedianWorkerPay:
		return rec.MedianWorkerPay
	case compensation.FieldMarketCapBillions:
		return rec.MarketCapBillions
	case compensation.FieldCEOTenureYears:
		return rec.CEOTenureYears
	case compensation.FieldEmployees:
		return rec.Employees
	}
	return compensation.MissingValue()
}
