package metrics

import (
	"paygap/domain/compensation"

	"github.com/montanaflynn/stats"
)

// Summary holds the headline tiles for a filtered view. Zero values stand in
// for undefined metrics (empty view, all-missing column, min ≤ 0 denominator)
// and render as "N/A" downstream, never as an error.
type Summary struct {
	Count         int     `json:"count"`
	MeanSalary    float64 `json:"mean_salary"`
	MaxSalary     float64 `json:"max_salary"`
	MinSalary     float64 `json:"min_salary"`
	PayGap        float64 `json:"pay_gap"`
	MaxRatio      float64 `json:"max_ratio"`
	MinRatio      float64 `json:"min_ratio"`
	RatioGap      float64 `json:"ratio_gap"`
	IndustryCount int     `json:"industry_count"`
}

// Summarize computes the headline metrics over a filtered view.
func Summarize(table compensation.Table) Summary {
	if table.Len() == 0 {
		return Summary{}
	}

	salaries := make([]float64, 0, table.Len())
	for _, rec := range table {
		salaries = append(salaries, rec.Salary)
	}
	mean, _ := stats.Mean(salaries)
	max, _ := stats.Max(salaries)
	min, _ := stats.Min(salaries)

	s := Summary{
		Count:         table.Len(),
		MeanSalary:    mean,
		MaxSalary:     max,
		MinSalary:     min,
		IndustryCount: len(table.Industries()),
	}
	// Pay gap is undefined for a non-positive floor.
	if min > 0 {
		s.PayGap = max / min
	}

	if ratios := validRatios(table); len(ratios) > 0 {
		maxR, _ := stats.Max(ratios)
		minR, _ := stats.Min(ratios)
		s.MaxRatio = maxR
		s.MinRatio = minR
		if minR > 0 {
			s.RatioGap = maxR / minR
		}
	}
	return s
}

// Savings models the equal-pay counterfactual: what the filtered set would
// cost if every executive earned like its lowest-paid one.
type Savings struct {
	ActualTotal       float64 `json:"actual_total"`
	HypotheticalTotal float64 `json:"hypothetical_total"`
	Savings           float64 `json:"savings"`
	// Fraction is savings as a share of the actual total, 0 when undefined.
	Fraction      float64 `json:"fraction"`
	LowestName    string  `json:"lowest_name"`
	LowestCompany string  `json:"lowest_company"`
	LowestSalary  float64 `json:"lowest_salary"`
}

// EqualPaySavings computes the counterfactual over a filtered view.
func EqualPaySavings(table compensation.Table) Savings {
	if table.Len() == 0 {
		return Savings{}
	}

	lowest := table[0]
	total := 0.0
	for _, rec := range table {
		total += rec.Salary
		if rec.Salary < lowest.Salary {
			lowest = rec
		}
	}

	s := Savings{
		ActualTotal:       total,
		HypotheticalTotal: lowest.Salary * float64(table.Len()),
		LowestName:        lowest.Name,
		LowestCompany:     lowest.Company,
		LowestSalary:      lowest.Salary,
	}
	s.Savings = s.ActualTotal - s.HypotheticalTotal
	if total != 0 {
		s.Fraction = s.Savings / total
	}
	return s
}

// TopBySalary returns the n highest-paid records, ranked descending.
func TopBySalary(table compensation.Table, n int) compensation.Table {
	sorted := table.SortBySalaryDesc()
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// validRatios collects non-missing pay ratios.
func validRatios(table compensation.Table) []float64 {
	out := make([]float64, 0, table.Len())
	for _, rec := range table {
		if !compensation.Missing(rec.PayRatio) {
			out = append(out, rec.PayRatio)
		}
	}
	return out
}
