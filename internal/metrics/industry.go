package metrics

import (
	"sort"

	"paygap/domain/compensation"

	"github.com/montanaflynn/stats"
)

// IndustryStats is one row of the per-industry summary table.
// Ratio statistics are computed over non-missing ratios only; RatioCount
// says how many records contributed, 0 meaning the ratio columns are N/A.
type IndustryStats struct {
	Industry   string  `json:"industry"`
	Count      int     `json:"count"`
	MeanSalary float64 `json:"mean_salary"`
	MaxSalary  float64 `json:"max_salary"`
	MinSalary  float64 `json:"min_salary"`
	MeanRatio  float64 `json:"mean_ratio"`
	MaxRatio   float64 `json:"max_ratio"`
	RatioCount int     `json:"ratio_count"`
}

// ByIndustry aggregates the filtered view per distinct known industry,
// sorted by industry name. Records with unknown industry contribute to no row.
func ByIndustry(table compensation.Table) []IndustryStats {
	groups := make(map[string]compensation.Table)
	for _, rec := range table {
		if !rec.HasIndustry() {
			continue
		}
		groups[rec.Industry] = append(groups[rec.Industry], rec)
	}

	out := make([]IndustryStats, 0, len(groups))
	for industry, recs := range groups {
		salaries := make([]float64, 0, len(recs))
		for _, rec := range recs {
			salaries = append(salaries, rec.Salary)
		}
		mean, _ := stats.Mean(salaries)
		max, _ := stats.Max(salaries)
		min, _ := stats.Min(salaries)

		row := IndustryStats{
			Industry:   industry,
			Count:      len(recs),
			MeanSalary: mean,
			MaxSalary:  max,
			MinSalary:  min,
		}

		if ratios := validRatios(recs); len(ratios) > 0 {
			meanR, _ := stats.Mean(ratios)
			maxR, _ := stats.Max(ratios)
			row.MeanRatio = meanR
			row.MaxRatio = maxR
			row.RatioCount = len(ratios)
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Industry < out[j].Industry })
	return out
}

// LevelCount is one segment of the stacked pay-level distribution chart.
type LevelCount struct {
	Industry string `json:"industry"`
	Level    string `json:"level"`
	Count    int    `json:"count"`
}

// LevelDistribution counts records per (industry, known pay level), industries
// sorted by name and levels in domain order within each industry.
func LevelDistribution(table compensation.Table) []LevelCount {
	counts := make(map[string]map[string]int)
	for _, rec := range table {
		if !rec.HasIndustry() || !rec.PayLevel.Known() {
			continue
		}
		if counts[rec.Industry] == nil {
			counts[rec.Industry] = make(map[string]int)
		}
		counts[rec.Industry][rec.PayLevel.String()]++
	}

	industries := make([]string, 0, len(counts))
	for ind := range counts {
		industries = append(industries, ind)
	}
	sort.Strings(industries)

	out := make([]LevelCount, 0)
	for _, ind := range industries {
		for _, level := range compensation.PayLevelDomain() {
			if n := counts[ind][level]; n > 0 {
				out = append(out, LevelCount{Industry: ind, Level: level, Count: n})
			}
		}
	}
	return out
}
