package metrics

import (
	"paygap/domain/compensation"

	"github.com/montanaflynn/stats"
)

// HistogramBin is one bar of the pay-ratio distribution.
type HistogramBin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// RatioHistogram bins the non-missing pay ratios of the filtered view into
// bins equal-width buckets. No valid ratios yield nil, which the renderer
// shows as an informational placeholder.
func RatioHistogram(table compensation.Table, bins int) []HistogramBin {
	ratios := validRatios(table)
	if len(ratios) == 0 || bins <= 0 {
		return nil
	}

	min, _ := stats.Min(ratios)
	max, _ := stats.Max(ratios)
	if min == max {
		// Degenerate spread: everything lands in one bucket.
		return []HistogramBin{{Lo: min, Hi: max, Count: len(ratios)}}
	}

	width := (max - min) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Lo = min + float64(i)*width
		out[i].Hi = out[i].Lo + width
	}
	out[bins-1].Hi = max

	for _, r := range ratios {
		idx := int((r - min) / width)
		if idx >= bins {
			idx = bins - 1 // max lands in the last bucket
		}
		out[idx].Count++
	}
	return out
}
