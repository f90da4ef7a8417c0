package ui

import (
	"fmt"
	"math"
	"net/url"
	"sort"

	"paygap/domain/compensation"
	"paygap/internal/filter"
	"paygap/internal/metrics"
)

// payLevelColors maps the ordered domain to the dashboard palette.
// Out-of-domain labels fall back to neutral gray.
var payLevelColors = map[string]string{
	compensation.LevelMinimal: "#059669",
	compensation.LevelLow:     "#10b981",
	compensation.LevelMedium:  "#3b82f6",
	compensation.LevelHigh:    "#f59e0b",
	compensation.LevelExtreme: "#ef4444",
}

const fallbackColor = "#6b7280"

func colorForLevel(level string) string {
	if c, ok := payLevelColors[level]; ok {
		return c
	}
	return fallbackColor
}

// selectionFromQuery parses the shared filter parameters: repeated
// `industry` and `level` values plus an optional `detail` industry.
func selectionFromQuery(q url.Values) filter.Selection {
	return filter.Selection{
		Industries:     q["industry"],
		PayLevels:      q["level"],
		DetailIndustry: q.Get("detail"),
	}
}

// BarDatum is one bar in a server-rendered chart: the value plus a
// precomputed width percentage so templates stay arithmetic-free.
type BarDatum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Pct   float64 `json:"pct"`
	Color string  `json:"color"`
}

// barsFromPairs normalizes values against the max so the longest bar fills
// its track.
func barsFromPairs(labels []string, values []float64, colors []string) []BarDatum {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	bars := make([]BarDatum, len(labels))
	for i := range labels {
		pct := 0.0
		if max > 0 {
			pct = values[i] / max * 100
		}
		color := fallbackColor
		if colors != nil {
			color = colors[i]
		}
		bars[i] = BarDatum{Label: labels[i], Value: values[i], Pct: pct, Color: color}
	}
	return bars
}

// DashboardView is the shared model behind every dashboard tab.
type DashboardView struct {
	Title      string
	Active     string
	Selection  filter.Selection
	Industries []string
	PayLevels  []string

	Empty   bool
	Summary metrics.Summary
	Insight string

	// LoadNote is the data-quality line for the footer, set by the handler
	// once the load report is known.
	LoadNote string
}

// SummaryView backs the executive summary tab.
type SummaryView struct {
	DashboardView
	TopEarners  compensation.Table
	SalaryBars  []BarDatum
	LevelCounts []BarDatum
}

// InequalityView backs the inequality analysis tab.
type InequalityView struct {
	DashboardView
	Savings     metrics.Savings
	Histogram   []metrics.HistogramBin
	BinBars     []BarDatum
	RatioLabels []string
}

// IndustryView backs the industry insights tab.
type IndustryView struct {
	DashboardView
	Stats      []metrics.IndustryStats
	MeanBars   []BarDatum
	Detail     string
	DetailRows compensation.Table
	Levels     []metrics.LevelCount
}

// PerformanceView backs the performance question tab.
type PerformanceView struct {
	DashboardView
	Correlation metrics.Correlation
	Cells       [][]CorrCell
	Scatters    []Scatter
}

// ScatterPoint is one marker, already projected onto the 0-100 SVG viewbox
// (Cy grows downward, so it is pre-inverted).
type ScatterPoint struct {
	Cx    float64 `json:"cx"`
	Cy    float64 `json:"cy"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// Scatter is one server-rendered scatter plot.
type Scatter struct {
	Title  string         `json:"title"`
	XLabel string         `json:"x_label"`
	YLabel string         `json:"y_label"`
	LogX   bool           `json:"log_x"`
	Points []ScatterPoint `json:"points"`
}

// buildScatter projects complete (x, y) pairs into the viewbox. With logX the
// x axis is log10-scaled and non-positive values are skipped.
func buildScatter(table compensation.Table, title, xLabel, yLabel string, logX bool,
	xOf, yOf func(compensation.Record) float64) Scatter {

	type pair struct {
		x, y  float64
		rec   compensation.Record
	}
	pairs := make([]pair, 0, len(table))
	for _, rec := range table {
		x, y := xOf(rec), yOf(rec)
		if compensation.Missing(x) || compensation.Missing(y) {
			continue
		}
		if logX {
			if x <= 0 {
				continue
			}
			x = math.Log10(x)
		}
		pairs = append(pairs, pair{x: x, y: y, rec: rec})
	}

	sc := Scatter{Title: title, XLabel: xLabel, YLabel: yLabel, LogX: logX}
	if len(pairs) == 0 {
		return sc
	}

	minX, maxX := pairs[0].x, pairs[0].x
	minY, maxY := pairs[0].y, pairs[0].y
	for _, p := range pairs {
		minX = math.Min(minX, p.x)
		maxX = math.Max(maxX, p.x)
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}

	project := func(v, lo, hi float64) float64 {
		if hi == lo {
			return 50
		}
		return (v - lo) / (hi - lo) * 100
	}
	sc.Points = make([]ScatterPoint, len(pairs))
	for i, p := range pairs {
		sc.Points[i] = ScatterPoint{
			Cx:    project(p.x, minX, maxX),
			Cy:    100 - project(p.y, minY, maxY),
			Color: colorForLevel(p.rec.PayLevel.String()),
			Label: fmt.Sprintf("%s (%s)", p.rec.Name, p.rec.Company),
		}
	}
	return sc
}

// performanceScatters builds the three pay-versus-X plots.
func performanceScatters(table compensation.Table) []Scatter {
	salary := func(r compensation.Record) float64 { return r.Salary }
	return []Scatter{
		buildScatter(table, "Pay vs Pay Ratio", "CEO pay ($, log)", "Pay ratio", true,
			salary, func(r compensation.Record) float64 { return r.PayRatio }),
		buildScatter(table, "Tenure vs Pay", "Tenure (years)", "CEO pay ($)", false,
			func(r compensation.Record) float64 { return r.CEOTenureYears }, salary),
		buildScatter(table, "Headcount vs Pay", "Employees (log)", "CEO pay ($)", true,
			func(r compensation.Record) float64 { return r.Employees }, salary),
	}
}

// CorrCell carries one correlation coefficient with its display color.
type CorrCell struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// corrCells colors coefficients on a blue-white-red ramp.
func corrCells(c metrics.Correlation) [][]CorrCell {
	cells := make([][]CorrCell, len(c.Matrix))
	for i, row := range c.Matrix {
		cells[i] = make([]CorrCell, len(row))
		for j, v := range row {
			cells[i][j] = CorrCell{Value: v, Color: corrColor(v)}
		}
	}
	return cells
}

func corrColor(v float64) string {
	switch {
	case math.IsNaN(v):
		return fallbackColor
	case v >= 0.6:
		return "#b91c1c"
	case v >= 0.2:
		return "#f87171"
	case v > -0.2:
		return "#f3f4f6"
	case v > -0.6:
		return "#93c5fd"
	default:
		return "#1d4ed8"
	}
}

// keyInsight renders the single-line takeaway shown above every tab.
func keyInsight(s metrics.Summary) string {
	if s.Count == 0 {
		return "No executives match the current filters."
	}
	if s.PayGap > 0 {
		return fmt.Sprintf(
			"Across %d executives the mean pay package is %s, and the highest earner makes %.0f× what the lowest does.",
			s.Count, money(s.MeanSalary), s.PayGap)
	}
	return fmt.Sprintf(
		"Across %d executives the mean pay package is %s, spanning %s at the top to %s at the bottom.",
		s.Count, money(s.MeanSalary), money(s.MaxSalary), money(s.MinSalary))
}

// money renders a dollar amount with thousands separators, no cents.
func money(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// ratio renders a pay ratio the way the source data writes it.
func ratio(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.0f:1", v)
}

// dashboardView assembles the pieces shared by all tabs.
func dashboardView(title, active string, full, filtered compensation.Table, sel filter.Selection) DashboardView {
	summary := metrics.Summarize(filtered)
	return DashboardView{
		Title:      title,
		Active:     active,
		Selection:  sel,
		Industries: full.Industries(),
		PayLevels:  compensation.PayLevelDomain(),
		Empty:      len(filtered) == 0,
		Summary:    summary,
		Insight:    keyInsight(summary),
	}
}

// buildSummaryView prepares the executive summary tab.
func buildSummaryView(full compensation.Table, sel filter.Selection, topN int) SummaryView {
	filtered := sel.Apply(full)
	top := metrics.TopBySalary(filtered, topN)

	labels := make([]string, len(top))
	values := make([]float64, len(top))
	colors := make([]string, len(top))
	for i, rec := range top {
		labels[i] = rec.Name
		values[i] = rec.Salary
		colors[i] = colorForLevel(rec.PayLevel.String())
	}

	counts := map[string]int{}
	for _, rec := range filtered {
		if rec.PayLevel.Known() {
			counts[rec.PayLevel.String()]++
		}
	}
	levelLabels := []string{}
	levelValues := []float64{}
	levelColors := []string{}
	for _, level := range compensation.PayLevelDomain() {
		if n, ok := counts[level]; ok {
			levelLabels = append(levelLabels, level)
			levelValues = append(levelValues, float64(n))
			levelColors = append(levelColors, colorForLevel(level))
		}
	}

	return SummaryView{
		DashboardView: dashboardView("Executive Summary", "summary", full, filtered, sel),
		TopEarners:    top,
		SalaryBars:    barsFromPairs(labels, values, colors),
		LevelCounts:   barsFromPairs(levelLabels, levelValues, levelColors),
	}
}

// buildInequalityView prepares the inequality analysis tab.
func buildInequalityView(full compensation.Table, sel filter.Selection, bins int) InequalityView {
	filtered := sel.Apply(full)
	hist := metrics.RatioHistogram(filtered, bins)

	labels := make([]string, len(hist))
	values := make([]float64, len(hist))
	for i, b := range hist {
		labels[i] = fmt.Sprintf("%.0f–%.0f", b.Lo, b.Hi)
		values[i] = float64(b.Count)
	}

	return InequalityView{
		DashboardView: dashboardView("Inequality Analysis", "inequality", full, filtered, sel),
		Savings:       metrics.EqualPaySavings(filtered),
		Histogram:     hist,
		BinBars:       barsFromPairs(labels, values, nil),
		RatioLabels:   labels,
	}
}

// buildIndustryView prepares the industry insights tab, including the
// optional single-industry detail table.
func buildIndustryView(full compensation.Table, sel filter.Selection, detailN int) IndustryView {
	filtered := sel.Apply(full)
	stats := metrics.ByIndustry(filtered)

	sorted := append([]metrics.IndustryStats(nil), stats...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MeanSalary > sorted[j].MeanSalary })

	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	for i, st := range sorted {
		labels[i] = st.Industry
		values[i] = st.MeanSalary
	}

	view := IndustryView{
		DashboardView: dashboardView("Industry Insights", "industries", full, filtered, sel),
		Stats:         sorted,
		MeanBars:      barsFromPairs(labels, values, nil),
		Levels:        metrics.LevelDistribution(filtered),
	}
	if sel.DetailIndustry != "" {
		detail := sel.Detail(filtered)
		view.Detail = sel.DetailIndustry
		view.DetailRows = metrics.TopBySalary(detail, detailN)
	}
	return view
}

// buildPerformanceView prepares the pay-versus-performance tab.
func buildPerformanceView(full compensation.Table, sel filter.Selection) PerformanceView {
	filtered := sel.Apply(full)
	corr := metrics.Correlate(filtered)
	return PerformanceView{
		DashboardView: dashboardView("The Performance Question", "performance", full, filtered, sel),
		Correlation:   corr,
		Cells:         corrCells(corr),
		Scatters:      performanceScatters(filtered),
	}
}
