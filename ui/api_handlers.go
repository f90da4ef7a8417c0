package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"paygap/domain/compensation"
	"paygap/internal/filter"
	"paygap/internal/metrics"
)

// filteredTable resolves the shared filter parameters and applies them.
// A load failure is file-level and fatal for the request.
func (s *Server) filteredTable(c *gin.Context) (compensation.Table, compensation.Table, filter.Selection, bool) {
	full, _, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fmt.Sprintf("dataset unavailable: %v", err)})
		return nil, nil, filter.Selection{}, false
	}
	sel := selectionFromQuery(c.Request.URL.Query())
	return full, sel.Apply(full), sel, true
}

func (s *Server) handleHealth(c *gin.Context) {
	resp := gin.H{
		"status": "ok",
		"uptime": time.Since(s.started).String(),
		"mode":   "file",
	}
	if s.cache == nil {
		resp["mode"] = "demo"
		c.JSON(http.StatusOK, resp)
		return
	}
	_, snap, err := s.snapshot()
	if err != nil {
		resp["status"] = "degraded"
		resp["error"] = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	resp["snapshot"] = snap.ID
	resp["rows"] = snap.Table.Len()
	resp["loadedAt"] = snap.LoadedAt.Format("2006-01-02 15:04:05")
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSummary(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	summary := metrics.Summarize(filtered)
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"insight": keyInsight(summary),
	})
}

func (s *Server) handleRecords(c *gin.Context) {
	_, filtered, sel, ok := s.filteredTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records":   filtered,
		"count":     filtered.Len(),
		"selection": sel,
	})
}

func (s *Server) handleTop(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	n := s.config.TopN
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}
	top := metrics.TopBySalary(filtered, n)
	c.JSON(http.StatusOK, gin.H{"top": top, "count": top.Len()})
}

func (s *Server) handleIndustries(c *gin.Context) {
	full, filtered, sel, ok := s.filteredTable(c)
	if !ok {
		return
	}
	resp := gin.H{
		"industries": metrics.ByIndustry(filtered),
		"domain":     full.Industries(),
	}
	if sel.DetailIndustry != "" {
		detail := sel.Detail(filtered)
		resp["detail"] = gin.H{
			"industry": sel.DetailIndustry,
			"top":      metrics.TopBySalary(detail, s.config.DetailN),
			"summary":  metrics.Summarize(detail),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHistogram(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	bins := metrics.RatioHistogram(filtered, s.config.HistogramBins)
	c.JSON(http.StatusOK, gin.H{"bins": bins, "count": len(bins)})
}

func (s *Server) handleCorrelation(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metrics.Correlate(filtered))
}

func (s *Server) handleSavings(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, metrics.EqualPaySavings(filtered))
}

func (s *Server) handleLevels(c *gin.Context) {
	_, filtered, _, ok := s.filteredTable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"domain":       compensation.PayLevelDomain(),
		"distribution": metrics.LevelDistribution(filtered),
	})
}

// handleReport exposes the loader's data-quality report: what the last load
// mapped, dropped, and failed to parse.
func (s *Server) handleReport(c *gin.Context) {
	if s.cache == nil {
		c.JSON(http.StatusOK, gin.H{"mode": "demo", "note": "generated dataset, no load report"})
		return
	}
	_, snap, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fmt.Sprintf("dataset unavailable: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"snapshot": snap.ID,
		"loadedAt": snap.LoadedAt.Format("2006-01-02 15:04:05"),
		"report":   snap.Report,
	})
}

// handleDigest renders a plain-text markdown digest of the filtered data,
// suitable for piping into docs or chat.
func (s *Server) handleDigest(c *gin.Context) {
	_, filtered, sel, ok := s.filteredTable(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/markdown; charset=utf-8")
	c.String(http.StatusOK, renderReport(filtered, sel))
}

// renderReport writes the one-page markdown report.
func renderReport(table compensation.Table, sel filter.Selection) string {
	var b strings.Builder
	summary := metrics.Summarize(table)
	savings := metrics.EqualPaySavings(table)

	b.WriteString("# CEO Compensation Report\n\n")
	if len(sel.Industries) > 0 || len(sel.PayLevels) > 0 {
		fmt.Fprintf(&b, "Filters: industries=%v levels=%v\n\n", sel.Industries, sel.PayLevels)
	}
	fmt.Fprintf(&b, "%s\n\n", keyInsight(summary))
	if summary.Count == 0 {
		return b.String()
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Executives: %d across %d industries\n", summary.Count, summary.IndustryCount)
	fmt.Fprintf(&b, "- Mean pay: %s\n", money(summary.MeanSalary))
	if summary.PayGap > 0 {
		fmt.Fprintf(&b, "- Pay gap (max/min): %.0f×\n", summary.PayGap)
	}
	fmt.Fprintf(&b, "- Pay ratio range: %s to %s\n\n", ratio(summary.MinRatio), ratio(summary.MaxRatio))

	b.WriteString("## Industries\n\n")
	b.WriteString("| Industry | CEOs | Mean pay | Mean ratio |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, st := range metrics.ByIndustry(table) {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", st.Industry, st.Count, money(st.MeanSalary), ratio(st.MeanRatio))
	}
	b.WriteString("\n## Equal-Pay Scenario\n\n")
	fmt.Fprintf(&b, "If every CEO earned what %s does (%s), total pay would fall from %s to %s, saving %s (%.0f%%).\n",
		savings.LowestName, money(savings.LowestSalary), money(savings.ActualTotal),
		money(savings.HypotheticalTotal), money(savings.Savings), savings.Fraction*100)
	return b.String()
}
