package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"paygap/domain/compensation"
	"paygap/internal/filter"
	"paygap/internal/loader"
	"paygap/internal/metrics"
	"paygap/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paygap-report",
		Short: "One-shot CEO compensation reports from a spreadsheet",
	}

	rootCmd.AddCommand(
		newSummaryCmd(),
		newIndustriesCmd(),
		newTopCmd(),
		newGenerateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadTable loads the file, printing the data-quality report to stderr so
// stdout stays pipeable.
func loadTable(path string, sel filter.Selection) (compensation.Table, error) {
	table, report, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(os.Stderr, "loaded %d rows (%d dropped, %d cell failures) from %s\n",
		report.RowsKept, report.RowsDropped, report.TotalCellFailures(), path)
	return sel.Apply(table), nil
}

func selectionFlags(cmd *cobra.Command, industries, levels *[]string) {
	cmd.Flags().StringSliceVar(industries, "industry", nil, "restrict to these industries (repeatable)")
	cmd.Flags().StringSliceVar(levels, "level", nil, "restrict to these pay levels (repeatable)")
}

func newSummaryCmd() *cobra.Command {
	var industries, levels []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print headline numbers and the equal-pay scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0], filter.Selection{Industries: industries, PayLevels: levels})
			if err != nil {
				return err
			}
			summary := metrics.Summarize(table)
			savings := metrics.EqualPaySavings(table)

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"summary": summary,
					"savings": savings,
				})
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Executives\t%d\n", summary.Count)
			fmt.Fprintf(w, "Industries\t%d\n", summary.IndustryCount)
			fmt.Fprintf(w, "Mean pay\t$%.0f\n", summary.MeanSalary)
			if summary.PayGap > 0 {
				fmt.Fprintf(w, "Pay gap\t%.0fx\n", summary.PayGap)
			}
			fmt.Fprintf(w, "Ratio range\t%.0f:1 to %.0f:1\n", summary.MinRatio, summary.MaxRatio)
			if savings.LowestName != "" {
				fmt.Fprintf(w, "Equal-pay savings\t$%.0f (%.0f%%)\n", savings.Savings, savings.Fraction*100)
			}
			return w.Flush()
		},
	}
	selectionFlags(cmd, &industries, &levels)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}

func newIndustriesCmd() *cobra.Command {
	var industries, levels []string

	cmd := &cobra.Command{
		Use:   "industries [file]",
		Short: "Print per-industry aggregates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0], filter.Selection{Industries: industries, PayLevels: levels})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDUSTRY\tCEOS\tMEAN PAY\tMAX PAY\tMEAN RATIO")
			for _, st := range metrics.ByIndustry(table) {
				fmt.Fprintf(w, "%s\t%d\t$%.0f\t$%.0f\t%.0f:1\n",
					st.Industry, st.Count, st.MeanSalary, st.MaxSalary, st.MeanRatio)
			}
			return w.Flush()
		},
	}
	selectionFlags(cmd, &industries, &levels)
	return cmd
}

func newTopCmd() *cobra.Command {
	var industries, levels []string
	var n int

	cmd := &cobra.Command{
		Use:   "top [file]",
		Short: "Print the highest-paid executives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0], filter.Selection{Industries: industries, PayLevels: levels})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tCEO\tCOMPANY\tPAY\tRATIO\tLEVEL")
			for i, rec := range metrics.TopBySalary(table, n) {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%.0f\t%.0f:1\t%s\n",
					i+1, rec.Name, rec.Company, rec.Salary, rec.PayRatio, rec.PayLevel)
			}
			return w.Flush()
		},
	}
	selectionFlags(cmd, &industries, &levels)
	cmd.Flags().IntVar(&n, "n", 20, "number of rows")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Write a synthetic dataset for demos and testing",
		Long:  "Writes a CSV or Excel workbook (by extension) of generated compensation data.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit := testkit.NewTestKitWithConfig(testkit.GeneratorConfig{
				RecordCount:     count,
				MissingRatioPct: 0.08,
				MissingFieldPct: 0.05,
				Seed:            seed,
			})
			path := args[0]
			var err error
			if strings.HasSuffix(path, ".xlsx") {
				err = kit.WriteWorkbook(path)
			} else {
				err = kit.WriteCSV(path)
			}
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d rows to %s\n", count, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 120, "rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	return cmd
}
