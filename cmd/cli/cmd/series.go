package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"btc-energy-value/internal/analysis"
	"btc-energy-value/internal/valuation"

	"github.com/spf13/cobra"
)

var (
	seriesStart int
	seriesEnd   int
	seriesOut   string
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Value one BTC on July 1 of each year in a range",
	RunE:  seriesRun,
}

func init() {
	seriesCmd.Flags().IntVar(&seriesStart, "start", 2012, "First year.")
	seriesCmd.Flags().IntVar(&seriesEnd, "end", 2050, "Last year (inclusive).")
	seriesCmd.Flags().StringVarP(&seriesOut, "out", "o", "", "Write CSV to this path ('-' for stdout).")
	rootCmd.AddCommand(seriesCmd)
}

func seriesRun(cmd *cobra.Command, args []string) error {
	in, table, err := loadInputs()
	if err != nil {
		return err
	}
	sc := scenarioFor(in)

	series := valuation.New().SeriesFrom(seriesStart, seriesEnd, sc, in, table)

	switch {
	case seriesOut == "-":
		return valuation.EncodeSeriesCSV(os.Stdout, series)
	case seriesOut != "":
		if err := os.MkdirAll(filepath.Dir(seriesOut), 0o755); err != nil {
			return err
		}
		if err := valuation.WriteSeriesCSV(seriesOut, series); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(series), seriesOut)
		return nil
	}

	summary := analysis.Summarize(sc.Name, series)
	if jsonOut {
		return printJSON(struct {
			Summary analysis.SeriesSummary `json:"summary"`
			Points  interface{}            `json:"points"`
		}{summary, series})
	}

	fmt.Printf("%-6s %-14s %-14s %-14s %-10s %-12s %-9s\n", "year", "price", "floor", "price_real", "subsidy", "share", "source")
	for _, p := range series {
		fmt.Printf("%-6d %-14.2f %-14.2f %-14.2f %-10.6f %-12.6g %-9s\n",
			p.Year, p.Price, p.Floor, p.PriceReal, p.Subsidy, p.Share, p.Source)
	}
	if summary.Count > 0 {
		fmt.Printf("\nmeasured=%d projected=%d min=%.2f max=%.2f mean=%.2f p05=%.2f p95=%.2f cagr=%.2f%%\n",
			summary.MeasuredYears, summary.ProjectedYears, summary.MinPrice, summary.MaxPrice,
			summary.MeanPrice, summary.P05Price, summary.P95Price, summary.CAGR*100)
	}
	return nil
}
