package cmd

import (
	"fmt"

	"btc-energy-value/internal/analysis"
	"btc-energy-value/internal/model"
	"btc-energy-value/internal/valuation"

	"github.com/spf13/cobra"
)

var compareDate string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Value one date under every scenario, ranked by fair price",
	RunE:  compareRun,
}

func init() {
	compareCmd.Flags().StringVarP(&compareDate, "date", "d", "", "Valuation date YYYY-MM-DD (default: the inputs' target_date).")
	compareCmd.Flags().Float64Var(&marketPrice, "market", 0, "Market price in USD; adds a premium column.")
	rootCmd.AddCommand(compareCmd)
}

func compareRun(cmd *cobra.Command, args []string) error {
	in, table, err := loadInputs()
	if err != nil {
		return err
	}
	if compareDate != "" {
		d, err := model.ParseDate(compareDate)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		in.TargetDate = d
	}

	ranked := analysis.RankByFairPrice(valuation.New().Compare(in.TargetDate, in, table), marketPrice)
	if jsonOut {
		return printJSON(ranked)
	}

	fmt.Printf("Date=%s\n\n", in.TargetDate.Format("2006-01-02"))
	fmt.Printf("%-4s %-8s %-14s %-14s %-14s %-10s\n", "rank", "scenario", "fair", "floor", "fair_real", "premium")
	for _, r := range ranked {
		premium := "-"
		if r.Premium != nil {
			premium = fmt.Sprintf("%+.2f%%", *r.Premium*100)
		}
		fmt.Printf("%-4d %-8s %-14.2f %-14.2f %-14.2f %-10s\n",
			r.Rank, r.Scenario, r.FairPricePerBTC, r.FloorPricePerBTC, r.FairPricePerBTCReal, premium)
	}
	return nil
}
