package cmd

import (
	"fmt"

	"btc-energy-value/internal/halving"
	"btc-energy-value/internal/model"

	"github.com/spf13/cobra"
)

var halvingsThrough string

var halvingsCmd = &cobra.Command{
	Use:   "halvings",
	Short: "Print the subsidy schedule",
	RunE:  halvingsRun,
}

func init() {
	halvingsCmd.Flags().StringVar(&halvingsThrough, "through", "2050-12-31", "Last date to include, YYYY-MM-DD.")
	rootCmd.AddCommand(halvingsCmd)
}

func halvingsRun(cmd *cobra.Command, args []string) error {
	through, err := model.ParseDate(halvingsThrough)
	if err != nil {
		return fmt.Errorf("--through: %w", err)
	}
	eras := halving.Default.Through(through)
	if jsonOut {
		return printJSON(eras)
	}

	fmt.Printf("%-4s %-12s %-14s %-8s\n", "era", "start", "subsidy_btc", "known")
	for i, e := range eras {
		fmt.Printf("%-4d %-12s %-14.8f %-8t\n", i, e.Start.Format("2006-01-02"), e.SubsidyBTC, halving.IsKnown(e))
	}
	return nil
}
