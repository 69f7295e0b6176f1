package cmd

import (
	"fmt"

	"btc-energy-value/internal/model"
	"btc-energy-value/internal/valuation"

	"github.com/spf13/cobra"
)

var (
	valueDate   string
	marketPrice float64
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Value one BTC at a date",
	RunE:  valueRun,
}

func init() {
	valueCmd.Flags().StringVarP(&valueDate, "date", "d", "", "Valuation date YYYY-MM-DD (default: the inputs' target_date).")
	valueCmd.Flags().Float64Var(&marketPrice, "market", 0, "Market price in USD; prints the premium over fair value.")
	rootCmd.AddCommand(valueCmd)
}

func valueRun(cmd *cobra.Command, args []string) error {
	in, table, err := loadInputs()
	if err != nil {
		return err
	}
	if valueDate != "" {
		d, err := model.ParseDate(valueDate)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		in.TargetDate = d
	}

	r := valuation.New().ValuateAt(in.TargetDate, scenarioFor(in), in, table)
	if jsonOut {
		return printJSON(r)
	}

	fmt.Printf("Date=%s Scenario=%s\n\n", r.Date.Format("2006-01-02"), r.Scenario)
	fmt.Printf("subsidy            %12.6f BTC (effective %.6f)\n", r.Subsidy, r.EffectiveSubsidy)
	fmt.Printf("network share      %12.6f%% (%s)\n", r.NetworkShareUsed*100, r.ShareSource)
	fmt.Printf("world electricity  %12.1f TWh\n", r.WorldElectricityTWh)
	fmt.Printf("btc electricity    %12.2f TWh\n", r.BTCElectricityTWh)
	fmt.Printf("electricity price  %12.4f $/kWh\n", r.ElectricityUSDPerKWh)
	fmt.Printf("cost per block     %12.2f $\n", r.CostPerBlockUSD)
	fmt.Printf("floor price        %12.2f $/BTC\n", r.FloorPricePerBTC)
	fmt.Printf("fair price         %12.2f $/BTC\n", r.FairPricePerBTC)
	fmt.Printf("fair price (real)  %12.2f $/BTC in %s dollars\n", r.FairPricePerBTCReal, in.BaseDate.Format("2006"))
	fmt.Printf("stack %-8g     %12.2f $ (real %.2f)\n", in.StackBTC, r.StackValueUSD, r.StackValueUSDReal)
	if marketPrice > 0 {
		fmt.Printf("premium            %+12.2f%%\n", valuation.Premium(marketPrice, r.FairPricePerBTC)*100)
	}
	return nil
}
