package main

import (
	"flag"
	"fmt"
	"os"

	"btc-energy-value/internal/config"
	"btc-energy-value/internal/data"
	"btc-energy-value/internal/energy"
	"btc-energy-value/internal/halving"
	"btc-energy-value/internal/inflation"
	"btc-energy-value/internal/model"
	"btc-energy-value/internal/share"
	"btc-energy-value/internal/valuation"
)

// Demo:
// - Load inputs (defaults or --config) and the historical share table
// - Walk one valuation through each step of the model
// - Print a short series for every scenario to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	historyPath := flag.String("history", "", "Path to history JSON (default: $HISTORY_FILE or data/history.json)")
	dateArg := flag.String("date", "2024-04-20", "Date to walk through (YYYY-MM-DD)")
	years := flag.Int("years", 10, "Number of years to print per scenario")
	outCSV := flag.String("out", "", "Optional path to write the base-scenario series CSV")
	flag.Parse()

	in := model.DefaultInputs()
	hist := *historyPath
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		if in, err = cfg.Inputs(); err != nil {
			panic(err)
		}
		if hist == "" {
			hist = cfg.HistoryFile
		}
	}
	if hist == "" {
		hist = data.DefaultHistoryPath()
	}
	table, err := data.LoadHistoryTable(hist)
	if err != nil {
		panic(err)
	}

	t, err := model.ParseDate(*dateArg)
	if err != nil {
		panic(err)
	}
	sc, ok := model.ScenarioByName(string(in.Scenario))
	if !ok {
		sc = model.Base
	}

	fmt.Printf("Loaded %d historical years from %s\n", len(table), hist)
	fmt.Printf("Date=%s Scenario=%s\n\n", t.Format("2006-01-02"), sc.Name)

	// Step by step, mirroring valuation.Engine.ValuateAt.
	subsidy := halving.SubsidyAt(t)
	eff := subsidy * (1 + in.FeesPct/100)
	fmt.Printf("1. subsidy            %.6f BTC, with %.1f%% fees %.6f BTC\n", subsidy, in.FeesPct, eff)

	world := energy.DefaultWorld.TWh(t.Year())
	fmt.Printf("2. world electricity  %.1f TWh\n", world)

	est := share.Default.Estimate(t.Year(), sc, in.CapSharePct, table)
	fmt.Printf("3. network share      %.6f%% (%s)\n", est.Share*100, est.Source)
	if est.Curve != nil {
		fmt.Printf("   curve: cap=%.4f midpoint=%.2f k=%.2f anchor=%d\n",
			est.Curve.Cap, est.Curve.Midpoint, est.Curve.Steepness, est.Curve.AnchorYear)
	}

	btc := world * est.Share
	perBlockKWh := btc * 1e9 / valuation.BlocksPerYear
	fmt.Printf("4. btc electricity    %.2f TWh, %.0f kWh per block\n", btc, perBlockKWh)

	price := energy.PriceModelFor(in).USDPerKWh(t, sc)
	cost := perBlockKWh * price * in.OverheadPhi
	fmt.Printf("5. electricity        $%.4f/kWh, x%.2f overhead = $%.2f per block\n", price, in.OverheadPhi, cost)

	floor := cost / eff
	fair := floor * sc.MarkupMultiplier
	fmt.Printf("6. floor              $%.2f/BTC\n", floor)
	fmt.Printf("7. fair (x%.2f)        $%.2f/BTC\n", sc.MarkupMultiplier, fair)
	fmt.Printf("8. fair (real)        $%.2f/BTC\n", inflation.For(in).Real(fair, t))

	r := valuation.New().ValuateAt(t, sc, in, table)
	fmt.Printf("\nengine: fair=$%.2f floor=$%.2f\n\n", r.FairPricePerBTC, r.FloorPricePerBTC)

	start := t.Year()
	end := start + *years - 1
	engine := valuation.New()
	for _, s := range model.Scenarios() {
		series := engine.SeriesFrom(start, end, s, in, table)
		fmt.Printf("%s:\n", s.Name)
		for _, p := range series {
			fmt.Printf("  %d price=%12.2f floor=%12.2f real=%12.2f share=%.6f %s\n",
				p.Year, p.Price, p.Floor, p.PriceReal, p.Share, p.Source)
		}
	}

	if *outCSV != "" {
		series := engine.SeriesFrom(start, end, sc, in, table)
		if err := valuation.WriteSeriesCSV(*outCSV, series); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
