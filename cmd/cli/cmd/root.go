// Package cmd contains the valuation CLI.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"btc-energy-value/internal/config"
	"btc-energy-value/internal/data"
	"btc-energy-value/internal/model"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	historyPath string
	scenarioArg string
	jsonOut     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (optional).")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "Path to history JSON; overrides the config's history_file.")
	rootCmd.PersistentFlags().StringVarP(&scenarioArg, "scenario", "s", "", "Scenario preset: bearish, base or bullish.")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a table.")
}

var rootCmd = &cobra.Command{
	Use:           "cli",
	Short:         "Energy-value fair price model for Bitcoin",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadInputs resolves inputs and history from --config, --history and
// --scenario, in that order of precedence.
func loadInputs() (model.ModelInputs, model.HistoricalTable, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return model.ModelInputs{}, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if scenarioArg != "" {
		sc, ok := model.ScenarioByName(scenarioArg)
		if !ok {
			return model.ModelInputs{}, nil, fmt.Errorf("unknown scenario %q", scenarioArg)
		}
		cfg.Model.Scenario = string(sc.Name)
	}

	in, err := cfg.Inputs()
	if err != nil {
		return model.ModelInputs{}, nil, err
	}

	path := cfg.HistoryFile
	if historyPath != "" {
		path = historyPath
	}
	if path == "" {
		path = data.DefaultHistoryPath()
	}
	table, err := data.LoadHistoryTable(path)
	if err != nil {
		return model.ModelInputs{}, nil, fmt.Errorf("loading history: %w", err)
	}
	return in, table, nil
}

// scenarioFor returns the preset named by the inputs.
func scenarioFor(in model.ModelInputs) model.Scenario {
	sc, ok := model.ScenarioByName(string(in.Scenario))
	if !ok {
		return model.Base
	}
	return sc
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
