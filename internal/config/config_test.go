package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"btc-energy-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func f64(v float64) *float64 { return &v }

func TestLoad_MergesInputsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inputs/base.yaml", `
model:
  cap_share_pct: 2
  fees_pct: 10
  cpi_pct: 3
`)
	path := writeFile(t, dir, "config.yaml", `
inputs_file: inputs/base.yaml
model:
  target_date: "2040-06-30"
  scenario: bullish
  fees_pct: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	in, err := cfg.Inputs()
	require.NoError(t, err)
	assert.Equal(t, model.Date(2040, time.June, 30), in.TargetDate)
	assert.Equal(t, model.ScenarioBullish, in.Scenario)
	assert.Equal(t, 2.0, in.CapSharePct)
	assert.Equal(t, 0.0, in.FeesPct, "explicit zero overrides the inputs file")
	assert.Equal(t, 3.0, in.CPIPct)
	assert.Equal(t, model.DefaultInputs().OverheadPhi, in.OverheadPhi)
}

func TestLoad_ResolvesHistoryRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data/history.json", `{"points":[{"year":2023,"share":0.0045,"electricity_twh":130}]}`)
	path := writeFile(t, dir, "config.yaml", "history_file: data/history.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data/history.json"), cfg.HistoryFile)

	table, err := cfg.History()
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, 0.0045, table[2023].Share)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"scenario":  "model:\n  scenario: sideways\n",
		"date":      "model:\n  target_date: 01/02/2030\n",
		"cap":       "model:\n  cap_share_pct: 150\n",
		"negative":  "model:\n  stack_btc: -1\n",
		"cpi floor": "model:\n  cpi_pct: -100\n",
	}
	for name, body := range cases {
		path := writeFile(t, dir, name+".yaml", body)
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInputs_NilConfigUsesDefaults(t *testing.T) {
	var cfg *Config
	in, err := cfg.Inputs()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultInputs(), in)

	table, err := cfg.History()
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestMergeInputs(t *testing.T) {
	base := InputsConfig{Scenario: "base", CapSharePct: f64(1.5), FeesPct: f64(15)}
	override := InputsConfig{Scenario: "bearish", FeesPct: f64(5)}

	got := MergeInputs(base, override)
	assert.Equal(t, "bearish", got.Scenario)
	require.NotNil(t, got.CapSharePct)
	assert.Equal(t, 1.5, *got.CapSharePct)
	assert.Equal(t, 5.0, *got.FeesPct)
	assert.Equal(t, 15.0, *base.FeesPct, "base is not mutated")
}

func TestToModelInputs_CaseInsensitiveScenario(t *testing.T) {
	in, err := InputsConfig{Scenario: "Bearish"}.ToModelInputs()
	require.NoError(t, err)
	assert.Equal(t, model.ScenarioBearish, in.Scenario)
}
