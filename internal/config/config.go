package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"btc-energy-value/internal/data"
	"btc-energy-value/internal/model"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load base inputs from a separate YAML (e.g. examples/inputs/*.yaml).
	// If both InputsFile and Model are provided, Model overrides InputsFile.
	InputsFile string `yaml:"inputs_file"`
	// Optional: historical share table (JSON, see data.HistoryFile).
	HistoryFile string       `yaml:"history_file"`
	Model       InputsConfig `yaml:"model"`
}

// InputsConfig mirrors model.ModelInputs. Every field is optional; nil means
// "use the default". Dates are YYYY-MM-DD.
type InputsConfig struct {
	TargetDate        string   `yaml:"target_date" json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BaseDate          string   `yaml:"base_date" json:"base_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Scenario          string   `yaml:"scenario" json:"scenario,omitempty" validate:"omitempty,oneof=bearish base bullish"`
	CapSharePct       *float64 `yaml:"cap_share_pct" json:"cap_share_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	FeesPct           *float64 `yaml:"fees_pct" json:"fees_pct,omitempty" validate:"omitempty,gte=0"`
	ElecBaseUSDPerKWh *float64 `yaml:"elec_base_usd_per_kwh" json:"elec_base_usd_per_kwh,omitempty" validate:"omitempty,gte=0"`
	ElecDriftPct      *float64 `yaml:"elec_drift_pct" json:"elec_drift_pct,omitempty" validate:"omitempty,gt=-100"`
	CPIPct            *float64 `yaml:"cpi_pct" json:"cpi_pct,omitempty" validate:"omitempty,gt=-100"`
	OverheadPhi       *float64 `yaml:"overhead_phi" json:"overhead_phi,omitempty" validate:"omitempty,gte=0"`
	StackBTC          *float64 `yaml:"stack_btc" json:"stack_btc,omitempty" validate:"omitempty,gte=0"`
}

var validate = validator.New()

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If inputs_file is set, load it and merge in any explicit overrides from c.Model.
	if c.InputsFile != "" {
		loaded, err := loadInputsFile(resolve(path, c.InputsFile))
		if err != nil {
			return nil, err
		}
		c.Model = MergeInputs(loaded, c.Model)
	}
	if c.HistoryFile != "" {
		c.HistoryFile = resolve(path, c.HistoryFile)
	}
	return &c, nil
}

// resolve interprets rel relative to the config file's directory, falling back
// to the path as given (relative to cwd) if that doesn't exist.
func resolve(configPath, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	cand := filepath.Join(filepath.Dir(configPath), rel)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return rel
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Model.Validate(); err != nil {
		return fmt.Errorf("model config invalid: %w", err)
	}
	return nil
}

// Inputs resolves the configured inputs over model.DefaultInputs.
func (c *Config) Inputs() (model.ModelInputs, error) {
	if c == nil {
		return model.DefaultInputs(), nil
	}
	return c.Model.ToModelInputs()
}

// History loads the configured historical table; without a history file the
// table is empty.
func (c *Config) History() (model.HistoricalTable, error) {
	if c == nil || c.HistoryFile == "" {
		return model.HistoricalTable{}, nil
	}
	return data.LoadHistoryTable(c.HistoryFile)
}

// Validate checks field ranges and formats.
func (ic InputsConfig) Validate() error {
	if err := validate.Struct(ic); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (%s)", fe.Field(), fe.Tag(), fe.Param()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// ToModelInputs overlays the set fields onto model.DefaultInputs.
func (ic InputsConfig) ToModelInputs() (model.ModelInputs, error) {
	in := model.DefaultInputs()
	if ic.TargetDate != "" {
		d, err := model.ParseDate(ic.TargetDate)
		if err != nil {
			return in, fmt.Errorf("target_date: %w", err)
		}
		in.TargetDate = d
	}
	if ic.BaseDate != "" {
		d, err := model.ParseDate(ic.BaseDate)
		if err != nil {
			return in, fmt.Errorf("base_date: %w", err)
		}
		in.BaseDate = d
	}
	if ic.Scenario != "" {
		sc, ok := model.ScenarioByName(ic.Scenario)
		if !ok {
			return in, fmt.Errorf("unknown scenario %q", ic.Scenario)
		}
		in.Scenario = sc.Name
	}
	set(&in.CapSharePct, ic.CapSharePct)
	set(&in.FeesPct, ic.FeesPct)
	set(&in.ElecBaseUSDPerKWh, ic.ElecBaseUSDPerKWh)
	set(&in.ElecDriftPct, ic.ElecDriftPct)
	set(&in.CPIPct, ic.CPIPct)
	set(&in.OverheadPhi, ic.OverheadPhi)
	set(&in.StackBTC, ic.StackBTC)
	return in, nil
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

type inputsFileWrapper struct {
	Model InputsConfig `yaml:"model"`
}

func loadInputsFile(path string) (InputsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return InputsConfig{}, err
	}
	var w inputsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return InputsConfig{}, err
	}
	return w.Model, nil
}

// MergeInputs overlays set fields from override onto base.
// This is used when loading an inputs file and then applying overrides from the
// config or a request.
func MergeInputs(base, override InputsConfig) InputsConfig {
	out := base
	if override.TargetDate != "" {
		out.TargetDate = override.TargetDate
	}
	if override.BaseDate != "" {
		out.BaseDate = override.BaseDate
	}
	if override.Scenario != "" {
		out.Scenario = override.Scenario
	}
	merge(&out.CapSharePct, override.CapSharePct)
	merge(&out.FeesPct, override.FeesPct)
	merge(&out.ElecBaseUSDPerKWh, override.ElecBaseUSDPerKWh)
	merge(&out.ElecDriftPct, override.ElecDriftPct)
	merge(&out.CPIPct, override.CPIPct)
	merge(&out.OverheadPhi, override.OverheadPhi)
	merge(&out.StackBTC, override.StackBTC)
	return out
}

func merge(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}
