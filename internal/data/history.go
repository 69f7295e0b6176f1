package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"btc-energy-value/internal/model"
)

// HistoryFile is the on-disk historical share table.
type HistoryFile struct {
	UpdatedAt string                       `json:"updated_at"` // RFC3339
	Source    string                       `json:"source"`
	Points    []model.HistoricalSharePoint `json:"points"`
}

// Table keys the file's points by year.
func (f *HistoryFile) Table() model.HistoricalTable {
	if f == nil {
		return model.HistoricalTable{}
	}
	return model.NewHistoricalTable(f.Points)
}

// LoadHistory reads a history file.
func LoadHistory(path string) (*HistoryFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var f HistoryFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}

	return &f, nil
}

// LoadHistoryTable reads a history file and returns its table. A missing file
// is not an error; it yields an empty table and the model projects every year.
func LoadHistoryTable(path string) (model.HistoricalTable, error) {
	f, err := LoadHistory(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.HistoricalTable{}, nil
		}
		return nil, err
	}
	return f.Table(), nil
}

// SaveHistory writes a history file, creating its directory.
func SaveHistory(f *HistoryFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

// DefaultHistoryPath returns HISTORY_FILE or ./data/history.json.
func DefaultHistoryPath() string {
	if path := os.Getenv("HISTORY_FILE"); path != "" {
		return path
	}
	return "./data/history.json"
}
