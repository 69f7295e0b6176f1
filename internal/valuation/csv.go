package valuation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"btc-energy-value/internal/model"
)

func WriteSeriesCSV(path string, series []model.SeriesPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeSeriesCSV(f, series)
}

// EncodeSeriesCSV writes a header row and one row per point.
func EncodeSeriesCSV(out io.Writer, series []model.SeriesPoint) error {
	w := csv.NewWriter(out)

	header := []string{
		"year",
		"price",
		"floor",
		"price_real",
		"subsidy",
		"share",
		"source",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range series {
		row := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.Price),
			fmtFloat(p.Floor),
			fmtFloat(p.PriceReal),
			fmtFloat(p.Subsidy),
			fmtShare(p.Share),
			string(p.Source),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

// Shares are small fractions; keep significant digits.
func fmtShare(x float64) string {
	return strconv.FormatFloat(x, 'g', 8, 64)
}
