package analysis

import (
	"sort"

	"btc-energy-value/internal/model"
	"btc-energy-value/internal/valuation"
)

type RankedValuation struct {
	Rank int `json:"rank"`
	model.ValuationResult
	// Premium is set when a market price was supplied.
	Premium *float64 `json:"premium,omitempty"`
}

// RankByFairPrice sorts valuations descending by fair price. A positive
// marketPrice also fills in each entry's premium.
func RankByFairPrice(results []model.ValuationResult, marketPrice float64) []RankedValuation {
	out := make([]RankedValuation, 0, len(results))
	for _, r := range results {
		rv := RankedValuation{ValuationResult: r}
		if marketPrice > 0 {
			p := valuation.Premium(marketPrice, r.FairPricePerBTC)
			rv.Premium = &p
		}
		out = append(out, rv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FairPricePerBTC > out[j].FairPricePerBTC
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
