package model

import "time"

// Era is a period during which a single block subsidy applies.
type Era struct {
	Start      time.Time `json:"start"`
	SubsidyBTC float64   `json:"subsidy_btc"`
}
