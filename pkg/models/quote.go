// Package models defines the mapping-shaped results returned by providers.
// Numeric fields are pointers: a nil field is a value the upstream did not
// report and encodes as JSON null.
package models

import "math"

// FastInfo is a quote snapshot computed from recent daily bars and the
// share count, without the heavier quote-summary call.
type FastInfo struct {
	Currency                   string   `json:"currency"`
	Exchange                   string   `json:"exchange"`
	QuoteType                  string   `json:"quoteType"`
	Timezone                   string   `json:"timezone"`
	LastPrice                  *float64 `json:"lastPrice"`
	Open                       *float64 `json:"open"`
	DayHigh                    *float64 `json:"dayHigh"`
	DayLow                     *float64 `json:"dayLow"`
	PreviousClose              *float64 `json:"previousClose"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	LastVolume                 *float64 `json:"lastVolume"`
	FiftyDayAverage            *float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage       *float64 `json:"twoHundredDayAverage"`
	TenDayAverageVolume        *float64 `json:"tenDayAverageVolume"`
	ThreeMonthAverageVolume    *float64 `json:"threeMonthAverageVolume"`
	YearHigh                   *float64 `json:"yearHigh"`
	YearLow                    *float64 `json:"yearLow"`
	YearChange                 *float64 `json:"yearChange"`
	Shares                     *float64 `json:"shares"`
	MarketCap                  *float64 `json:"marketCap"`
}

// PriceTargets is the analyst price target range next to the current price.
type PriceTargets struct {
	Current *float64 `json:"current"`
	High    *float64 `json:"high"`
	Low     *float64 `json:"low"`
	Mean    *float64 `json:"mean"`
	Median  *float64 `json:"median"`
}

// Float returns a pointer to v, or nil when v is not a finite number.
func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
