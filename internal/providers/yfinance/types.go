package yfinance

import "encoding/json"

// --- Yahoo Finance API response types ---

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta       yfChartMeta    `json:"meta"`
	Timestamp  []int64        `json:"timestamp"`
	Events     *yfChartEvents `json:"events"`
	Indicators yfIndicators   `json:"indicators"`
}

type yfChartMeta struct {
	Symbol               string  `json:"symbol"`
	Currency             string  `json:"currency"`
	ExchangeName         string  `json:"exchangeName"`
	FullExchangeName     string  `json:"fullExchangeName"`
	InstrumentType       string  `json:"instrumentType"`
	ExchangeTimezoneName string  `json:"exchangeTimezoneName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice"`
	ChartPreviousClose   float64 `json:"chartPreviousClose"`
}

type yfChartEvents struct {
	Dividends map[string]yfDividend `json:"dividends"`
	Splits    map[string]yfSplit    `json:"splits"`
}

type yfDividend struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type yfSplit struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

type yfIndicators struct {
	Quote    []yfOHLCV    `json:"quote"`
	AdjClose []yfAdjClose `json:"adjclose"`
}

type yfOHLCV struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type yfAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response. Modules
// are kept raw and decoded by the fetcher that asked for them.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *yfError                     `json:"error"`
	} `json:"quoteSummary"`
}

type yfRecommendationTrend struct {
	Trend []struct {
		Period     string   `json:"period"`
		StrongBuy  *float64 `json:"strongBuy"`
		Buy        *float64 `json:"buy"`
		Hold       *float64 `json:"hold"`
		Sell       *float64 `json:"sell"`
		StrongSell *float64 `json:"strongSell"`
	} `json:"trend"`
}

type yfFinancialData struct {
	CurrentPrice      json.RawMessage `json:"currentPrice"`
	TargetHighPrice   json.RawMessage `json:"targetHighPrice"`
	TargetLowPrice    json.RawMessage `json:"targetLowPrice"`
	TargetMeanPrice   json.RawMessage `json:"targetMeanPrice"`
	TargetMedianPrice json.RawMessage `json:"targetMedianPrice"`
}

type yfCalendarEvents struct {
	Earnings struct {
		EarningsDate    []json.RawMessage `json:"earningsDate"`
		EarningsHigh    json.RawMessage   `json:"earningsHigh"`
		EarningsLow     json.RawMessage   `json:"earningsLow"`
		EarningsAverage json.RawMessage   `json:"earningsAverage"`
		RevenueHigh     json.RawMessage   `json:"revenueHigh"`
		RevenueLow      json.RawMessage   `json:"revenueLow"`
		RevenueAverage  json.RawMessage   `json:"revenueAverage"`
	} `json:"earnings"`
	ExDividendDate json.RawMessage `json:"exDividendDate"`
	DividendDate   json.RawMessage `json:"dividendDate"`
}

type yfDefaultKeyStatistics struct {
	SharesOutstanding json.RawMessage `json:"sharesOutstanding"`
}

// yfTimeseriesResponse wraps the fundamentals-timeseries API response. Each
// result carries one statement line under a key equal to its type.
type yfTimeseriesResponse struct {
	Timeseries struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *yfError                     `json:"error"`
	} `json:"timeseries"`
}

type yfTimeseriesMeta struct {
	Type []string `json:"type"`
}

type yfTimeseriesPoint struct {
	AsOfDate      string `json:"asOfDate"`
	PeriodType    string `json:"periodType"`
	CurrencyCode  string `json:"currencyCode"`
	ReportedValue struct {
		Raw *float64 `json:"raw"`
	} `json:"reportedValue"`
}
