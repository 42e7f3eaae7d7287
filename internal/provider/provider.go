// Package provider defines the contract between the HTTP layer and a
// financial data provider. A Provider answers one call per data category
// for a ticker symbol, returning either tabular data (normalised downstream
// by package table) or a mapping that is passed through as-is.
package provider

//go:generate mockgen -package=api -destination=../../api/mock_provider_test.go -source=provider.go Provider

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/models"
)

// Provider is implemented by every data backend. Each method performs the
// upstream calls for a single symbol and returns a fresh result; nothing is
// retained between calls.
type Provider interface {
	// Name returns the provider identifier, e.g. "yfinance".
	Name() string

	// Info returns the flattened quote metadata for symbol.
	Info(ctx context.Context, symbol string) (map[string]any, error)

	// FastInfo returns a cheap quote snapshot derived from recent prices.
	FastInfo(ctx context.Context, symbol string) (*models.FastInfo, error)

	// History returns OHLCV bars indexed by bar time.
	History(ctx context.Context, symbol string, params HistoryParams) (*table.Frame, error)

	// Recommendations returns the analyst recommendation trend.
	Recommendations(ctx context.Context, symbol string) (*table.Frame, error)

	// IncomeStatement, BalanceSheet and CashFlow return annual statements with
	// line items as rows and period end dates as columns.
	IncomeStatement(ctx context.Context, symbol string) (*table.Frame, error)
	BalanceSheet(ctx context.Context, symbol string) (*table.Frame, error)
	CashFlow(ctx context.Context, symbol string) (*table.Frame, error)

	// Sustainability returns ESG scores, one row per metric.
	Sustainability(ctx context.Context, symbol string) (*table.Frame, error)

	// AnalystPriceTargets returns the current price and analyst target range.
	AnalystPriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error)

	// EarningsDates returns at most limit earnings events, newest first.
	EarningsDates(ctx context.Context, symbol string, limit int) (*table.Frame, error)

	// Dividends and Splits return the full event history as a series.
	Dividends(ctx context.Context, symbol string) (*table.Series, error)
	Splits(ctx context.Context, symbol string) (*table.Series, error)

	// Actions returns dividends and splits side by side.
	Actions(ctx context.Context, symbol string) (*table.Frame, error)

	// Calendar returns upcoming earnings and dividend events.
	Calendar(ctx context.Context, symbol string) (map[string]any, error)

	// News returns recent headlines for symbol.
	News(ctx context.Context, symbol string) (*table.Frame, error)
}

// --- History parameters ---

// Defaults applied when a request leaves a parameter out.
const (
	DefaultPeriod        = "1mo"
	DefaultInterval      = "1d"
	DefaultEarningsLimit = 10
)

// ValidPeriods lists the lookback periods the chart endpoint accepts.
var ValidPeriods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ValidIntervals lists the bar sizes the chart endpoint accepts.
var ValidIntervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

// HistoryParams selects the bars returned by History. When Start is set the
// Period is ignored and the range runs from Start to End (End defaults to now).
// When only End is set the range is the Period ending at End.
type HistoryParams struct {
	Period   string
	Interval string
	Start    time.Time
	End      time.Time
}

// NewHistoryParams builds HistoryParams from raw request values, applying
// defaults and parsing dates. Empty strings mean "not given".
func NewHistoryParams(period, interval, start, end string) (HistoryParams, error) {
	p := HistoryParams{Period: period, Interval: interval}
	if p.Period == "" {
		p.Period = DefaultPeriod
	}
	if p.Interval == "" {
		p.Interval = DefaultInterval
	}

	var err error
	if start != "" {
		if p.Start, err = ParseDate(start); err != nil {
			return p, &ErrInvalidParam{Param: "start", Value: start, Reason: err.Error()}
		}
	}
	if end != "" {
		if p.End, err = ParseDate(end); err != nil {
			return p, &ErrInvalidParam{Param: "end", Value: end, Reason: err.Error()}
		}
	}
	return p, p.Validate()
}

// Validate checks the period, interval and date range.
func (p HistoryParams) Validate() error {
	if p.Start.IsZero() && !slices.Contains(ValidPeriods, p.Period) {
		return &ErrInvalidParam{
			Param:  "period",
			Value:  p.Period,
			Reason: "valid periods: " + strings.Join(ValidPeriods, ", "),
		}
	}
	if !slices.Contains(ValidIntervals, p.Interval) {
		return &ErrInvalidParam{
			Param:  "interval",
			Value:  p.Interval,
			Reason: "valid intervals: " + strings.Join(ValidIntervals, ", "),
		}
	}
	if !p.Start.IsZero() && !p.End.IsZero() && !p.End.After(p.Start) {
		return &ErrInvalidParam{Param: "end", Value: p.End.Format(time.DateOnly), Reason: "end must be after start"}
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q", s)
	}
	return t, nil
}

// --- Errors ---

// ErrSymbolNotFound is returned when the upstream has no such symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// ErrInvalidParam is returned when a request parameter is rejected.
type ErrInvalidParam struct {
	Param  string
	Value  string
	Reason string
}

func (e *ErrInvalidParam) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// ErrUpstream carries an error object reported inside an upstream response.
type ErrUpstream struct {
	Provider    string
	Code        string
	Description string
}

func (e *ErrUpstream) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Description)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Code, e.Description)
}
