package yfinance

import (
	"context"
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/models"
)

// Recommendations returns the recommendation trend, one row per period
// ("0m", "-1m", ...) with positional labels.
func (p *Provider) Recommendations(ctx context.Context, symbol string) (*table.Frame, error) {
	modules, err := p.quoteSummary(ctx, symbol, "recommendationTrend")
	if err != nil {
		return nil, err
	}

	frame := table.NewFrame("period", "strongBuy", "buy", "hold", "sell", "strongSell")
	var trend yfRecommendationTrend
	if _, err := decodeModule(modules, "recommendationTrend", &trend); err != nil {
		return nil, fmt.Errorf("yfinance recommendations %s: %w", symbol, err)
	}
	for _, t := range trend.Trend {
		frame.AppendRow(t.Period, cell(t.StrongBuy), cell(t.Buy), cell(t.Hold), cell(t.Sell), cell(t.StrongSell))
	}
	return frame, nil
}

// Sustainability returns the ESG scores as a single "esgScores" column, one
// row per metric in upstream order. Symbols without ESG coverage yield an
// empty frame.
func (p *Provider) Sustainability(ctx context.Context, symbol string) (*table.Frame, error) {
	modules, err := p.quoteSummary(ctx, symbol, "esgScores")
	if err != nil {
		return nil, err
	}

	frame := table.NewFrame("esgScores")
	scores := orderedmap.New[string, any]()
	ok, err := decodeModule(modules, "esgScores", scores)
	if err != nil {
		return nil, fmt.Errorf("yfinance sustainability %s: %w", symbol, err)
	}
	if !ok {
		return frame, nil
	}
	for pair := scores.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "maxAge" {
			continue
		}
		frame.Append(pair.Key, unwrap(pair.Value))
	}
	return frame, nil
}

// AnalystPriceTargets returns the analyst target range next to the current
// price. Fields the upstream leaves out are nil.
func (p *Provider) AnalystPriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error) {
	modules, err := p.quoteSummary(ctx, symbol, "financialData")
	if err != nil {
		return nil, err
	}

	var fd yfFinancialData
	if _, err := decodeModule(modules, "financialData", &fd); err != nil {
		return nil, fmt.Errorf("yfinance price targets %s: %w", symbol, err)
	}
	return &models.PriceTargets{
		Current: rawFloat(fd.CurrentPrice),
		High:    rawFloat(fd.TargetHighPrice),
		Low:     rawFloat(fd.TargetLowPrice),
		Mean:    rawFloat(fd.TargetMeanPrice),
		Median:  rawFloat(fd.TargetMedianPrice),
	}, nil
}

// Calendar returns the next dividend and earnings events. Dates are
// YYYY-MM-DD; keys the upstream has no value for are omitted.
func (p *Provider) Calendar(ctx context.Context, symbol string) (map[string]any, error) {
	modules, err := p.quoteSummary(ctx, symbol, "calendarEvents")
	if err != nil {
		return nil, err
	}

	var ev yfCalendarEvents
	if _, err := decodeModule(modules, "calendarEvents", &ev); err != nil {
		return nil, fmt.Errorf("yfinance calendar %s: %w", symbol, err)
	}

	cal := map[string]any{}
	if d, ok := unixDate(rawFloat(ev.DividendDate)); ok {
		cal["Dividend Date"] = d
	}
	if d, ok := unixDate(rawFloat(ev.ExDividendDate)); ok {
		cal["Ex-Dividend Date"] = d
	}

	var earnings []any
	for _, raw := range ev.Earnings.EarningsDate {
		if d, ok := unixDate(rawFloat(raw)); ok {
			earnings = append(earnings, d)
		}
	}
	if len(earnings) > 0 {
		cal["Earnings Date"] = earnings
	}

	for key, raw := range map[string][]byte{
		"Earnings High":    ev.Earnings.EarningsHigh,
		"Earnings Low":     ev.Earnings.EarningsLow,
		"Earnings Average": ev.Earnings.EarningsAverage,
		"Revenue High":     ev.Earnings.RevenueHigh,
		"Revenue Low":      ev.Earnings.RevenueLow,
		"Revenue Average":  ev.Earnings.RevenueAverage,
	} {
		if v := rawFloat(raw); v != nil {
			cal[key] = *v
		}
	}
	return cal, nil
}

func unixDate(sec *float64) (string, bool) {
	if sec == nil {
		return "", false
	}
	return time.Unix(int64(*sec), 0).UTC().Format(time.DateOnly), true
}
