package yfinance

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/yfapi/internal/provider"
	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/models"
	"github.com/seenimoa/yfapi/pkg/utils"
)

// History frame columns, in output order.
var historyColumns = []string{"Open", "High", "Low", "Close", "Volume", "Dividends", "Stock Splits"}

// infoModules are merged, in this order, into the Info mapping.
var infoModules = []string{"financialData", "quoteType", "defaultKeyStatistics", "assetProfile", "summaryDetail"}

// --- Info ---

// Info returns the quoteSummary modules flattened into one mapping. Null and
// empty values are left out; a key seen in a later module wins.
func (p *Provider) Info(ctx context.Context, symbol string) (map[string]any, error) {
	modules, err := p.quoteSummary(ctx, symbol, infoModules...)
	if err != nil {
		return nil, err
	}

	info := map[string]any{}
	for _, name := range infoModules {
		var m map[string]any
		ok, err := decodeModule(modules, name, &m)
		if err != nil {
			return nil, fmt.Errorf("yfinance info %s: %w", symbol, err)
		}
		if !ok {
			continue
		}
		for k, v := range m {
			if k == "maxAge" {
				continue
			}
			v = unwrap(v)
			if isEmpty(v) {
				continue
			}
			info[k] = v
		}
	}
	if _, ok := info["symbol"]; !ok {
		info["symbol"] = symbol
	}
	return info, nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	return false
}

// --- Chart ---

// bars is a decoded chart result with every column aligned to Times.
type bars struct {
	meta   yfChartMeta
	loc    *time.Location
	times  []time.Time
	open   []*float64
	high   []*float64
	low    []*float64
	close  []*float64
	adj    []*float64
	volume []*int64
	events *yfChartEvents
}

func (b *bars) len() int { return len(b.times) }

// chart fetches the v8 chart for symbol. An unknown symbol or a range with
// no trading yields nil bars and no error.
func (p *Provider) chart(ctx context.Context, symbol string, q url.Values) (*bars, error) {
	q.Set("events", "div,splits")
	q.Set("includePrePost", "false")

	var resp yfChartResponse
	err := p.fetchJSON(ctx, p.query2, "/v8/finance/chart/"+url.PathEscape(symbol), q, false, &resp)
	if upErr := upstreamError(resp.Chart.Error); upErr != nil {
		if errors.Is(upErr, provider.ErrSymbolNotFound) {
			p.log.Debug().Str("symbol", symbol).Msg("chart: no data")
			return nil, nil
		}
		return nil, fmt.Errorf("yfinance chart %s: %w", symbol, upErr)
	}
	if err != nil {
		return nil, fmt.Errorf("yfinance chart %s: %w", symbol, err)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}
	return decodeBars(resp.Chart.Result[0], intraday(q.Get("interval"))), nil
}

func decodeBars(r yfChartResult, intraday bool) *bars {
	b := &bars{
		meta:   r.Meta,
		loc:    utils.LoadLocation(r.Meta.ExchangeTimezoneName),
		events: r.Events,
	}
	n := len(r.Timestamp)
	b.times = make([]time.Time, n)
	for i, ts := range r.Timestamp {
		t := utils.UnixIn(ts, b.loc)
		if !intraday {
			t = utils.StartOfDay(t)
		}
		b.times[i] = t
	}

	var q yfOHLCV
	if len(r.Indicators.Quote) > 0 {
		q = r.Indicators.Quote[0]
	}
	b.open = alignFloats(q.Open, n)
	b.high = alignFloats(q.High, n)
	b.low = alignFloats(q.Low, n)
	b.close = alignFloats(q.Close, n)
	b.volume = make([]*int64, n)
	copy(b.volume, q.Volume)
	if len(r.Indicators.AdjClose) > 0 {
		b.adj = alignFloats(r.Indicators.AdjClose[0].AdjClose, n)
	}
	return b
}

func alignFloats(src []*float64, n int) []*float64 {
	out := make([]*float64, n)
	copy(out, src)
	return out
}

func intraday(interval string) bool {
	switch interval {
	case "1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h":
		return true
	}
	return false
}

// --- History ---

// History returns adjusted OHLCV bars with dividend and split columns.
// Events land on the last bar at or before the event time; other bars carry 0.
func (p *Provider) History(ctx context.Context, symbol string, params provider.HistoryParams) (*table.Frame, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("interval", params.Interval)
	switch {
	case !params.Start.IsZero():
		end := params.End
		if end.IsZero() {
			end = p.now()
		}
		q.Set("period1", strconv.FormatInt(params.Start.Unix(), 10))
		q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	case !params.End.IsZero():
		// The chart range always ends now, so an end date needs explicit bounds.
		q.Set("period1", strconv.FormatInt(periodStart(params.End, params.Period).Unix(), 10))
		q.Set("period2", strconv.FormatInt(params.End.Unix(), 10))
	default:
		q.Set("range", params.Period)
	}

	b, err := p.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	frame := table.NewFrame(historyColumns...)
	if b == nil || b.len() == 0 {
		return frame, nil
	}

	divs := make([]float64, b.len())
	splits := make([]float64, b.len())
	if b.events != nil {
		for _, d := range b.events.Dividends {
			if i := b.barAt(d.Date); i >= 0 {
				divs[i] += d.Amount
			}
		}
		for _, s := range b.events.Splits {
			if i := b.barAt(s.Date); i >= 0 && s.Denominator != 0 {
				splits[i] = s.Numerator / s.Denominator
			}
		}
	}

	for i, t := range b.times {
		open, high, low, cls := b.open[i], b.high[i], b.low[i], b.close[i]
		if b.adj != nil && b.adj[i] != nil && cls != nil && *cls != 0 {
			ratio := *b.adj[i] / *cls
			open, high, low = scale(open, ratio), scale(high, ratio), scale(low, ratio)
			cls = b.adj[i]
		}
		frame.Append(t, cell(open), cell(high), cell(low), cell(cls), volumeCell(b.volume[i]), divs[i], splits[i])
	}
	return frame, nil
}

// maxStart is the earliest period1 used for a "max" lookback (1900-01-01).
const maxStart = -2208994789

// periodStart returns the start of the lookback period ending at end.
func periodStart(end time.Time, period string) time.Time {
	switch period {
	case "1d":
		return end.AddDate(0, 0, -1)
	case "5d":
		return end.AddDate(0, 0, -5)
	case "1mo":
		return end.AddDate(0, -1, 0)
	case "3mo":
		return end.AddDate(0, -3, 0)
	case "6mo":
		return end.AddDate(0, -6, 0)
	case "1y":
		return end.AddDate(-1, 0, 0)
	case "2y":
		return end.AddDate(-2, 0, 0)
	case "5y":
		return end.AddDate(-5, 0, 0)
	case "10y":
		return end.AddDate(-10, 0, 0)
	case "ytd":
		return time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	}
	return time.Unix(maxStart, 0)
}

// barAt returns the index of the last bar starting at or before ts, or -1.
func (b *bars) barAt(ts int64) int {
	t := time.Unix(ts, 0)
	i := sort.Search(len(b.times), func(i int) bool { return b.times[i].After(t) })
	return i - 1
}

func scale(v *float64, ratio float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v * ratio
	return &s
}

func cell(v *float64) any {
	if v == nil {
		return table.NA
	}
	return *v
}

func volumeCell(v *int64) any {
	if v == nil {
		return table.NA
	}
	return *v
}

// --- Corporate actions ---

func (p *Provider) maxChart(ctx context.Context, symbol string) (*bars, error) {
	q := url.Values{}
	q.Set("range", "max")
	q.Set("interval", "1d")
	return p.chart(ctx, symbol, q)
}

type action struct {
	date  time.Time
	value float64
}

func dividendEvents(b *bars) []action {
	if b == nil || b.events == nil {
		return nil
	}
	out := make([]action, 0, len(b.events.Dividends))
	for _, d := range b.events.Dividends {
		out = append(out, action{date: utils.StartOfDay(utils.UnixIn(d.Date, b.loc)), value: d.Amount})
	}
	sortActions(out)
	return out
}

func splitEvents(b *bars) []action {
	if b == nil || b.events == nil {
		return nil
	}
	out := make([]action, 0, len(b.events.Splits))
	for _, s := range b.events.Splits {
		if s.Denominator == 0 {
			continue
		}
		out = append(out, action{date: utils.StartOfDay(utils.UnixIn(s.Date, b.loc)), value: s.Numerator / s.Denominator})
	}
	sortActions(out)
	return out
}

func sortActions(a []action) {
	sort.Slice(a, func(i, j int) bool { return a[i].date.Before(a[j].date) })
}

// Dividends returns every cash dividend on record, oldest first.
func (p *Provider) Dividends(ctx context.Context, symbol string) (*table.Series, error) {
	b, err := p.maxChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	s := table.NewSeries("Dividends")
	for _, a := range dividendEvents(b) {
		s.Append(a.date, a.value)
	}
	return s, nil
}

// Splits returns every stock split as a new/old share ratio, oldest first.
func (p *Provider) Splits(ctx context.Context, symbol string) (*table.Series, error) {
	b, err := p.maxChart(ctx, symbol)
	if err != nil {
		return nil, err
	}
	s := table.NewSeries("Stock Splits")
	for _, a := range splitEvents(b) {
		s.Append(a.date, a.value)
	}
	return s, nil
}

// Actions returns dividends and splits on a shared date index.
func (p *Provider) Actions(ctx context.Context, symbol string) (*table.Frame, error) {
	b, err := p.maxChart(ctx, symbol)
	if err != nil {
		return nil, err
	}

	type row struct{ div, split float64 }
	byDate := map[time.Time]*row{}
	var dates []time.Time
	get := func(t time.Time) *row {
		if r, ok := byDate[t]; ok {
			return r
		}
		r := &row{}
		byDate[t] = r
		dates = append(dates, t)
		return r
	}
	for _, a := range dividendEvents(b) {
		get(a.date).div += a.value
	}
	for _, a := range splitEvents(b) {
		get(a.date).split = a.value
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	frame := table.NewFrame("Dividends", "Stock Splits")
	for _, d := range dates {
		r := byDate[d]
		frame.Append(d, r.div, r.split)
	}
	return frame, nil
}

// --- FastInfo ---

// FastInfo derives a quote snapshot from a year of daily bars. The share
// count is fetched alongside; when it is unavailable Shares and MarketCap
// stay nil rather than failing the call.
func (p *Provider) FastInfo(ctx context.Context, symbol string) (*models.FastInfo, error) {
	var (
		b      *bars
		shares *float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := url.Values{}
		q.Set("range", "1y")
		q.Set("interval", "1d")
		var err error
		b, err = p.chart(gctx, symbol, q)
		return err
	})
	g.Go(func() error {
		modules, err := p.quoteSummary(gctx, symbol, "defaultKeyStatistics")
		if err != nil {
			p.log.Debug().Err(err).Str("symbol", symbol).Msg("fast info: share count unavailable")
			return nil
		}
		var stats yfDefaultKeyStatistics
		if _, err := decodeModule(modules, "defaultKeyStatistics", &stats); err == nil {
			shares = rawFloat(stats.SharesOutstanding)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if b == nil || b.len() == 0 {
		return nil, fmt.Errorf("%w: %s", provider.ErrSymbolNotFound, symbol)
	}
	return buildFastInfo(b, shares), nil
}

func buildFastInfo(b *bars, shares *float64) *models.FastInfo {
	fi := &models.FastInfo{
		Currency:  b.meta.Currency,
		Exchange:  b.meta.ExchangeName,
		QuoteType: b.meta.InstrumentType,
		Timezone:  b.meta.ExchangeTimezoneName,
		Shares:    shares,
	}

	closes := present(b.close)
	last := b.len() - 1

	if b.meta.RegularMarketPrice > 0 {
		fi.LastPrice = models.Float(b.meta.RegularMarketPrice)
	} else if len(closes) > 0 {
		fi.LastPrice = models.Float(closes[len(closes)-1])
	}
	if len(closes) >= 2 {
		fi.PreviousClose = models.Float(closes[len(closes)-2])
		fi.RegularMarketPreviousClose = fi.PreviousClose
	}

	fi.Open = b.open[last]
	fi.DayHigh = b.high[last]
	fi.DayLow = b.low[last]
	if v := b.volume[last]; v != nil {
		fi.LastVolume = models.Float(float64(*v))
	}

	fi.FiftyDayAverage = mean(tail(closes, 50))
	fi.TwoHundredDayAverage = mean(tail(closes, 200))

	var vols, vols3m []float64
	cutoff := b.times[last].AddDate(0, -3, 0)
	for i, v := range b.volume {
		if v == nil {
			continue
		}
		vols = append(vols, float64(*v))
		if !b.times[i].Before(cutoff) {
			vols3m = append(vols3m, float64(*v))
		}
	}
	fi.TenDayAverageVolume = mean(tail(vols, 10))
	fi.ThreeMonthAverageVolume = mean(vols3m)

	if highs := present(b.high); len(highs) > 0 {
		fi.YearHigh = models.Float(maxOf(highs))
	}
	if lows := present(b.low); len(lows) > 0 {
		fi.YearLow = models.Float(minOf(lows))
	}
	if len(closes) >= 2 && closes[0] != 0 {
		fi.YearChange = models.Float(closes[len(closes)-1]/closes[0] - 1)
	}
	if shares != nil && fi.LastPrice != nil {
		fi.MarketCap = models.Float(*shares * *fi.LastPrice)
	}
	return fi
}

func present(vs []*float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func tail(vs []float64, n int) []float64 {
	if len(vs) > n {
		return vs[len(vs)-n:]
	}
	return vs
}

func mean(vs []float64) *float64 {
	if len(vs) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return models.Float(sum / float64(len(vs)))
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		m = max(m, v)
	}
	return m
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		m = min(m, v)
	}
	return m
}
