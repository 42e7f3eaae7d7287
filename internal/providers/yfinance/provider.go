// Package yfinance implements provider.Provider on top of Yahoo Finance's
// public endpoints: v8 chart, v10 quoteSummary, fundamentals-timeseries,
// the earnings calendar page and the headline RSS feed.
//
// Yahoo Finance needs no API key, but quoteSummary and timeseries calls must
// carry a session crumb obtained with the consent cookie. The Provider keeps
// that crumb (and the cookie jar) across requests; nothing else is shared.
package yfinance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/seenimoa/yfapi/internal/infra"
	"github.com/seenimoa/yfapi/internal/provider"
)

const providerName = "yfinance"

// Default upstream base URLs.
const (
	DefaultQuery1URL  = "https://query1.finance.yahoo.com"
	DefaultQuery2URL  = "https://query2.finance.yahoo.com"
	DefaultFinanceURL = "https://finance.yahoo.com"
	DefaultCookieURL  = "https://fc.yahoo.com"
	DefaultFeedURL    = "https://feeds.finance.yahoo.com"
)

// Options configures a Provider. Zero values fall back to the defaults.
type Options struct {
	Client     *infra.Client
	Logger     zerolog.Logger
	Query1URL  string
	Query2URL  string
	FinanceURL string
	CookieURL  string
	FeedURL    string
}

// Provider implements provider.Provider for Yahoo Finance.
type Provider struct {
	client *infra.Client
	log    zerolog.Logger

	query1  string
	query2  string
	finance string
	cookie  string
	feed    string

	mu     sync.Mutex
	crumb  string
	crumbs singleflight.Group

	now func() time.Time
}

var _ provider.Provider = (*Provider)(nil)

// New creates a Yahoo Finance provider.
func New(opts Options) *Provider {
	p := &Provider{
		client:  opts.Client,
		log:     opts.Logger.With().Str("provider", providerName).Logger(),
		query1:  orDefault(opts.Query1URL, DefaultQuery1URL),
		query2:  orDefault(opts.Query2URL, DefaultQuery2URL),
		finance: orDefault(opts.FinanceURL, DefaultFinanceURL),
		cookie:  orDefault(opts.CookieURL, DefaultCookieURL),
		feed:    orDefault(opts.FeedURL, DefaultFeedURL),
		now:     time.Now,
	}
	if p.client == nil {
		p.client = infra.NewClient(30*time.Second, "")
	}
	return p
}

// Name returns "yfinance".
func (p *Provider) Name() string { return providerName }

// --- Session ---

// sessionCrumb returns the cached crumb, fetching one when none is held.
// Concurrent callers share a single fetch, which outlives any one caller's
// cancellation; a cancelled caller stops waiting but the fetch completes.
func (p *Provider) sessionCrumb(ctx context.Context) (string, error) {
	p.mu.Lock()
	crumb := p.crumb
	p.mu.Unlock()
	if crumb != "" {
		return crumb, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := p.crumbs.DoChan("crumb", func() (any, error) {
		// fc.yahoo.com answers 404 but sets the consent cookie the crumb needs.
		if err := p.client.Discard(fetchCtx, p.cookie); err != nil {
			p.log.Debug().Err(err).Msg("cookie bootstrap")
		}

		body, _, err := p.client.DoGet(fetchCtx, p.query1+"/v1/test/getcrumb", map[string]string{"Accept": "text/plain"})
		if err != nil {
			return "", fmt.Errorf("yfinance crumb: %w", err)
		}
		defer body.Close()

		data, err := io.ReadAll(io.LimitReader(body, 256))
		if err != nil {
			return "", fmt.Errorf("yfinance crumb: %w", err)
		}
		c := strings.TrimSpace(string(data))
		if c == "" || strings.ContainsAny(c, "<{ ") {
			return "", errors.New("yfinance crumb: upstream returned no crumb")
		}

		p.mu.Lock()
		p.crumb = c
		p.mu.Unlock()
		p.log.Debug().Msg("session crumb refreshed")
		return c, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// dropCrumb forgets the crumb so the next call fetches a fresh one.
func (p *Provider) dropCrumb() {
	p.mu.Lock()
	p.crumb = ""
	p.mu.Unlock()
}

// --- Shared helpers ---

// fetchJSON performs a GET against base+path with query q and decodes the
// response into dest. With crumb set the session crumb is added; a 401
// clears it for the next request.
func (p *Provider) fetchJSON(ctx context.Context, base, path string, q url.Values, crumb bool, dest any) error {
	if q == nil {
		q = url.Values{}
	}
	if crumb {
		c, err := p.sessionCrumb(ctx)
		if err != nil {
			return err
		}
		q.Set("crumb", c)
	}

	u := base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	err := p.client.GetJSON(ctx, u, dest)
	var httpErr *infra.ErrHTTP
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
		p.dropCrumb()
	}
	return err
}

// quoteSummary fetches the named modules for symbol. Modules absent from the
// response are absent from the returned map.
func (p *Provider) quoteSummary(ctx context.Context, symbol string, modules ...string) (map[string]json.RawMessage, error) {
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))
	q.Set("formatted", "false")
	q.Set("corsDomain", "finance.yahoo.com")
	q.Set("symbol", symbol)

	var resp yfQuoteSummaryResponse
	err := p.fetchJSON(ctx, p.query2, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), q, true, &resp)
	if upErr := upstreamError(resp.QuoteSummary.Error); upErr != nil {
		return nil, fmt.Errorf("yfinance quoteSummary %s: %w", symbol, upErr)
	}
	if err != nil {
		return nil, fmt.Errorf("yfinance quoteSummary %s: %w", symbol, err)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", provider.ErrSymbolNotFound, symbol)
	}
	return resp.QuoteSummary.Result[0], nil
}

// upstreamError maps a Yahoo error object to a provider error.
func upstreamError(e *yfError) error {
	if e == nil {
		return nil
	}
	if e.Code == "Not Found" {
		return fmt.Errorf("%w: %s", provider.ErrSymbolNotFound, e.Description)
	}
	return &provider.ErrUpstream{Provider: providerName, Code: e.Code, Description: e.Description}
}

// decodeModule unmarshals module raw into dest. A missing module leaves
// dest untouched and reports false.
func decodeModule(modules map[string]json.RawMessage, name string, dest any) (bool, error) {
	raw, ok := modules[name]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// rawFloat reads a numeric field that may be a bare number or a
// {"raw": n, "fmt": "..."} object. Anything else is nil.
func rawFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var wrapped struct {
		Raw *float64 `json:"raw"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Raw
	}
	return nil
}

// unwrap turns a decoded quoteSummary value into plain data: {"raw": x}
// objects collapse to x, nested maps and lists are walked, and "maxAge"
// bookkeeping fields are dropped.
func unwrap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if raw, ok := x["raw"]; ok {
			return raw
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			if k == "maxAge" {
				continue
			}
			out[k] = unwrap(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = unwrap(e)
		}
		return out
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return strings.TrimRight(v, "/")
}
