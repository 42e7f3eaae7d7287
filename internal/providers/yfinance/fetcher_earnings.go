package yfinance

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/seenimoa/yfapi/internal/provider"
	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/utils"
)

// earningsPageSize is the largest page the earnings calendar serves.
const earningsPageSize = 100

const earningsDateLayout = "Jan 2, 2006, 3 PM"

// earningsZones maps the abbreviations shown on the calendar page to zones.
var earningsZones = map[string]string{
	"EDT": "America/New_York",
	"EST": "America/New_York",
	"CDT": "America/Chicago",
	"CST": "America/Chicago",
	"PDT": "America/Los_Angeles",
	"PST": "America/Los_Angeles",
	"BST": "Europe/London",
	"GMT": "Europe/London",
}

// EarningsDates scrapes the earnings calendar for symbol, newest first,
// stopping once limit rows are collected or the calendar runs out.
func (p *Provider) EarningsDates(ctx context.Context, symbol string, limit int) (*table.Frame, error) {
	if limit <= 0 {
		limit = provider.DefaultEarningsLimit
	}

	frame := table.NewFrame("EPS Estimate", "Reported EPS", "Surprise(%)")
	for offset := 0; frame.Len() < limit; {
		size := min(earningsPageSize, limit-frame.Len())
		n, err := p.earningsPage(ctx, symbol, offset, size, frame)
		if err != nil {
			return nil, err
		}
		if n < size {
			break
		}
		// Rows with an unreadable date are counted but not kept.
		offset += n
	}
	return frame.Head(limit), nil
}

// earningsPage appends one calendar page to frame and returns the number
// of table rows the page held, parsed or not.
func (p *Provider) earningsPage(ctx context.Context, symbol string, offset, size int, frame *table.Frame) (int, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("size", strconv.Itoa(size))

	body, _, err := p.client.DoGet(ctx, p.finance+"/calendar/earnings?"+q.Encode(), map[string]string{"Accept": "text/html"})
	if err != nil {
		return 0, fmt.Errorf("yfinance earnings dates %s: %w", symbol, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return 0, fmt.Errorf("yfinance earnings dates %s: parse page: %w", symbol, err)
	}
	return parseEarningsTable(doc, frame), nil
}

// parseEarningsTable reads the first table on the page. Columns are found
// by header text so the page may reorder or add columns.
func parseEarningsTable(doc *goquery.Document, frame *table.Frame) int {
	tbl := doc.Find("table").First()
	if tbl.Length() == 0 {
		return 0
	}

	col := map[string]int{}
	tbl.Find("thead th").Each(func(i int, th *goquery.Selection) {
		col[headerKey(th.Text())] = i
	})
	dateCol, ok := col[headerKey("Earnings Date")]
	if !ok {
		return 0
	}

	n := 0
	tbl.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		n++
		if dateCol >= len(cells) {
			return
		}
		when, ok := parseEarningsDate(cells[dateCol])
		if !ok {
			return
		}

		value := func(name string) any {
			i, ok := col[headerKey(name)]
			if !ok || i >= len(cells) {
				return table.NA
			}
			return earningsNumber(cells[i])
		}
		frame.Append(when, value("EPS Estimate"), value("Reported EPS"), value("Surprise(%)"))
	})
	return n
}

// headerKey ignores spacing so "Surprise (%)" and "Surprise(%)" match.
func headerKey(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// parseEarningsDate parses "Oct 30, 2025, 4 PM EDT". The trailing zone
// abbreviation may be glued to the meridiem ("4 PMEDT").
func parseEarningsDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	loc := time.UTC
	for abbr, zone := range earningsZones {
		if strings.HasSuffix(s, abbr) {
			s = strings.TrimSpace(strings.TrimSuffix(s, abbr))
			loc = utils.LoadLocation(zone)
			break
		}
	}
	if strings.HasSuffix(s, "UTC") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "UTC"))
	}

	t, err := time.ParseInLocation(earningsDateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func earningsNumber(s string) any {
	s = strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "+")
	if s == "" || s == "-" {
		return table.NA
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return table.NA
	}
	return f
}
