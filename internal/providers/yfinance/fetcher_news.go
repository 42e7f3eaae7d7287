package yfinance

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/yfapi/internal/table"
)

// News returns the headline feed for symbol, in feed order.
func (p *Provider) News(ctx context.Context, symbol string) (*table.Frame, error) {
	q := url.Values{}
	q.Set("s", symbol)
	q.Set("region", "US")
	q.Set("lang", "en-US")

	body, _, err := p.client.DoGet(ctx, p.feed+"/rss/2.0/headline?"+q.Encode(), map[string]string{
		"Accept": "application/rss+xml, application/xml",
	})
	if err != nil {
		return nil, fmt.Errorf("yfinance news %s: %w", symbol, err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("yfinance news %s: parse feed: %w", symbol, err)
	}

	frame := table.NewFrame("uuid", "title", "link", "published", "summary")
	for _, item := range feed.Items {
		var published any = table.NA
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC()
		}
		frame.AppendRow(item.GUID, item.Title, item.Link, published, item.Description)
	}
	return frame, nil
}
