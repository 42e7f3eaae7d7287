package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seenimoa/yfapi/internal/provider"
	"github.com/seenimoa/yfapi/internal/table"
	"github.com/seenimoa/yfapi/pkg/utils"
)

// categories lists the data categories fetch understands, matching the
// /ticker/{symbol}/... routes of the API server.
var categories = []string{
	"info", "fast-info", "history", "recommendations", "income-statement",
	"balance-sheet", "cash-flow", "sustainability", "analyst-targets",
	"earnings-dates", "dividends", "splits", "actions", "calendar", "news",
}

// fetchOptions carries the fetch command flags.
type fetchOptions struct {
	Output   string
	Period   string
	Interval string
	Start    string
	End      string
	Limit    int
}

var fetchOpts fetchOptions

var fetchCmd = &cobra.Command{
	Use:   "fetch <category> <symbol>",
	Short: "Fetch one data category for a ticker and print it",
	Long: `Fetch one data category for a ticker and print the same JSON the API
server would return.

Categories: ` + strings.Join(categories, ", "),
	Example: `  yfapi fetch info AAPL
  yfapi fetch history MSFT --period 6mo --interval 1wk
  yfapi fetch earnings-dates NVDA --limit 4 --output yaml`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(2)(cmd, args); err != nil {
			return err
		}
		if !isCategory(args[0]) {
			return fmt.Errorf("unknown category %q (valid: %s)", args[0], strings.Join(categories, ", "))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := runFetch(cmd.Context(), newProvider(), args[0], args[1], fetchOpts)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), v, fetchOpts.Output)
	},
}

func init() {
	f := fetchCmd.Flags()
	f.StringVarP(&fetchOpts.Output, "output", "o", "json", "output format (json, yaml)")
	f.StringVar(&fetchOpts.Period, "period", "", "history lookback period (default 1mo)")
	f.StringVar(&fetchOpts.Interval, "interval", "", "history bar interval (default 1d)")
	f.StringVar(&fetchOpts.Start, "start", "", "history start date, YYYY-MM-DD")
	f.StringVar(&fetchOpts.End, "end", "", "history end date, YYYY-MM-DD")
	f.IntVar(&fetchOpts.Limit, "limit", provider.DefaultEarningsLimit, "earnings dates to return")
}

// runFetch performs the provider call for category and returns the value
// ready for encoding.
func runFetch(ctx context.Context, p provider.Provider, category, symbol string, opts fetchOptions) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol must not be empty")
	}

	switch category {
	case "info":
		info, err := p.Info(ctx, symbol)
		if err != nil {
			return nil, err
		}
		return map[string]any{"info": table.CleanValue(info)}, nil
	case "fast-info":
		return p.FastInfo(ctx, symbol)
	case "history":
		params, err := provider.NewHistoryParams(opts.Period, opts.Interval, opts.Start, opts.End)
		if err != nil {
			return nil, err
		}
		return records(p.History(ctx, symbol, params))
	case "recommendations":
		return records(p.Recommendations(ctx, symbol))
	case "income-statement":
		return records(p.IncomeStatement(ctx, symbol))
	case "balance-sheet":
		return records(p.BalanceSheet(ctx, symbol))
	case "cash-flow":
		return records(p.CashFlow(ctx, symbol))
	case "sustainability":
		return records(p.Sustainability(ctx, symbol))
	case "analyst-targets":
		return p.AnalystPriceTargets(ctx, symbol)
	case "earnings-dates":
		if opts.Limit < 1 {
			return nil, fmt.Errorf("limit: must be a positive integer, got %d", opts.Limit)
		}
		frame, err := p.EarningsDates(ctx, symbol, opts.Limit)
		if err != nil {
			return nil, err
		}
		return table.Normalize(frame.Head(opts.Limit)), nil
	case "dividends":
		return records(p.Dividends(ctx, symbol))
	case "splits":
		return records(p.Splits(ctx, symbol))
	case "actions":
		return records(p.Actions(ctx, symbol))
	case "calendar":
		cal, err := p.Calendar(ctx, symbol)
		if err != nil {
			return nil, err
		}
		return table.CleanValue(cal), nil
	case "news":
		return records(p.News(ctx, symbol))
	}
	return nil, fmt.Errorf("unknown category %q (valid: %s)", category, strings.Join(categories, ", "))
}

// records normalises a tabular provider result.
func records[T table.Tabular](t T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return table.Normalize(t), nil
}

// render writes v as indented JSON or YAML. YAML goes through the JSON
// encoding so record key order and null handling match the API output.
func render(w io.Writer, v any, format string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "json":
		_, err := w.Write(buf.Bytes())
		return err
	case "yaml", "yml":
		var node yaml.Node
		if err := yaml.Unmarshal(buf.Bytes(), &node); err != nil {
			return fmt.Errorf("converting result to yaml: %w", err)
		}
		clearStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(&node)
	}
	return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(outputFormats, ", "))
}

var outputFormats = []string{"json", "yaml"}

// clearStyle drops the flow and quoting styles inherited from JSON so the
// YAML comes out in block form. Strings that would read back as another type
// are still quoted by the encoder.
func clearStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		clearStyle(c)
	}
}

func isCategory(s string) bool { return slices.Contains(categories, s) }
