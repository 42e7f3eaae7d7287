package yfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/seenimoa/yfapi/internal/table"
)

// fundamentalsStart is the period1 sent to the timeseries endpoint
// (August 1985), early enough to cover every annual report it holds.
const fundamentalsStart = 493590046

// Line items requested per statement, in output row order.
var (
	incomeStatementKeys = []string{
		"TotalRevenue", "OperatingRevenue", "CostOfRevenue", "GrossProfit",
		"OperatingExpense", "ResearchAndDevelopment", "SellingGeneralAndAdministration",
		"OperatingIncome", "InterestIncome", "InterestExpense", "NetInterestIncome",
		"OtherIncomeExpense", "PretaxIncome", "TaxProvision", "NetIncome",
		"NetIncomeCommonStockholders", "DilutedNIAvailtoComStockholders",
		"BasicEPS", "DilutedEPS", "BasicAverageShares", "DilutedAverageShares",
		"TotalExpenses", "EBIT", "EBITDA", "NormalizedEBITDA", "NormalizedIncome",
		"ReconciledDepreciation", "TaxRateForCalcs",
	}
	balanceSheetKeys = []string{
		"TotalAssets", "CurrentAssets", "CashAndCashEquivalents",
		"CashCashEquivalentsAndShortTermInvestments", "OtherShortTermInvestments",
		"Receivables", "AccountsReceivable", "Inventory", "OtherCurrentAssets",
		"TotalNonCurrentAssets", "NetPPE", "GrossPPE", "AccumulatedDepreciation",
		"Goodwill", "GoodwillAndOtherIntangibleAssets", "InvestmentsAndAdvances",
		"TotalLiabilitiesNetMinorityInterest", "CurrentLiabilities", "AccountsPayable",
		"CurrentDebt", "CurrentDeferredRevenue", "TotalNonCurrentLiabilitiesNetMinorityInterest",
		"LongTermDebt", "TotalDebt", "NetDebt", "CapitalLeaseObligations",
		"StockholdersEquity", "CommonStockEquity", "RetainedEarnings",
		"TotalEquityGrossMinorityInterest", "WorkingCapital", "InvestedCapital",
		"TangibleBookValue", "NetTangibleAssets", "TotalCapitalization",
		"OrdinarySharesNumber", "ShareIssued", "TreasurySharesNumber",
	}
	cashFlowKeys = []string{
		"OperatingCashFlow", "NetIncomeFromContinuingOperations",
		"DepreciationAndAmortization", "StockBasedCompensation", "DeferredIncomeTax",
		"ChangeInWorkingCapital", "ChangeInReceivables", "ChangeInInventory",
		"ChangeInPayablesAndAccruedExpense", "InvestingCashFlow", "CapitalExpenditure",
		"NetBusinessPurchaseAndSale", "NetInvestmentPurchaseAndSale",
		"FinancingCashFlow", "IssuanceOfDebt", "RepaymentOfDebt",
		"RepurchaseOfCapitalStock", "CashDividendsPaid", "CommonStockIssuance",
		"EndCashPosition", "BeginningCashPosition", "ChangesInCash", "FreeCashFlow",
		"IncomeTaxPaidSupplementalData", "InterestPaidSupplementalData",
	}
)

// IncomeStatement returns annual income statement line items.
func (p *Provider) IncomeStatement(ctx context.Context, symbol string) (*table.Frame, error) {
	return p.statement(ctx, symbol, "income statement", incomeStatementKeys)
}

// BalanceSheet returns annual balance sheet line items.
func (p *Provider) BalanceSheet(ctx context.Context, symbol string) (*table.Frame, error) {
	return p.statement(ctx, symbol, "balance sheet", balanceSheetKeys)
}

// CashFlow returns annual cash flow line items.
func (p *Provider) CashFlow(ctx context.Context, symbol string) (*table.Frame, error) {
	return p.statement(ctx, symbol, "cash flow", cashFlowKeys)
}

// statement fetches the annual timeseries for keys and lays it out with one
// row per line item and one column per fiscal year end, newest first. Line
// items with no reported values are left out.
func (p *Provider) statement(ctx context.Context, symbol, what string, keys []string) (*table.Frame, error) {
	types := make([]string, len(keys))
	for i, k := range keys {
		types[i] = "annual" + k
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("type", strings.Join(types, ","))
	q.Set("period1", strconv.Itoa(fundamentalsStart))
	q.Set("period2", strconv.FormatInt(p.now().Unix(), 10))

	var resp yfTimeseriesResponse
	path := "/ws/fundamentals-timeseries/v1/finance/timeseries/" + url.PathEscape(symbol)
	err := p.fetchJSON(ctx, p.query2, path, q, true, &resp)
	if upErr := upstreamError(resp.Timeseries.Error); upErr != nil {
		return nil, fmt.Errorf("yfinance %s %s: %w", what, symbol, upErr)
	}
	if err != nil {
		return nil, fmt.Errorf("yfinance %s %s: %w", what, symbol, err)
	}

	values, err := timeseriesValues(resp)
	if err != nil {
		return nil, fmt.Errorf("yfinance %s %s: %w", what, symbol, err)
	}
	return statementFrame(keys, values), nil
}

// timeseriesValues indexes the response by line item (without the "annual"
// prefix) and then by as-of date.
func timeseriesValues(resp yfTimeseriesResponse) (map[string]map[string]float64, error) {
	out := map[string]map[string]float64{}
	for _, result := range resp.Timeseries.Result {
		var meta yfTimeseriesMeta
		if raw, ok := result["meta"]; ok {
			if err := json.Unmarshal(raw, &meta); err != nil {
				return nil, fmt.Errorf("decode meta: %w", err)
			}
		}
		if len(meta.Type) == 0 {
			continue
		}
		typ := meta.Type[0]
		raw, ok := result[typ]
		if !ok {
			continue
		}

		var points []*yfTimeseriesPoint
		if err := json.Unmarshal(raw, &points); err != nil {
			return nil, fmt.Errorf("decode %s: %w", typ, err)
		}
		key := strings.TrimPrefix(typ, "annual")
		for _, pt := range points {
			if pt == nil || pt.ReportedValue.Raw == nil || pt.AsOfDate == "" {
				continue
			}
			if out[key] == nil {
				out[key] = map[string]float64{}
			}
			out[key][pt.AsOfDate] = *pt.ReportedValue.Raw
		}
	}
	return out, nil
}

func statementFrame(keys []string, values map[string]map[string]float64) *table.Frame {
	seen := map[string]bool{}
	var dates []string
	for _, k := range keys {
		for d := range values[k] {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	// ISO dates sort lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	frame := table.NewFrame(dates...)
	for _, k := range keys {
		byDate, ok := values[k]
		if !ok || len(byDate) == 0 {
			continue
		}
		cells := make([]any, len(dates))
		for i, d := range dates {
			if v, ok := byDate[d]; ok {
				cells[i] = v
			} else {
				cells[i] = table.NA
			}
		}
		frame.Append(k, cells...)
	}
	return frame
}
