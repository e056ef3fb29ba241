package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"EquityLens/internal/domain/models"
	dsvc "EquityLens/internal/domain/service"
	xhttp "EquityLens/pkg/http"
)

const quoteModules = "price,summaryDetail,financialData,defaultKeyStatistics,calendarEvents"

// Client implements MarketData against the Yahoo Finance public API.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// New creates a new Yahoo Finance market-data client.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

var _ dsvc.MarketData = (*Client)(nil)

// yfNum is Yahoo's {"raw": 1.23, "fmt": "1.23"} value wrapper. Raw stays nil
// when the field is absent or reported as {}.
type yfNum struct {
	Raw *float64 `json:"raw"`
}

type yfDate struct {
	Raw *int64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				ShortName          *string `json:"shortName"`
				RegularMarketPrice yfNum   `json:"regularMarketPrice"`
			} `json:"price"`
			SummaryDetail struct {
				TrailingPE     yfNum  `json:"trailingPE"`
				DividendRate   yfNum  `json:"dividendRate"`
				DividendYield  yfNum  `json:"dividendYield"`
				MarketCap      yfNum  `json:"marketCap"`
				Beta           yfNum  `json:"beta"`
				ExDividendDate yfDate `json:"exDividendDate"`
			} `json:"summaryDetail"`
			FinancialData struct {
				CurrentPrice    yfNum `json:"currentPrice"`
				TargetMeanPrice yfNum `json:"targetMeanPrice"`
				ReturnOnEquity  yfNum `json:"returnOnEquity"`
				DebtToEquity    yfNum `json:"debtToEquity"`
				RevenueGrowth   yfNum `json:"revenueGrowth"`
				FreeCashflow    yfNum `json:"freeCashflow"`
			} `json:"financialData"`
			DefaultKeyStatistics struct {
				TrailingEps        yfNum `json:"trailingEps"`
				PriceToBook        yfNum `json:"priceToBook"`
				EnterpriseToEbitda yfNum `json:"enterpriseToEbitda"`
			} `json:"defaultKeyStatistics"`
			CalendarEvents struct {
				Earnings struct {
					EarningsDate []yfDate `json:"earningsDate"`
				} `json:"earnings"`
			} `json:"calendarEvents"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// Quote fetches the fundamentals/quote field mapping for a symbol. Missing
// individual fields stay nil; only a wholesale failure returns an error.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.RawQuote, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, url.PathEscape(symbol))

	var qs quoteSummaryResponse
	err := c.client.GetJSON(ctx, u,
		map[string][]string{"modules": {quoteModules}},
		map[string]string{"User-Agent": "Mozilla/5.0"},
		&qs,
	)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, dsvc.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if e := qs.QuoteSummary.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, dsvc.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("yahoo quote %s: api error: %s", symbol, e.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, dsvc.ErrSymbolNotFound
	}

	r := qs.QuoteSummary.Result[0]
	raw := &models.RawQuote{
		Symbol:             symbol,
		ShortName:          r.Price.ShortName,
		CurrentPrice:       r.FinancialData.CurrentPrice.Raw,
		TargetMeanPrice:    r.FinancialData.TargetMeanPrice.Raw,
		TrailingPE:         r.SummaryDetail.TrailingPE.Raw,
		TrailingEps:        r.DefaultKeyStatistics.TrailingEps.Raw,
		DividendRate:       r.SummaryDetail.DividendRate.Raw,
		DividendYield:      r.SummaryDetail.DividendYield.Raw,
		MarketCap:          r.SummaryDetail.MarketCap.Raw,
		PriceToBook:        r.DefaultKeyStatistics.PriceToBook.Raw,
		DebtToEquity:       r.FinancialData.DebtToEquity.Raw,
		ReturnOnEquity:     r.FinancialData.ReturnOnEquity.Raw,
		EnterpriseToEbitda: r.DefaultKeyStatistics.EnterpriseToEbitda.Raw,
		RevenueGrowth:      r.FinancialData.RevenueGrowth.Raw,
		FreeCashflow:       r.FinancialData.FreeCashflow.Raw,
		Beta:               r.SummaryDetail.Beta.Raw,
		ExDividendDate:     r.SummaryDetail.ExDividendDate.Raw,
	}
	// Quote price fills in when financialData is absent (funds, indices).
	if raw.CurrentPrice == nil {
		raw.CurrentPrice = r.Price.RegularMarketPrice.Raw
	}
	if dates := r.CalendarEvents.Earnings.EarningsDate; len(dates) > 0 {
		raw.EarningsTimestamp = dates[0].Raw
	}
	return raw, nil
}

// chartResponse is the v8 chart API payload. Close values arrive as nullable
// numbers; null bars (holidays etc.) are dropped.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History fetches the daily close series for the given lookback range
// ("6mo", "1y", "2y"). The returned series is strictly date-ordered with
// duplicate dates collapsed.
func (c *Client) History(ctx context.Context, symbol, lookback string) (models.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))

	var ch chartResponse
	err := c.client.GetJSON(ctx, u,
		map[string][]string{"interval": {"1d"}, "range": {lookback}},
		map[string]string{"User-Agent": "Mozilla/5.0"},
		&ch,
	)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, dsvc.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if e := ch.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, dsvc.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("yahoo chart %s: api error: %s", symbol, e.Description)
	}
	if len(ch.Chart.Result) == 0 {
		return models.PriceSeries{}, nil
	}

	result := ch.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return models.PriceSeries{}, nil
	}
	closes := result.Indicators.Quote[0].Close

	series := make(models.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series = append(series, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	// Collapse duplicate dates, keeping the later bar.
	deduped := series[:0]
	for _, p := range series {
		if len(deduped) > 0 && deduped[len(deduped)-1].Date.Equal(p.Date) {
			deduped[len(deduped)-1] = p
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped, nil
}
