package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/domain/models"
)

func sampleSnapshot() models.QuoteSnapshot {
	return models.QuoteSnapshot{
		Symbol:            "ACME",
		Name:              "Acme Corp",
		CurrentPrice:      100,
		TargetPrice:       125,
		PERatio:           12.3456,
		EPS:               6.7891,
		DividendRate:      1.04,
		DividendYield:     0.49,
		MarketCap:         250e9,
		PriceToBook:       1.2,
		DebtToEquity:      0.4,
		ReturnOnEquity:    0.231,
		EVToEBITDA:        8.5,
		RevenueGrowth:     0.124,
		FreeCashflow:      1_234_567.891,
		Beta:              1.0567,
		EarningsTimestamp: time.Date(2026, 10, 28, 21, 0, 0, 0, time.UTC).Unix(),
	}
}

func sampleSeries(n int) models.PriceSeries {
	series := make(models.PriceSeries, n)
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	price := 90.0
	for i := range series {
		// deterministic zigzag with upward drift
		if i%3 == 0 {
			price -= 1.5
		} else {
			price += 2.0
		}
		series[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Close: price}
	}
	return series
}

func TestBuildReportFields(t *testing.T) {
	report := BuildReport(sampleSnapshot(), sampleSeries(250), models.NewsDigest{
		Headlines: []string{"Acme beats estimates"},
		Sentiment: models.SentimentPositive,
		Comment:   "1 headlines, 1 classified",
	})

	assert.Equal(t, "ACME", report.Symbol)
	assert.Equal(t, "Acme Corp", report.Name)
	assert.Equal(t, 12.35, report.PERatio) // rounded at the boundary
	assert.Equal(t, 6.79, report.EPS)
	assert.Equal(t, 25.0, report.TargetDiff)
	assert.Equal(t, "250.00B", report.MarketCap)
	assert.Equal(t, "Large cap", report.MarketCapComment)
	assert.Equal(t, "Analysts expect 25.0% upside.", report.TargetComment)
	assert.Equal(t, models.VerdictBuy, report.Recommendation)
	assert.Equal(t, 12.4, report.RevenueYoY)
	assert.Equal(t, 23.1, report.ROE)
	assert.Equal(t, "2026-10-28", report.NextEarnings)
	assert.Equal(t, "N/A", report.NextDividend)
	assert.Equal(t, models.SentimentPositive, report.NewsSentiment)
	assert.NotEmpty(t, report.KPISummary)
	assert.NotEmpty(t, report.TrendComment)
	assert.Greater(t, report.MA50, 0.0)
	assert.Greater(t, report.MA200, 0.0)
	assert.GreaterOrEqual(t, report.RSI, 0.0)
	assert.LessOrEqual(t, report.RSI, 100.0)
	assert.LessOrEqual(t, report.Drawdown, 0.0)
}

func TestBuildReportEmptyHistory(t *testing.T) {
	report := BuildReport(sampleSnapshot(), nil, models.NewsDigest{
		Headlines: []string{},
		Sentiment: models.SentimentUnknown,
		Comment:   "No API Key",
	})

	assert.Equal(t, "N/A", report.SupportLevel)
	assert.Equal(t, "N/A", report.ResistanceLevel)
	assert.Equal(t, 0.0, report.MA50)
	assert.Equal(t, 0.0, report.MA200)
	assert.Equal(t, 0.0, report.RSI)
	assert.Equal(t, 0.0, report.Volatility)
	assert.Equal(t, 0.0, report.VaR)
	assert.Equal(t, 0.0, report.Drawdown)
	assert.Equal(t, "Weekly: Down 0.0% | Monthly: Down 0.0% | Yearly: Down 0.0%", report.TrendComment)
	assert.Equal(t, models.SentimentUnknown, report.NewsSentiment)
	assert.Equal(t, "No API Key", report.NewsComment)
}

func TestBuildReportZeroSnapshot(t *testing.T) {
	// a ticker the provider knows nothing about still renders
	raw := models.RawQuote{Symbol: "xyz"}
	report := BuildReport(raw.Normalize(), nil, models.NewsDigest{Sentiment: models.SentimentUnknown})

	assert.Equal(t, "XYZ", report.Symbol)
	assert.Equal(t, "XYZ", report.Name)
	assert.Equal(t, 0.0, report.TargetDiff)
	assert.Equal(t, "N/A", report.MarketCap)
	assert.Equal(t, "No dividend", report.DividendComment)
	assert.Equal(t, "Not announced", report.NextEarnings)
	assert.Equal(t, "N/A", report.NextDividend)
	// P/E 0 < 15 but EPS 0 fails the profitability gate
	assert.Equal(t, models.VerdictSell, report.Recommendation)
	assert.Equal(t, []string{}, report.Headlines)
}

func TestBuildReportDeterministic(t *testing.T) {
	snapshot := sampleSnapshot()
	series := sampleSeries(250)
	digest := models.NewsDigest{Headlines: []string{"a", "b"}, Sentiment: models.SentimentNeutral}

	first, err := json.Marshal(BuildReport(snapshot, series, digest))
	require.NoError(t, err)
	second, err := json.Marshal(BuildReport(snapshot, series, digest))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
