package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/domain/models"
	dsvc "EquityLens/internal/domain/service"
	xlogger "EquityLens/pkg/logger"
)

type stubMarket struct {
	raw      *models.RawQuote
	series   models.PriceSeries
	quoteErr error
	histErr  error
}

func (s *stubMarket) Quote(ctx context.Context, symbol string) (*models.RawQuote, error) {
	if s.quoteErr != nil {
		return nil, s.quoteErr
	}
	return s.raw, nil
}

func (s *stubMarket) History(ctx context.Context, symbol, lookback string) (models.PriceSeries, error) {
	if s.histErr != nil {
		return nil, s.histErr
	}
	return s.series, nil
}

type stubNews struct {
	called    bool
	headlines []models.Headline
	err       error
}

func (s *stubNews) Search(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	s.called = true
	return s.headlines, s.err
}

type stubClassifier struct {
	labels map[string]string // title -> label; missing entries fail
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (string, error) {
	if label, ok := s.labels[text]; ok {
		return label, nil
	}
	return "", errors.New("model unavailable")
}

type nopMetrics struct{}

func (nopMetrics) RecordAnalysis(string)                     {}
func (nopMetrics) RecordProviderError(string)                {}
func (nopMetrics) RecordFetchDuration(string, time.Duration) {}
func (nopMetrics) RecordHeadlineLabel(string)                {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func testAnalyzer(t *testing.T, market *stubMarket, news *stubNews, cls *stubClassifier, opts Options) *Analyzer {
	t.Helper()
	return NewAnalyzer(market, news, cls, nopMetrics{}, testLogger(t), opts)
}

func marketWithData() *stubMarket {
	price := 100.0
	pe := 10.0
	eps := 2.0
	return &stubMarket{
		raw: &models.RawQuote{
			Symbol:       "ACME",
			CurrentPrice: &price,
			TrailingPE:   &pe,
			TrailingEps:  &eps,
		},
		series: sampleSeries(60),
	}
}

func TestAnalyzeNoAPIKeySkipsNews(t *testing.T) {
	news := &stubNews{headlines: []models.Headline{{Title: "should not be fetched"}}}
	a := testAnalyzer(t, marketWithData(), news, &stubClassifier{}, Options{NewsAPIKey: ""})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err)

	assert.False(t, news.called, "news searcher must not be invoked without an API key")
	assert.Equal(t, models.SentimentUnknown, report.NewsSentiment)
	assert.Equal(t, "No API Key", report.NewsComment)
	assert.Empty(t, report.Headlines)
}

func TestAnalyzeNewsFetchFailureDegrades(t *testing.T) {
	news := &stubNews{err: errors.New("connection refused")}
	a := testAnalyzer(t, marketWithData(), news, &stubClassifier{}, Options{NewsAPIKey: "k"})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err, "news failure must not fail the request")

	assert.Equal(t, models.SentimentUnknown, report.NewsSentiment)
	assert.Equal(t, "Error fetching news", report.NewsComment)
}

func TestAnalyzeClassifierFailuresAreSwallowed(t *testing.T) {
	news := &stubNews{headlines: []models.Headline{
		{Title: "good quarter"},
		{Title: "flaky headline"}, // classifier fails on this one
		{Title: "strong outlook"},
	}}
	cls := &stubClassifier{labels: map[string]string{
		"good quarter":   "POSITIVE",
		"strong outlook": "POSITIVE",
	}}
	a := testAnalyzer(t, marketWithData(), news, cls, Options{NewsAPIKey: "k"})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentPositive, report.NewsSentiment)
	assert.Len(t, report.Headlines, 3, "unclassifiable headline still listed")
	assert.Equal(t, models.VerdictBuy, report.Recommendation)
}

func TestAnalyzeAllClassificationsFail(t *testing.T) {
	news := &stubNews{headlines: []models.Headline{{Title: "a"}, {Title: "b"}}}
	a := testAnalyzer(t, marketWithData(), news, &stubClassifier{}, Options{NewsAPIKey: "k"})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentUnknown, report.NewsSentiment)
}

func TestAnalyzeNegativeTape(t *testing.T) {
	news := &stubNews{headlines: []models.Headline{{Title: "miss"}, {Title: "probe"}}}
	cls := &stubClassifier{labels: map[string]string{
		"miss":  "NEGATIVE",
		"probe": "NEGATIVE",
	}}
	a := testAnalyzer(t, marketWithData(), news, cls, Options{NewsAPIKey: "k"})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err)

	assert.Equal(t, models.SentimentNegative, report.NewsSentiment)
	// fundamentals say buy, the tape demotes to hold
	assert.Equal(t, models.VerdictHold, report.Recommendation)
}

func TestAnalyzeQuoteErrorPropagates(t *testing.T) {
	market := marketWithData()
	market.quoteErr = dsvc.ErrSymbolNotFound
	a := testAnalyzer(t, market, &stubNews{}, &stubClassifier{}, Options{})

	_, err := a.Analyze(context.Background(), "NOPE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dsvc.ErrSymbolNotFound))
}

func TestAnalyzeHistoryErrorPropagates(t *testing.T) {
	market := marketWithData()
	market.histErr = fmt.Errorf("upstream timeout")
	a := testAnalyzer(t, market, &stubNews{}, &stubClassifier{}, Options{})

	_, err := a.Analyze(context.Background(), "ACME")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch history")
}

func TestAnalyzeEmptyHistoryIsNotAnError(t *testing.T) {
	market := marketWithData()
	market.series = models.PriceSeries{}
	a := testAnalyzer(t, market, &stubNews{}, &stubClassifier{}, Options{})

	report, err := a.Analyze(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, "N/A", report.SupportLevel)
	assert.Equal(t, "N/A", report.ResistanceLevel)
}
