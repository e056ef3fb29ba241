package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"EquityLens/internal/domain/models"
	dsvc "EquityLens/internal/domain/service"
	xlogger "EquityLens/pkg/logger"
)

// Options carries per-deployment analyzer settings.
type Options struct {
	Lookback   string // chart range for the history fetch, e.g. "1y"
	NewsAPIKey string // empty disables news enrichment entirely
	NewsLimit  int
}

// Analyzer runs the full per-request pipeline: fetch, normalize, derive,
// grade, recommend, assemble. It holds no per-request state; a single
// instance serves all requests.
type Analyzer struct {
	market     dsvc.MarketData
	news       dsvc.NewsSearcher
	classifier dsvc.SentimentClassifier
	metrics    dsvc.Metrics
	logger     *xlogger.Logger
	opts       Options
}

// NewAnalyzer creates the analyzer with explicit dependencies.
func NewAnalyzer(
	market dsvc.MarketData,
	news dsvc.NewsSearcher,
	classifier dsvc.SentimentClassifier,
	metrics dsvc.Metrics,
	logger *xlogger.Logger,
	opts Options,
) *Analyzer {
	if opts.Lookback == "" {
		opts.Lookback = "1y"
	}
	if opts.NewsLimit <= 0 {
		opts.NewsLimit = 5
	}
	return &Analyzer{
		market:     market,
		news:       news,
		classifier: classifier,
		metrics:    metrics,
		logger:     logger,
		opts:       opts,
	}
}

// Analyze produces the stock report for one ticker. The quote, history and
// news fetches are independent read-only calls and run concurrently. Market
// data errors propagate; news and classifier failures degrade to sentinels.
func (a *Analyzer) Analyze(ctx context.Context, ticker string) (*models.StockReport, error) {
	var (
		wg     sync.WaitGroup
		raw    *models.RawQuote
		series models.PriceSeries
		digest models.NewsDigest

		quoteErr, histErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		start := time.Now()
		raw, quoteErr = a.market.Quote(ctx, ticker)
		a.metrics.RecordFetchDuration("quote", time.Since(start))
	}()

	go func() {
		defer wg.Done()
		start := time.Now()
		series, histErr = a.market.History(ctx, ticker, a.opts.Lookback)
		a.metrics.RecordFetchDuration("history", time.Since(start))
	}()

	go func() {
		defer wg.Done()
		digest = a.enrichNews(ctx, ticker)
	}()

	wg.Wait()

	if quoteErr != nil {
		a.metrics.RecordProviderError("quote")
		return nil, fmt.Errorf("fetch quote: %w", quoteErr)
	}
	if histErr != nil {
		a.metrics.RecordProviderError("history")
		return nil, fmt.Errorf("fetch history: %w", histErr)
	}

	snapshot := raw.Normalize()
	report := BuildReport(snapshot, series, digest)

	a.metrics.RecordAnalysis(string(report.Recommendation))
	a.logger.Info("analysis complete",
		xlogger.String("ticker", snapshot.Symbol),
		xlogger.String("verdict", string(report.Recommendation)),
		xlogger.Int("history_points", len(series)),
		xlogger.String("sentiment", string(digest.Sentiment)),
	)

	return report, nil
}

// enrichNews fetches headlines and classifies each one. It never returns an
// error: a missing API key skips the network entirely and every failure
// degrades to a sentinel digest.
func (a *Analyzer) enrichNews(ctx context.Context, ticker string) models.NewsDigest {
	if a.opts.NewsAPIKey == "" {
		return models.NewsDigest{
			Headlines: []string{},
			Sentiment: models.SentimentUnknown,
			Comment:   "No API Key",
		}
	}

	start := time.Now()
	headlines, err := a.news.Search(ctx, ticker, a.opts.NewsLimit)
	a.metrics.RecordFetchDuration("news", time.Since(start))
	if err != nil {
		a.metrics.RecordProviderError("news")
		a.logger.Warn("news fetch failed", xlogger.String("ticker", ticker), xlogger.Error(err))
		return models.NewsDigest{
			Headlines: []string{},
			Sentiment: models.SentimentUnknown,
			Comment:   "Error fetching news",
		}
	}

	digest := models.NewsDigest{Headlines: make([]string, 0, len(headlines))}
	classified := 0
	for _, h := range headlines {
		digest.Headlines = append(digest.Headlines, h.Title)

		label, cerr := a.classifier.Classify(ctx, h.Title)
		if cerr != nil {
			// Headline excluded from the score, request continues.
			a.logger.Debug("headline classification failed",
				xlogger.String("ticker", ticker), xlogger.Error(cerr))
			continue
		}
		classified++
		a.metrics.RecordHeadlineLabel(label)
		if label == "POSITIVE" {
			digest.Positives++
		} else {
			digest.Negatives++
		}
	}

	switch {
	case classified == 0:
		digest.Sentiment = models.SentimentUnknown
	case digest.Positives > digest.Negatives:
		digest.Sentiment = models.SentimentPositive
	case digest.Negatives > digest.Positives:
		digest.Sentiment = models.SentimentNegative
	default:
		digest.Sentiment = models.SentimentNeutral
	}
	digest.Comment = fmt.Sprintf("%d headlines, %d classified", len(headlines), classified)

	return digest
}
