package service

import (
	"context"
	"errors"
	"time"

	"EquityLens/internal/domain/models"
)

// ErrSymbolNotFound reports a ticker the market-data provider does not know.
var ErrSymbolNotFound = errors.New("symbol not found")

// MarketData fetches quote/fundamentals and price history from the provider.
type MarketData interface {
	Quote(ctx context.Context, symbol string) (*models.RawQuote, error)
	History(ctx context.Context, symbol, lookback string) (models.PriceSeries, error)
}

// NewsSearcher returns up to limit headlines for a ticker.
type NewsSearcher interface {
	Search(ctx context.Context, symbol string, limit int) ([]models.Headline, error)
}

// SentimentClassifier labels a text POSITIVE or NEGATIVE. Implementations
// call an external inference service; tests substitute deterministic stubs.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Metrics records domain-level observability counters.
type Metrics interface {
	RecordAnalysis(verdict string)
	RecordProviderError(source string)
	RecordFetchDuration(source string, d time.Duration)
	RecordHeadlineLabel(label string)
}
