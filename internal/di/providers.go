package di

import (
	"fmt"

	dsvc "EquityLens/internal/domain/service"
	"EquityLens/internal/handler/api"
	"EquityLens/internal/service/news"
	"EquityLens/internal/service/sentiment"
	"EquityLens/internal/service/yahoo"
	"EquityLens/internal/usecase"
	"EquityLens/pkg/config"
	xhttp "EquityLens/pkg/http"
	xlogger "EquityLens/pkg/logger"
	"EquityLens/pkg/metrics"
	"EquityLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() dsvc.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the Yahoo Finance market-data client.
func ProvideMarketData(cfg *config.Config) dsvc.MarketData {
	return yahoo.New(cfg.Market.BaseURL, cfg.Market.Timeout)
}

// ProvideNewsSearcher creates the news search client. The client is always
// constructed; the analyzer skips it entirely when no API key is set.
func ProvideNewsSearcher(cfg *config.Config) dsvc.NewsSearcher {
	return news.New(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Timeout)
}

// ProvideClassifier creates the sentiment classifier client.
func ProvideClassifier(cfg *config.Config) dsvc.SentimentClassifier {
	return sentiment.New(cfg.Sentiment.ServiceURL, cfg.Sentiment.Timeout)
}

// ProvideAnalyzer creates the analysis pipeline.
func ProvideAnalyzer(
	market dsvc.MarketData,
	searcher dsvc.NewsSearcher,
	classifier dsvc.SentimentClassifier,
	m dsvc.Metrics,
	logger *xlogger.Logger,
	cfg *config.Config,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(market, searcher, classifier, m, logger, usecase.Options{
		Lookback:   cfg.Market.Lookback,
		NewsAPIKey: cfg.News.APIKey,
		NewsLimit:  cfg.News.PageSize,
	})
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) xhttp.Handler {
	return api.NewStockHandler(logger, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *xlogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
