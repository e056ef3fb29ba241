package usecase

import (
	"math"
	"time"

	"EquityLens/internal/domain/models"
)

// BuildReport merges the normalized snapshot, the derived metrics and the
// news digest into the flat response record. Pure and deterministic: the
// same inputs always produce a byte-identical report.
func BuildReport(snapshot models.QuoteSnapshot, series models.PriceSeries, digest models.NewsDigest) *models.StockReport {
	m := ComputeMetrics(snapshot, series)

	revenueYoY := snapshot.RevenueGrowth * 100
	roe := snapshot.ReturnOnEquity * 100

	report := &models.StockReport{
		Symbol:         snapshot.Symbol,
		Name:           snapshot.Name,
		CurrentPrice:   round2(snapshot.CurrentPrice),
		TargetPrice:    round2(snapshot.TargetPrice),
		PERatio:        round2(snapshot.PERatio),
		EPS:            round2(snapshot.EPS),
		DividendYield:  round2(snapshot.DividendYield),
		MarketCap:      marketCapString(snapshot.MarketCap),
		Recommendation: Recommend(snapshot.PERatio, snapshot.EPS, digest.Sentiment),
		TargetDiff:     round2(m.TargetDiff),

		PEComment:        peComment(snapshot.PERatio),
		TargetComment:    targetComment(m.TargetDiff),
		TrendComment:     trendComment(m.WeeklyPct, m.MonthlyPct, m.YearlyPct),
		EPSComment:       epsComment(snapshot.EPS),
		DividendComment:  dividendComment(snapshot.DividendRate, snapshot.DividendYield, snapshot.CurrentPrice),
		MarketCapComment: marketCapComment(snapshot.MarketCap),
		KPISummary: summarizeKPIs(
			snapshot.PERatio,
			snapshot.EPS,
			snapshot.DividendYield,
			snapshot.PriceToBook,
			snapshot.DebtToEquity,
			roe,
		),
		SupportLevel:    m.Support,
		ResistanceLevel: m.Resistance,
		NextEarnings:    formatDate(snapshot.EarningsTimestamp, "Not announced"),
		NextDividend:    formatDate(snapshot.ExDividendDate, "N/A"),

		RevenueYoY:   round2(revenueYoY),
		FCF:          round2(snapshot.FreeCashflow),
		DebtToEquity: round2(snapshot.DebtToEquity),
		ROE:          round2(roe),
		EVEBITDA:     round2(snapshot.EVToEBITDA),

		RevenueComment:  revenueComment(revenueYoY),
		FCFComment:      fcfComment(snapshot.FreeCashflow),
		DebtComment:     debtComment(snapshot.DebtToEquity),
		ROEComment:      roeComment(roe),
		EVEBITDAComment: evEbitdaComment(snapshot.EVToEBITDA),

		MA50:       round2(m.MA50),
		MA200:      round2(m.MA200),
		Beta:       round2(snapshot.Beta),
		RSI:        round2(m.RSI),
		Volatility: round2(m.Volatility),
		VaR:        round2(m.ValueAtRisk),
		Drawdown:   round2(m.MaxDrawdown),

		NewsSentiment: digest.Sentiment,
		NewsComment:   digest.Comment,
		Headlines:     digest.Headlines,
	}

	report.RecommendationReason = recommendationReason(
		snapshot.PERatio,
		snapshot.EPS,
		snapshot.DividendYield,
		report.DividendComment,
	)
	if report.Headlines == nil {
		report.Headlines = []string{}
	}

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatDate(unix int64, fallback string) string {
	if unix <= 0 {
		return fallback
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}
