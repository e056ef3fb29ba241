package usecase

import "EquityLens/internal/domain/models"

// Recommend maps (P/E, EPS, news sentiment) to a verdict. The function is
// total: every input combination lands on exactly one outcome, with Sell as
// the catch-all. Unknown sentiment (news enrichment disabled or degraded)
// leaves the core P/E+EPS rule in charge.
func Recommend(pe, eps float64, sentiment models.Sentiment) models.Verdict {
	cheapAndProfitable := pe < 15 && eps > 0
	fairValue := pe >= 15 && pe <= 25

	switch {
	case cheapAndProfitable && (sentiment == models.SentimentPositive || sentiment == models.SentimentUnknown):
		return models.VerdictBuy
	case cheapAndProfitable:
		// Fundamentals say buy, the news tape disagrees.
		return models.VerdictHold
	case fairValue && sentiment != models.SentimentNegative:
		return models.VerdictHold
	default:
		return models.VerdictSell
	}
}
