package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"EquityLens/internal/domain/models"
)

func TestRecommendPinnedCases(t *testing.T) {
	tests := []struct {
		name      string
		pe, eps   float64
		sentiment models.Sentiment
		want      models.Verdict
	}{
		{"cheap profitable positive", 10, 2, models.SentimentPositive, models.VerdictBuy},
		{"cheap profitable no news", 10, 2, models.SentimentUnknown, models.VerdictBuy},
		{"cheap profitable bad news", 10, 2, models.SentimentNegative, models.VerdictHold},
		{"fair value neutral", 20, 2, models.SentimentNeutral, models.VerdictHold},
		{"fair value no news", 20, 2, models.SentimentUnknown, models.VerdictHold},
		{"fair value bad news", 20, 2, models.SentimentNegative, models.VerdictSell},
		{"expensive loss-making", 30, -1, models.SentimentPositive, models.VerdictSell},
		{"expensive loss-making negative", 30, -1, models.SentimentNegative, models.VerdictSell},
		{"cheap but unprofitable", 10, -2, models.SentimentPositive, models.VerdictSell},
		{"boundary pe 15", 15, 2, models.SentimentNeutral, models.VerdictHold},
		{"boundary pe 25", 25, 2, models.SentimentNeutral, models.VerdictHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.pe, tt.eps, tt.sentiment))
		})
	}
}

func TestRecommendTotality(t *testing.T) {
	pes := []float64{-5, 0, 10, 14.99, 15, 20, 25, 25.01, 40}
	epss := []float64{-3, 0, 0.5, 2, 10}
	sentiments := []models.Sentiment{
		models.SentimentPositive,
		models.SentimentNegative,
		models.SentimentNeutral,
		models.SentimentUnknown,
	}

	for _, pe := range pes {
		for _, eps := range epss {
			for _, s := range sentiments {
				got := Recommend(pe, eps, s)
				switch got {
				case models.VerdictBuy, models.VerdictHold, models.VerdictSell:
				default:
					t.Fatalf("Recommend(%v, %v, %v) = %q, not a verdict", pe, eps, s, got)
				}
				// deterministic: same input, same output
				assert.Equal(t, got, Recommend(pe, eps, s))
			}
		}
	}
}
