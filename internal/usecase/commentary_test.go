package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeHigherBetter(t *testing.T) {
	assert.Equal(t, gradeGood, gradeHigherBetter(5, 5, 1))
	assert.Equal(t, gradeMid, gradeHigherBetter(3, 5, 1))
	assert.Equal(t, gradeBad, gradeHigherBetter(1, 5, 1))
	assert.Equal(t, gradeBad, gradeHigherBetter(-2, 5, 1))
}

func TestGradeLowerBetter(t *testing.T) {
	assert.Equal(t, gradeGood, gradeLowerBetter(10, 15, 25))
	assert.Equal(t, gradeMid, gradeLowerBetter(15, 15, 25))
	assert.Equal(t, gradeMid, gradeLowerBetter(25, 15, 25))
	assert.Equal(t, gradeBad, gradeLowerBetter(30, 15, 25))
}

func TestPEComment(t *testing.T) {
	assert.Equal(t, "Low – undervalued", peComment(10))
	assert.Equal(t, "Moderate – fair value", peComment(20))
	assert.Equal(t, "Moderate – fair value", peComment(25))
	assert.Equal(t, "High – overvalued", peComment(30))
}

func TestMarketCapStringBoundaries(t *testing.T) {
	tests := []struct {
		cap  float64
		want string
	}{
		{1_000_000_000_000, "1.00T"},
		{999_999_999_999, "1000.00B"},
		{2_500_000_000_000, "2.50T"},
		{1_000_000_000, "1.00B"},
		{350_000_000, "350.00M"},
		{0, "N/A"},
		{-1, "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, marketCapString(tt.cap), "cap=%v", tt.cap)
	}
}

func TestMarketCapComment(t *testing.T) {
	assert.Equal(t, "Large cap", marketCapComment(250e9))
	assert.Equal(t, "Mid cap", marketCapComment(50e9))
	assert.Equal(t, "Small cap", marketCapComment(5e9))
	assert.Equal(t, "Small cap", marketCapComment(0))
}

func TestTargetCommentPhrasing(t *testing.T) {
	assert.Equal(t, "Analysts expect 12.5% upside.", targetComment(12.5))
	assert.Equal(t, "8.3% downside potential.", targetComment(-8.3))
	assert.Equal(t, "0.0% downside potential.", targetComment(0))
}

func TestTrendComment(t *testing.T) {
	got := trendComment(1.23, -4.56, 10.0)
	assert.Equal(t, "Weekly: Up 1.2% | Monthly: Down 4.6% | Yearly: Up 10.0%", got)
}

func TestDividendComment(t *testing.T) {
	assert.Equal(t, "No dividend", dividendComment(0, 0, 100))

	got := dividendComment(1.04, 0.49, 100)
	assert.Contains(t, got, "Forward Dividend: $1.04/share")
	assert.Contains(t, got, "$104.00/year on $10,000")
	assert.Contains(t, got, "Dividend Yield: 0.49%")
	assert.Contains(t, got, "$4,900.00/year on $10,000")
}

func TestSummarizeKPIs(t *testing.T) {
	got := summarizeKPIs(12, 6, 3.5, 1.2, 0.4, 20)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 6)

	// everything above: all six light up green
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, string(gradeGood)), "line %q", line)
	}

	// inverted-direction metrics grade red when high
	bad := summarizeKPIs(40, 6, 3.5, 5, 2, 20)
	badLines := strings.Split(bad, "\n")
	assert.True(t, strings.HasPrefix(badLines[0], string(gradeBad)))
	assert.True(t, strings.HasPrefix(badLines[3], string(gradeBad)))
	assert.True(t, strings.HasPrefix(badLines[4], string(gradeBad)))
}

func TestRecommendationReason(t *testing.T) {
	got := recommendationReason(10, 6, 3.5, "No dividend")
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "P/E: Low – undervalued")
	assert.Contains(t, lines[1], "EPS: Strong earnings")
	assert.Contains(t, lines[2], "Div: No dividend")
}
