package models

// Sentiment is the aggregate news sentiment category.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentUnknown  Sentiment = "Unknown"
)

// Headline is one news search result.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewsDigest is the outcome of news enrichment. Failures never carry an
// error out of the enrichment step; they surface as sentinel Comment values
// ("No API Key", "Error fetching news") with Sentiment Unknown.
type NewsDigest struct {
	Headlines []string
	Sentiment Sentiment
	Positives int
	Negatives int
	Comment   string
}
