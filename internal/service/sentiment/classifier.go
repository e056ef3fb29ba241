package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	dsvc "EquityLens/internal/domain/service"
	xhttp "EquityLens/pkg/http"
)

// HTTPClassifier implements SentimentClassifier against an external
// inference service hosting a pretrained binary classifier.
type HTTPClassifier struct {
	serviceURL string
	client     *xhttp.Client
}

// New creates a classifier client.
func New(serviceURL string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		serviceURL: serviceURL,
		client:     xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

var _ dsvc.SentimentClassifier = (*HTTPClassifier)(nil)

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify labels a single text POSITIVE or NEGATIVE.
func (c *HTTPClassifier) Classify(ctx context.Context, text string) (string, error) {
	if c.serviceURL == "" {
		return "", fmt.Errorf("sentiment service not configured")
	}

	var res classifyResponse
	err := c.client.PostJSON(ctx, c.serviceURL+"/classify", classifyRequest{Text: text}, &res)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}

	label := strings.ToUpper(res.Label)
	if label != "POSITIVE" && label != "NEGATIVE" {
		return "", fmt.Errorf("classify: unexpected label %q", res.Label)
	}
	return label, nil
}
