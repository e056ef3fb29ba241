package news

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"EquityLens/internal/domain/models"
	dsvc "EquityLens/internal/domain/service"
	xhttp "EquityLens/pkg/http"
)

// Client implements NewsSearcher against a NewsAPI-style "everything"
// endpoint. The API key is passed per request; key handling (including the
// no-key skip) lives in the caller.
type Client struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
}

// New creates a news search client.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

var _ dsvc.NewsSearcher = (*Client)(nil)

type everythingResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"articles"`
}

// Search returns up to limit headlines for the symbol, newest first.
func (c *Client) Search(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	if limit <= 0 {
		limit = 5
	}

	var res everythingResponse
	err := c.client.GetJSON(ctx, c.baseURL+"/v2/everything",
		map[string][]string{
			"q":        {symbol},
			"sortBy":   {"publishedAt"},
			"pageSize": {strconv.Itoa(limit)},
			"apiKey":   {c.apiKey},
		},
		nil,
		&res,
	)
	if err != nil {
		return nil, fmt.Errorf("news search %s: %w", symbol, err)
	}
	if res.Status != "ok" {
		return nil, fmt.Errorf("news search %s: api error: %s", symbol, res.Message)
	}

	headlines := make([]models.Headline, 0, len(res.Articles))
	for _, a := range res.Articles {
		if a.Title == "" {
			continue
		}
		headlines = append(headlines, models.Headline{
			Title:       a.Title,
			Description: a.Description,
		})
		if len(headlines) == limit {
			break
		}
	}
	return headlines, nil
}
