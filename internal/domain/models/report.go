package models

// Verdict is the categorical recommendation.
type Verdict string

const (
	VerdictBuy  Verdict = "Buy"
	VerdictHold Verdict = "Hold"
	VerdictSell Verdict = "Sell"
)

// StockReport is the flat response record for GET /stock/:ticker. Numeric
// fields are rounded to two decimals at assembly time.
type StockReport struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	TargetPrice    float64 `json:"target_price"`
	PERatio        float64 `json:"pe_ratio"`
	EPS            float64 `json:"eps"`
	DividendYield  float64 `json:"dividend_yield"`
	MarketCap      string  `json:"market_cap"`
	Recommendation Verdict `json:"recommendation"`
	TargetDiff     float64 `json:"target_diff"`

	PEComment            string `json:"pe_comment"`
	TargetComment        string `json:"target_comment"`
	RecommendationReason string `json:"recommendation_reason"`
	TrendComment         string `json:"trend_comment"`
	EPSComment           string `json:"eps_comment"`
	DividendComment      string `json:"dividend_comment"`
	MarketCapComment     string `json:"market_cap_comment"`
	KPISummary           string `json:"kpi_summary"`
	SupportLevel         string `json:"support_level"`
	ResistanceLevel      string `json:"resistance_level"`
	NextEarnings         string `json:"next_earnings"`
	NextDividend         string `json:"next_dividend"`

	RevenueYoY   float64 `json:"revenue_yoy"`
	FCF          float64 `json:"fcf"`
	DebtToEquity float64 `json:"debt_to_equity"`
	ROE          float64 `json:"roe"`
	EVEBITDA     float64 `json:"ev_ebitda"`

	RevenueComment  string `json:"revenue_comment"`
	FCFComment      string `json:"fcf_comment"`
	DebtComment     string `json:"debt_comment"`
	ROEComment      string `json:"roe_comment"`
	EVEBITDAComment string `json:"ev_ebitda_comment"`

	MA50       float64 `json:"ma50"`
	MA200      float64 `json:"ma200"`
	Beta       float64 `json:"beta"`
	RSI        float64 `json:"rsi"`
	Volatility float64 `json:"volatility"`
	VaR        float64 `json:"var"`
	Drawdown   float64 `json:"drawdown"`

	NewsSentiment Sentiment `json:"news_sentiment"`
	NewsComment   string    `json:"news_comment"`
	Headlines     []string  `json:"headlines"`
}
