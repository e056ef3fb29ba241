package models

import "strings"

// RawQuote is the field-presence mapping returned by the market-data
// provider. Nil means the provider did not report the field; normalization
// turns absence into defaults, never into an error.
type RawQuote struct {
	Symbol             string
	ShortName          *string
	CurrentPrice       *float64
	TargetMeanPrice    *float64
	TrailingPE         *float64
	TrailingEps        *float64
	DividendRate       *float64
	DividendYield      *float64
	MarketCap          *float64
	PriceToBook        *float64
	DebtToEquity       *float64
	ReturnOnEquity     *float64
	EnterpriseToEbitda *float64
	RevenueGrowth      *float64
	FreeCashflow       *float64
	Beta               *float64
	EarningsTimestamp  *int64
	ExDividendDate     *int64
}

// QuoteSnapshot is the fully defaulted view of a RawQuote. Every numeric is
// 0 when the provider omitted it, so downstream stages never branch on
// missing data.
type QuoteSnapshot struct {
	Symbol            string
	Name              string
	CurrentPrice      float64
	TargetPrice       float64
	PERatio           float64
	EPS               float64
	DividendRate      float64
	DividendYield     float64
	MarketCap         float64
	PriceToBook       float64
	DebtToEquity      float64
	ReturnOnEquity    float64 // fraction, e.g. 0.23
	EVToEBITDA        float64
	RevenueGrowth     float64 // fraction, e.g. 0.08
	FreeCashflow      float64
	Beta              float64
	EarningsTimestamp int64 // unix seconds, 0 = not announced
	ExDividendDate    int64 // unix seconds, 0 = unknown
}

// Normalize converts a RawQuote into a QuoteSnapshot with every field
// defaulted. The display name falls back to the upper-cased symbol.
func (r *RawQuote) Normalize() QuoteSnapshot {
	s := QuoteSnapshot{
		Symbol: strings.ToUpper(r.Symbol),
		Name:   strings.ToUpper(r.Symbol),
	}
	if r.ShortName != nil && *r.ShortName != "" {
		s.Name = *r.ShortName
	}
	s.CurrentPrice = deref(r.CurrentPrice)
	s.TargetPrice = deref(r.TargetMeanPrice)
	s.PERatio = deref(r.TrailingPE)
	s.EPS = deref(r.TrailingEps)
	s.DividendRate = deref(r.DividendRate)
	s.DividendYield = deref(r.DividendYield)
	s.MarketCap = deref(r.MarketCap)
	s.PriceToBook = deref(r.PriceToBook)
	s.DebtToEquity = deref(r.DebtToEquity)
	s.ReturnOnEquity = deref(r.ReturnOnEquity)
	s.EVToEBITDA = deref(r.EnterpriseToEbitda)
	s.RevenueGrowth = deref(r.RevenueGrowth)
	s.FreeCashflow = deref(r.FreeCashflow)
	s.Beta = deref(r.Beta)
	if r.EarningsTimestamp != nil {
		s.EarningsTimestamp = *r.EarningsTimestamp
	}
	if r.ExDividendDate != nil {
		s.ExDividendDate = *r.ExDividendDate
	}
	return s
}

func deref(p *float64) float64 {
	if p == nil {
		return 0.0
	}
	return *p
}
