package models

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	raw := RawQuote{Symbol: "aapl"}
	s := raw.Normalize()

	if s.Symbol != "AAPL" {
		t.Fatalf("symbol: got %q", s.Symbol)
	}
	if s.Name != "AAPL" {
		t.Fatalf("name fallback: got %q", s.Name)
	}
	if s.CurrentPrice != 0 || s.TargetPrice != 0 || s.PERatio != 0 || s.EPS != 0 {
		t.Fatalf("numeric defaults not zero: %+v", s)
	}
	if s.EarningsTimestamp != 0 || s.ExDividendDate != 0 {
		t.Fatalf("date defaults not zero: %+v", s)
	}
}

func TestNormalizePresentFields(t *testing.T) {
	name := "Apple Inc."
	price := 231.5
	pe := 35.2
	ts := int64(1767225600)

	raw := RawQuote{
		Symbol:            "AAPL",
		ShortName:         &name,
		CurrentPrice:      &price,
		TrailingPE:        &pe,
		EarningsTimestamp: &ts,
	}
	s := raw.Normalize()

	if s.Name != "Apple Inc." {
		t.Fatalf("name: got %q", s.Name)
	}
	if s.CurrentPrice != 231.5 || s.PERatio != 35.2 {
		t.Fatalf("values not carried: %+v", s)
	}
	if s.EarningsTimestamp != ts {
		t.Fatalf("earnings timestamp: got %d", s.EarningsTimestamp)
	}
}

func TestSeriesTail(t *testing.T) {
	s := PriceSeries{{Close: 1}, {Close: 2}, {Close: 3}}
	if got := s.Tail(2); len(got) != 2 || got[0].Close != 2 {
		t.Fatalf("tail: got %+v", got)
	}
	if got := s.Tail(10); len(got) != 3 {
		t.Fatalf("tail beyond length: got %+v", got)
	}
}
