package models

import "time"

// PricePoint is one daily close.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is a close-price history ordered by strictly increasing date.
// An empty series is valid; analytics degrade to sentinel outputs.
type PriceSeries []PricePoint

// Closes returns the close prices in date order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Tail returns the trailing n points (the whole series when shorter).
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
