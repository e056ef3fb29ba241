package models

// MetricBundle holds the numeric outputs derived from a QuoteSnapshot and a
// PriceSeries. Series-derived fields are 0 (or "N/A" for the levels) when
// the history is too short for their window.
type MetricBundle struct {
	TargetDiff  float64
	WeeklyPct   float64
	MonthlyPct  float64
	YearlyPct   float64
	MA50        float64
	MA200       float64
	RSI         float64
	Volatility  float64 // annualized, percent
	ValueAtRisk float64 // 5th percentile daily return, percent
	MaxDrawdown float64 // percent, <= 0
	Support     string  // "$123.45" or "N/A"
	Resistance  string  // "$123.45" or "N/A"
}
