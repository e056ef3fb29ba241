package usecase

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"EquityLens/internal/domain/models"
)

// Price-history analytics. Every function treats a short or empty series as
// a normal input and returns the documented sentinel (0, or "N/A" for the
// support/resistance levels) instead of an error.

const (
	rsiPeriod      = 14
	tradingDays    = 252
	halfYearWindow = 126
)

// TargetDiff returns (target-current)/current*100, or 0 when the current
// price is not positive.
func TargetDiff(current, target float64) float64 {
	if current <= 0 {
		return 0.0
	}
	return (target - current) / current * 100
}

// PercentChange returns the percent change between the latest close and the
// close n points back (inclusive window of n points). Series shorter than n
// points, or a zero reference close, yield 0.
func PercentChange(closes []float64, n int) float64 {
	if n <= 0 || len(closes) < n {
		return 0.0
	}
	ref := closes[len(closes)-n]
	if ref == 0 {
		return 0.0
	}
	return (closes[len(closes)-1] - ref) / ref * 100
}

// SMA returns the simple mean of the trailing window, 0 when the series has
// fewer points than the window.
func SMA(closes []float64, window int) float64 {
	if window <= 0 || len(closes) < window {
		return 0.0
	}
	return stat.Mean(closes[len(closes)-window:], nil)
}

// RSI computes the 14-period relative strength index from plain averages of
// the trailing gains and losses. A zero loss average is treated as 1.0 to
// avoid division by zero. Requires at least period+1 closes, else 0.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 0.0
	}

	gains := make([]float64, 0, period)
	losses := make([]float64, 0, period)
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -delta)
		}
	}

	avgGain := stat.Mean(gains, nil)
	avgLoss := stat.Mean(losses, nil)
	if avgLoss == 0 {
		avgLoss = 1.0
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// DailyReturns converts closes into day-over-day fractional returns,
// skipping bars with a zero previous close.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		rets = append(rets, (closes[i]-closes[i-1])/closes[i-1])
	}
	return rets
}

// Volatility returns the annualized standard deviation of daily returns in
// percent (sample stddev, sqrt(252) scaling).
func Volatility(closes []float64) float64 {
	rets := DailyReturns(closes)
	if len(rets) < 2 {
		return 0.0
	}
	return stat.StdDev(rets, nil) * math.Sqrt(tradingDays) * 100
}

// ValueAtRisk returns the 5th percentile of the daily-return distribution
// in percent.
func ValueAtRisk(closes []float64) float64 {
	rets := DailyReturns(closes)
	if len(rets) == 0 {
		return 0.0
	}
	return percentile(rets, 5) * 100
}

// percentile computes the q-th percentile with linear interpolation between
// order statistics (rank = q/100*(n-1)).
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// MaxDrawdown returns the worst decline from a running peak in percent
// (a non-positive number), 0 for an empty series.
func MaxDrawdown(closes []float64) float64 {
	if len(closes) == 0 {
		return 0.0
	}
	worst := 0.0
	peak := closes[0]
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if peak <= 0 {
			continue
		}
		dd := (c/peak - 1) * 100
		if dd < worst {
			worst = dd
		}
	}
	return worst
}

// SupportResistance reports the minimum and maximum close over the trailing
// six-month window (126 sessions) as dollar strings, "N/A" when the history
// is empty.
func SupportResistance(series models.PriceSeries) (support, resistance string) {
	if len(series) == 0 {
		return "N/A", "N/A"
	}
	window := series.Tail(halfYearWindow)

	low := window[0].Close
	high := window[0].Close
	for _, p := range window[1:] {
		if p.Close < low {
			low = p.Close
		}
		if p.Close > high {
			high = p.Close
		}
	}
	return fmt.Sprintf("$%.2f", low), fmt.Sprintf("$%.2f", high)
}

// ComputeMetrics derives the full numeric bundle from a snapshot and series.
func ComputeMetrics(snapshot models.QuoteSnapshot, series models.PriceSeries) models.MetricBundle {
	closes := series.Closes()
	support, resistance := SupportResistance(series)

	return models.MetricBundle{
		TargetDiff:  TargetDiff(snapshot.CurrentPrice, snapshot.TargetPrice),
		WeeklyPct:   PercentChange(closes, 7),
		MonthlyPct:  PercentChange(closes, 30),
		YearlyPct:   PercentChange(closes, len(closes)),
		MA50:        SMA(closes, 50),
		MA200:       SMA(closes, 200),
		RSI:         RSI(closes, rsiPeriod),
		Volatility:  Volatility(closes),
		ValueAtRisk: ValueAtRisk(closes),
		MaxDrawdown: MaxDrawdown(closes),
		Support:     support,
		Resistance:  resistance,
	}
}
