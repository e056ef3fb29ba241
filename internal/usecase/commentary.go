package usecase

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Commentary and grading. All functions are pure string builders over the
// metric bundle; thresholds come from the KPI grading table. Grading
// direction is consistent per metric: lower is better for P/E, price/book
// and debt/equity, higher is better for the rest.

type grade string

const (
	gradeGood grade = "🟢"
	gradeMid  grade = "🟡"
	gradeBad  grade = "🔴"
)

func gradeHigherBetter(value, good, bad float64) grade {
	switch {
	case value >= good:
		return gradeGood
	case value <= bad:
		return gradeBad
	default:
		return gradeMid
	}
}

func gradeLowerBetter(value, good, bad float64) grade {
	switch {
	case value < good:
		return gradeGood
	case value > bad:
		return gradeBad
	default:
		return gradeMid
	}
}

// investment is the reference amount for dividend income projections.
const investment = 10_000

func peComment(pe float64) string {
	switch {
	case pe < 15:
		return "Low – undervalued"
	case pe <= 25:
		return "Moderate – fair value"
	default:
		return "High – overvalued"
	}
}

func epsComment(eps float64) string {
	switch {
	case eps > 5:
		return "Strong earnings"
	case eps > 1:
		return "Moderate"
	default:
		return "Weak or negative"
	}
}

func dividendComment(rate, yield, price float64) string {
	if rate <= 0 && yield <= 0 {
		return "No dividend"
	}

	shares := 0.0
	if price > 0 {
		shares = investment / price
	}
	incomeFromRate := shares * rate
	incomeFromYield := investment * yield

	return fmt.Sprintf(
		"Forward Dividend: $%.2f/share → $%s/year on $%s\nDividend Yield: %.2f%% → $%s/year on $%s",
		rate,
		humanize.FormatFloat("#,###.##", incomeFromRate), humanize.Comma(investment),
		yield,
		humanize.FormatFloat("#,###.##", incomeFromYield), humanize.Comma(investment),
	)
}

// marketCapString formats a raw capitalization by magnitude.
func marketCapString(cap float64) string {
	switch {
	case cap >= 1e12:
		return fmt.Sprintf("%.2fT", cap/1e12)
	case cap >= 1e9:
		return fmt.Sprintf("%.2fB", cap/1e9)
	case cap > 0:
		return fmt.Sprintf("%.2fM", cap/1e6)
	default:
		return "N/A"
	}
}

func marketCapComment(cap float64) string {
	switch {
	case cap >= 200e9:
		return "Large cap"
	case cap >= 10e9:
		return "Mid cap"
	default:
		return "Small cap"
	}
}

func targetComment(targetDiff float64) string {
	if targetDiff > 0 {
		return fmt.Sprintf("Analysts expect %.1f%% upside.", targetDiff)
	}
	return fmt.Sprintf("%.1f%% downside potential.", -targetDiff)
}

func trendComment(weekly, monthly, yearly float64) string {
	dir := func(v float64) string {
		if v > 0 {
			return "Up"
		}
		return "Down"
	}
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	return fmt.Sprintf("Weekly: %s %.1f%% | Monthly: %s %.1f%% | Yearly: %s %.1f%%",
		dir(weekly), abs(weekly),
		dir(monthly), abs(monthly),
		dir(yearly), abs(yearly),
	)
}

func revenueComment(revYoY float64) string {
	if revYoY > 10 {
		return "Healthy growth"
	}
	return "Moderate growth"
}

func fcfComment(fcf float64) string {
	if fcf > 0 {
		return "Positive FCF"
	}
	return "Negative / N/A"
}

func debtComment(debtToEquity float64) string {
	if debtToEquity < 1 {
		return "Low leverage"
	}
	return "High leverage"
}

func roeComment(roe float64) string {
	if roe > 15 {
		return "Efficient"
	}
	return "Moderate"
}

func evEbitdaComment(evEbitda float64) string {
	if evEbitda < 10 {
		return "Cheap EV/EBITDA"
	}
	return "Expensive"
}

// summarizeKPIs renders the six-line traffic-light KPI summary.
func summarizeKPIs(pe, eps, div, pb, debt, roe float64) string {
	return strings.Join([]string{
		fmt.Sprintf("%s P/E Ratio: %.2f → Lower = cheaper. Ideal: under 20–25, sector-relative.", gradeLowerBetter(pe, 15, 25), pe),
		fmt.Sprintf("%s EPS: %.2f → Company profit per share.", gradeHigherBetter(eps, 5, 1), eps),
		fmt.Sprintf("%s Annual Dividend Yield: %.2f%% → Passive income return.", gradeHigherBetter(div, 3, 1), div),
		fmt.Sprintf("%s Price/Book: %.2f → Asset value vs. market value.", gradeLowerBetter(pb, 1.5, 3), pb),
		fmt.Sprintf("%s Debt/Equity: %.2f → Lower = less risk.", gradeLowerBetter(debt, 0.5, 1), debt),
		fmt.Sprintf("%s Return on Equity: %.2f%% → Profitability efficiency.", gradeHigherBetter(roe, 15, 5), roe),
	}, "\n")
}

// recommendationReason renders the narrow rationale behind the verdict.
func recommendationReason(pe, eps, div float64, divComment string) string {
	return strings.Join([]string{
		fmt.Sprintf("%s P/E: %s", gradeLowerBetter(pe, 15, 25), peComment(pe)),
		fmt.Sprintf("%s EPS: %s", gradeHigherBetter(eps, 5, 1), epsComment(eps)),
		fmt.Sprintf("%s Div: %s", gradeHigherBetter(div, 3, 1), divComment),
	}, "\n")
}
