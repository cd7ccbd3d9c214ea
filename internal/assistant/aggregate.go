package assistant

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// DayAmount is one point of a daily spending series.
type DayAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// WeekdayAmount is one bucket of a weekday breakdown.
type WeekdayAmount struct {
	Weekday string          `json:"weekday"`
	Amount  decimal.Decimal `json:"amount"`
}

// CategoryAmount is one category's total spending.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// FilterRange keeps the transactions whose date falls inside the range.
func FilterRange(transactions []models.Transaction, r Range) []models.Transaction {
	var within []models.Transaction
	for _, t := range transactions {
		if r.Contains(day(t.Date)) {
			within = append(within, t)
		}
	}

	return within
}

// FilterCategory keeps the transactions matching a category, either by
// category equality or by the description containing the term.
func FilterCategory(transactions []models.Transaction, category string) []models.Transaction {
	needle := fold(category)

	var matched []models.Transaction
	for _, t := range transactions {
		if fold(t.Category) == needle || strings.Contains(fold(t.Description), needle) {
			matched = append(matched, t)
		}
	}

	return matched
}

// DailySeries buckets spending by calendar day. The series is dense:
// every day of the range appears, days without spending as zero, so a
// chart renderer never has to fill gaps itself.
func DailySeries(transactions []models.Transaction, r Range) []DayAmount {
	totals := make(map[string]decimal.Decimal, r.Days())
	for _, t := range transactions {
		key := t.Date.UTC().Format(DateFormat)
		totals[key] = totals[key].Add(t.Amount)
	}

	series := make([]DayAmount, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateFormat)
		series = append(series, DayAmount{Date: key, Amount: totals[key]})
	}

	return series
}

// Peak returns the day with the highest spending. Ties go to the
// earlier day; an all-zero series peaks at the first day.
func Peak(series []DayAmount) DayAmount {
	if len(series) == 0 {
		return DayAmount{}
	}

	peak := series[0]
	for _, p := range series[1:] {
		if p.Amount.GreaterThan(peak.Amount) {
			peak = p
		}
	}

	return peak
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayBreakdown sums spending per day of week. All seven buckets
// are always present, Sunday first, matching UTC weekday numbering.
func WeekdayBreakdown(transactions []models.Transaction) []WeekdayAmount {
	var totals [7]decimal.Decimal
	for _, t := range transactions {
		totals[int(t.Date.UTC().Weekday())] = totals[int(t.Date.UTC().Weekday())].Add(t.Amount)
	}

	breakdown := make([]WeekdayAmount, 7)
	for i, label := range weekdayLabels {
		breakdown[i] = WeekdayAmount{Weekday: label, Amount: totals[i]}
	}

	return breakdown
}

// TopCategories sums spending per category, highest first. Categories
// with equal totals keep the order they were first seen in, so the
// ranking is deterministic. Transactions without a category count as
// "Other".
func TopCategories(transactions []models.Transaction) (decimal.Decimal, []CategoryAmount) {
	total := decimal.Decimal{}
	index := make(map[string]int)

	var ranked []CategoryAmount
	for _, t := range transactions {
		total = total.Add(t.Amount)

		category := t.Category
		if category == "" {
			category = "Other"
		}

		i, seen := index[category]
		if !seen {
			index[category] = len(ranked)
			ranked = append(ranked, CategoryAmount{Category: category})
			i = index[category]
		}

		ranked[i].Amount = ranked[i].Amount.Add(t.Amount)
	}

	slices.SortStableFunc(ranked, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	return total, ranked
}

// Total sums the transactions' amounts.
func Total(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Decimal{}
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}

	return total
}

// percent returns part of total as a percentage, 0.0 when the total is
// zero.
func percent(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0.0
	}

	return part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func day(t time.Time) time.Time {
	year, month, d := t.UTC().Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
