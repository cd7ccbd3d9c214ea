package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/centsible/backend/internal/types"
)

// DateFormat is the wire format for calendar days.
const DateFormat = "2006-01-02"

// Range is an inclusive range of calendar days, both ends at UTC
// midnight. Start is never after End.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRange returns the range between the two days, swapping them if
// they are reversed.
func NewRange(start, end time.Time) Range {
	if start.After(end) {
		start, end = end, start
	}

	return Range{Start: start, End: end}
}

// Days returns the number of calendar days in the range, at least 1.
func (r Range) Days() int {
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	return days
}

// Contains reports whether the day falls within the range.
func (r Range) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s → %s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// monthRange returns the full calendar month as a range.
func monthRange(m types.Month) Range {
	return Range{Start: m.FirstDay(), End: m.LastDay()}
}

// startOfWeek returns the Monday of the week the day is in. Weeks are
// Monday-start and computed in UTC so the weekday does not drift with
// the caller's timezone.
func startOfWeek(day time.Time) time.Time {
	diff := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -diff)
}

// weekRange returns the Monday..Sunday week the day is in.
func weekRange(day time.Time) Range {
	start := startOfWeek(day)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

// Resolver turns temporal expressions in queries into date ranges.
type Resolver struct {
	clock Clock
}

// NewResolver returns a Resolver using the given clock.
func NewResolver(clock Clock) *Resolver {
	return &Resolver{clock: clock}
}

func (r *Resolver) today(tz string) time.Time {
	return today(r.clock, tz)
}

var (
	monthYearPattern = regexp.MustCompile(`\b(?:in\s+|en\s+|on\s+|for\s+|para\s+)?([a-z]+)\s+(\d{4})\b`)
	wordPattern      = regexp.MustCompile(`\b[a-z]+\b`)
	dayAfterPattern  = regexp.MustCompile(`^\d{1,2}\b`)

	rollingCompact = regexp.MustCompile(`\b(\d+)\s*(d|w|m|y)\b`)
	rollingVerbose = regexp.MustCompile(`\b(?:past|last)\s+(\d+)\s+(days?|weeks?|months?|years?)\b`)
)

// Resolve parses the temporal expression in the query and returns the
// date range it spans. The resolution order is a behavioral contract:
// explicit month+year, explicit month, named window, rolling window,
// then the selected month, then the current month up to today.
func (r *Resolver) Resolve(query string, selected types.Month, tz string) Range {
	q := fold(query)

	// 1) "May 2025", "en noviembre 2025": the full calendar month
	if m, ok := explicitMonthYear(q); ok {
		return monthRange(m)
	}

	// 2) bare month name: the month in the current year
	if month, ok := bareMonth(q); ok {
		return monthRange(types.NewMonth(r.today(tz).Year(), month))
	}

	// 3) named windows. "This X" windows end at today because spending
	// data cannot exist in the future.
	if w, ok := namedWindow(q); ok {
		return r.namedWindowRange(w, tz)
	}

	// 4) rolling windows like "7d" or "past 3 months"
	if n, unit, ok := rollingWindow(q); ok {
		return r.rollingRange(n, unit, tz)
	}

	// 5) default: the month selected in the UI, else the current month
	// up to today
	if !selected.IsZero() {
		return monthRange(selected)
	}

	now := r.today(tz)
	return Range{Start: types.MonthOf(now).FirstDay(), End: now}
}

// explicitMonthYear matches a month name followed by a 4-digit year.
func explicitMonthYear(q string) (types.Month, bool) {
	for _, m := range monthYearPattern.FindAllStringSubmatch(q, -1) {
		month, ok := monthFromWord(m[1])
		if !ok {
			continue
		}

		year, err := strconv.Atoi(m[2])
		if err != nil || year == 0 {
			continue
		}

		return types.NewMonth(year, month), true
	}

	return types.Month{}, false
}

// bareMonth scans for a month-name token that is not immediately
// followed by a 1-2 digit day number, so "May 3rd" is not read as the
// whole month of May.
func bareMonth(q string) (time.Month, bool) {
	for _, loc := range wordPattern.FindAllStringIndex(q, -1) {
		month, ok := monthFromWord(q[loc[0]:loc[1]])
		if !ok {
			continue
		}

		after := strings.TrimSpace(q[loc[1]:])
		if dayAfterPattern.MatchString(after) {
			continue
		}

		return month, true
	}

	return 0, false
}

func namedWindow(q string) (window, bool) {
	for _, w := range []window{windowThisWeek, windowLastWeek, windowThisMonth, windowLastMonth, windowThisYear, windowLastYear} {
		if matchAny(q, func(l *locale) *regexp.Regexp { return l.windows[w] }) {
			return w, true
		}
	}

	return 0, false
}

func (r *Resolver) namedWindowRange(w window, tz string) Range {
	now := r.today(tz)

	switch w {
	case windowThisWeek:
		return Range{Start: startOfWeek(now), End: now}
	case windowLastWeek:
		end := startOfWeek(now).AddDate(0, 0, -1)
		return Range{Start: end.AddDate(0, 0, -6), End: end}
	case windowThisMonth:
		return Range{Start: types.MonthOf(now).FirstDay(), End: now}
	case windowLastMonth:
		return monthRange(types.MonthOf(now).AddDate(0, -1))
	case windowThisYear:
		return Range{Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), End: now}
	default: // windowLastYear
		year := now.Year() - 1
		return Range{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}
}

func rollingWindow(q string) (n int, unit byte, ok bool) {
	if m := rollingCompact.FindStringSubmatch(q); m != nil {
		n, _ = strconv.Atoi(m[1])
		return n, m[2][0], true
	}

	if m := rollingVerbose.FindStringSubmatch(q); m != nil {
		n, _ = strconv.Atoi(m[1])
		return n, m[2][0], true
	}

	return 0, 0, false
}

func (r *Resolver) rollingRange(n int, unit byte, tz string) Range {
	end := r.today(tz)
	start := end

	switch unit {
	case 'd':
		start = end.AddDate(0, 0, -n+1)
	case 'w':
		start = end.AddDate(0, 0, -n*7+1)
	case 'm':
		start = end.AddDate(0, -n, 0)
	case 'y':
		start = end.AddDate(-n, 0, 0)
	}

	return NewRange(start, end)
}

var (
	dayRangeMonthFirst = regexp.MustCompile(`\b([a-z]{3,})\s+(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})\b`)
	dayRangeMonthLast  = regexp.MustCompile(`\b(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})\s+([a-z]{3,})\b`)
	dayRangeTwoMonths  = regexp.MustCompile(`\b([a-z]{3,})\s+(\d{1,2})\s*(?:to|-|–)\s*([a-z]{3,})\s+(\d{1,2})\b`)
	dayRangeNumeric    = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})[/\-](\d{1,2})\b`)
)

// DayRange resolves explicit day-range phrases like "September 10 to
// 17", "10-17 sep", "aug 1 to aug 7" or "09/10 to 09/17". It is used by
// watch creation to build custom period ranges. Day numbers are clamped
// to the month's last day, so "Feb 30" resolves to Feb 28 (or 29).
func (r *Resolver) DayRange(query string, selected types.Month, tz string) (Range, bool) {
	q := fold(query)
	year := r.yearForMonths(selected, tz)

	// "september 10 to 17" / "sep 10-17"
	if m := dayRangeMonthFirst.FindStringSubmatch(q); m != nil {
		if month, ok := monthFromWord(m[1]); ok {
			anchor := types.NewMonth(year, month)
			return NewRange(anchor.ClampDay(atoi(m[2])), anchor.ClampDay(atoi(m[3]))), true
		}
	}

	// "10 to 17 september"
	if m := dayRangeMonthLast.FindStringSubmatch(q); m != nil {
		if month, ok := monthFromWord(m[3]); ok {
			anchor := types.NewMonth(year, month)
			return NewRange(anchor.ClampDay(atoi(m[1])), anchor.ClampDay(atoi(m[2]))), true
		}
	}

	// "aug 1 to aug 7"
	if m := dayRangeTwoMonths.FindStringSubmatch(q); m != nil {
		first, okFirst := monthFromWord(m[1])
		second, okSecond := monthFromWord(m[3])
		if okFirst && okSecond {
			start := types.NewMonth(year, first).ClampDay(atoi(m[2]))
			end := types.NewMonth(year, second).ClampDay(atoi(m[4]))
			return NewRange(start, end), true
		}
	}

	// "09/10 to 09/17", assumed mm/dd
	if m := dayRangeNumeric.FindStringSubmatch(q); m != nil {
		start := time.Date(year, time.Month(atoi(m[1])), atoi(m[2]), 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.Month(atoi(m[3])), atoi(m[4]), 0, 0, 0, 0, time.UTC)
		return NewRange(start, end), true
	}

	return Range{}, false
}

// yearForMonths picks the year to use for month names without a year,
// based on the selected month or today.
func (r *Resolver) yearForMonths(selected types.Month, tz string) int {
	if !selected.IsZero() {
		return selected.Year()
	}

	return r.today(tz).Year()
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
