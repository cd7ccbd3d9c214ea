package assistant

import (
	"regexp"
	"strings"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

var wordNumbers = map[string]int64{
	"one": 1, "a": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var (
	thousandPattern = regexp.MustCompile(`\b(one|a|two|three|four|five|six|seven|eight|nine|ten)\s+thousand\b`)
	hundredPattern  = regexp.MustCompile(`\b(one|a|two|three|four|five|six|seven|eight|nine|ten)\s+hundred\b`)
	numericAmount   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// ExtractAmount pulls a monetary amount out of the query. Spelled-out
// magnitudes ("five hundred", "thousand dollars") take precedence over
// numeric tokens ("$50", "20 dollars", "12.50"). The second return is
// false when no amount is stated; callers must treat that as "no amount
// given", never as zero.
func ExtractAmount(query string) (decimal.Decimal, bool) {
	q := fold(query)

	if strings.Contains(q, "thousand") {
		multiplier := int64(1)
		if m := thousandPattern.FindStringSubmatch(q); m != nil {
			multiplier = wordNumbers[m[1]]
		}
		return decimal.NewFromInt(multiplier * 1000), true
	}

	if strings.Contains(q, "hundred") {
		multiplier := int64(1)
		if m := hundredPattern.FindStringSubmatch(q); m != nil {
			multiplier = wordNumbers[m[1]]
		}
		return decimal.NewFromInt(multiplier * 100), true
	}

	if m := numericAmount.FindStringSubmatch(q); m != nil {
		amount, err := decimal.NewFromString(m[1])
		if err == nil {
			return amount, true
		}
	}

	return decimal.Decimal{}, false
}

var (
	slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	monthDayPattern  = regexp.MustCompile(`\b(?:on\s+)?([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})?\b`)
	inMonthYear      = regexp.MustCompile(`\b(?:in|on|en)\s+([a-z]+)\s+(\d{4})\b`)
)

// ExtractDate finds an explicit transaction date in an add/delete
// command. Tried in order: a slash date (assumed MM/DD/YYYY, the US
// convention), "<month> <day>[, <year>]" with the day clamped to the
// month, and "in <month> <year>" which dates a bill at the end of that
// month. The year defaults to the selected month's year, then to
// today's.
func ExtractDate(query string, selected types.Month, now time.Time) (time.Time, bool) {
	q := fold(query)

	if m := slashDatePattern.FindStringSubmatch(q); m != nil {
		return time.Date(atoi(m[3]), time.Month(atoi(m[1])), atoi(m[2]), 0, 0, 0, 0, time.UTC), true
	}

	for _, m := range monthDayPattern.FindAllStringSubmatch(q, -1) {
		month, ok := monthFromWord(m[1])
		if !ok {
			continue
		}

		year := defaultYear(m[3], selected, now)
		return types.NewMonth(year, month).ClampDay(atoi(m[2])), true
	}

	if m := inMonthYear.FindStringSubmatch(q); m != nil {
		if month, ok := monthFromWord(m[1]); ok {
			return types.NewMonth(atoi(m[2]), month).LastDay(), true
		}
	}

	return time.Time{}, false
}

func defaultYear(explicit string, selected types.Month, now time.Time) int {
	if explicit != "" {
		return atoi(explicit)
	}

	if !selected.IsZero() {
		return selected.Year()
	}

	return now.Year()
}

// categoryRules map description keywords to categories. The order is
// load-bearing: the first matching rule wins, so keywords that could
// fall into several buckets resolve deterministically.
var categoryRules = []struct {
	category string
	patterns []string
}{
	{"Food", []string{"*food*", "*coffee*", "*lunch*", "*dinner*", "*breakfast*", "*grocer*"}},
	{"Transit", []string{"*uber*", "*taxi*", "*bus*", "*path*", "*metro*", "*train*", "*transit*", "*ride*"}},
	{"Subscriptions", []string{"*netflix*", "*spotify*", "*subscription*", "*suscrip*"}},
	{"Bills", []string{"*rent*", "*bill*", "*electric*", "*water*", "*internet*", "*utility*", "*servicios*", "*luz*", "*agua*"}},
	{"Shopping", []string{"*cloth*", "*shirt*", "*pant*", "*shoe*", "*dress*", "*shop*", "*ropa*", "*zapatos*", "*tienda*"}},
}

// InferCategory guesses the category from a description.
func InferCategory(description string) string {
	d := fold(description)

	for _, rule := range categoryRules {
		for _, pattern := range rule.patterns {
			if glob.Glob(pattern, d) {
				return rule.category
			}
		}
	}

	return "Other"
}

var (
	forDescription  = regexp.MustCompile(`\b(?:for|para)\s+([^$\d]+?)(?:\s+on\s+|\s+in\s+|$)`)
	leadingAddVerb  = regexp.MustCompile(`^(?:add|agrega|anade|sumar|registrar)\s+`)
	magnitudeClause = regexp.MustCompile(`\b(?:hundred|thousand|million)\s+(?:dollars?|dolares)?\s*`)
	leadingAmount   = regexp.MustCompile(`^\$?\s*\d+(?:\.\d+)?\s*\$?\s*(?:dollars?|dolares)?\s*`)
	onMonthDayYear  = regexp.MustCompile(`\s+on\s+[a-z]+\s+\d{1,2},?\s*\d{4}`)
	inMonthYearTail = regexp.MustCompile(`\s+in\s+[a-z]+\s+\d{4}`)
	slashDateTail   = regexp.MustCompile(`\s+\d{1,2}/\d{1,2}/\d{4}`)
)

// ExtractDescription pulls the expense description out of an add
// command. Text after "for"/"para" wins; otherwise the add verb, the
// amount and any trailing date clause are stripped and the rest is the
// description. An empty remainder becomes the literal "Expense".
func ExtractDescription(query string) string {
	q := fold(strings.TrimSpace(query))

	if m := forDescription.FindStringSubmatch(q); m != nil {
		if d := strings.TrimSpace(m[1]); d != "" {
			return d
		}
	}

	d := leadingAddVerb.ReplaceAllString(q, "")
	d = magnitudeClause.ReplaceAllString(d, "")
	d = leadingAmount.ReplaceAllString(d, "")
	d = onMonthDayYear.ReplaceAllString(d, "")
	d = inMonthYearTail.ReplaceAllString(d, "")
	d = slashDateTail.ReplaceAllString(d, "")
	d = strings.TrimSpace(d)

	if d == "" {
		return "Expense"
	}

	return d
}

// ParsePeriod finds a goal/watch period in the query. Matching is
// deliberately loose so "500weekly" without a space still works.
func ParsePeriod(query string) (string, bool) {
	q := fold(query)

	switch {
	case matchAny(q, func(l *locale) *regexp.Regexp { return l.periodWeekly }):
		return "weekly", true
	case matchAny(q, func(l *locale) *regexp.Regexp { return l.periodMonthly }):
		return "monthly", true
	case matchAny(q, func(l *locale) *regexp.Regexp { return l.periodYearly }):
		return "yearly", true
	}

	return "", false
}

var (
	watchCategoryBefore = regexp.MustCompile(`\b(?:watch|alert|notify|alerta|aviso)\s+([a-z]\w*)\s+\$?\d`)
	categoryAfterFor    = regexp.MustCompile(`\b(?:for|on|en|para)\s+([a-z]\w*)`)
	periodWord          = regexp.MustCompile(`^(?:weekly|monthly|yearly|semanal|mensual|anual|for|on|en|para)$`)
	numberToken         = regexp.MustCompile(`\$?\s*\d+(?:\.\d+)?`)
	yearToken           = regexp.MustCompile(`^\d{4}$`)
)

// WatchCategory finds the category of a watch command. It prefers the
// word between the watch keyword and the amount ("watch food 500"),
// then a "for X" phrase, and finally falls back to the first content
// word that is neither a keyword, a month name nor a number. The
// default is "General".
func WatchCategory(query string) string {
	q := fold(query)

	if m := watchCategoryBefore.FindStringSubmatch(q); m != nil {
		if !periodWord.MatchString(m[1]) {
			return m[1]
		}
	}

	if m := categoryAfterFor.FindStringSubmatch(q); m != nil {
		if _, isMonth := monthFromWord(m[1]); !isMonth {
			return m[1]
		}
	}

	cleaned := numberToken.ReplaceAllString(q, "")
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}

		if _, isMonth := monthFromWord(word); isMonth {
			continue
		}

		if periodWord.MatchString(word) || isStopword(word) || yearToken.MatchString(word) {
			continue
		}

		return word
	}

	return "General"
}

var goalCategoryTail = regexp.MustCompile(`\b(?:for|para)\s+([a-z][\w\s-]*)$`)

// GoalCategory finds the category of a goal command from a trailing
// "for X" phrase.
func GoalCategory(query string) string {
	m := goalCategoryTail.FindStringSubmatch(fold(strings.TrimSpace(query)))
	if m == nil {
		return ""
	}

	return strings.TrimSpace(m[1])
}
