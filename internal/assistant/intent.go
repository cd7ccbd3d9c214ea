package assistant

import "regexp"

// Intent is the operation a query asks for.
type Intent int

const (
	IntentFallback Intent = iota
	IntentChart
	IntentAddExpense
	IntentDeleteWatch
	IntentDeleteExpense
	IntentCreateGoal
	IntentCreateWatch
	IntentInsights
	IntentMostSpent
	IntentMonthlySummary
	IntentYearlySummary
)

func (i Intent) String() string {
	switch i {
	case IntentChart:
		return "chart"
	case IntentAddExpense:
		return "add-expense"
	case IntentDeleteWatch:
		return "delete-watch"
	case IntentDeleteExpense:
		return "delete-expense"
	case IntentCreateGoal:
		return "create-goal"
	case IntentCreateWatch:
		return "create-watch"
	case IntentInsights:
		return "insights"
	case IntentMostSpent:
		return "most-spent"
	case IntentMonthlySummary:
		return "monthly-summary"
	case IntentYearlySummary:
		return "yearly-summary"
	default:
		return "fallback"
	}
}

var (
	bareChartPattern  = regexp.MustCompile(`^\s*\d+\s*[dwmy]\s*chart$|^chart$`)
	leadingDollar     = regexp.MustCompile(`^\s*\$?\d`)
	watchDeleteTarget = regexp.MustCompile(`\b(watch|alert|alerta)\b`)
)

func isChart(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.chart }) || bareChartPattern.MatchString(q)
}

// isAdd yields to superlative queries ("most spent 50...") and to
// analytic ones ("summary of what I spent") even when an add verb
// appears, because those words make the query a question, not a
// command.
func isAdd(q string) bool {
	if matchAny(q, func(l *locale) *regexp.Regexp { return l.superlative }) {
		return false
	}

	if matchAny(q, func(l *locale) *regexp.Regexp { return l.analytic }) {
		return false
	}

	return matchAny(q, func(l *locale) *regexp.Regexp { return l.addVerb }) || leadingDollar.MatchString(q)
}

func isDelete(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.deleteVerb })
}

func isGoal(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.goalNoun }) &&
		matchAny(q, func(l *locale) *regexp.Regexp { return l.goalVerb })
}

func isWatch(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.watchNoun })
}

func isInsights(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.insights })
}

func isMostSpent(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.mostSpent })
}

func isMonthly(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.monthly })
}

func isYearly(q string) bool {
	return matchAny(q, func(l *locale) *regexp.Regexp { return l.yearNoun }) &&
		matchAny(q, func(l *locale) *regexp.Regexp { return l.yearlyWith })
}

// intentRules is the dispatch table. Order is a behavioral contract:
// the first matching rule wins, so "delete watch food" is a watch
// deletion even though the delete-expense rule would also match, and
// "chart this month" is a chart even though the monthly-summary rule
// would also match.
var intentRules = []struct {
	intent Intent
	match  func(q string) bool
}{
	{IntentChart, isChart},
	{IntentAddExpense, isAdd},
	{IntentDeleteWatch, func(q string) bool { return isDelete(q) && watchDeleteTarget.MatchString(q) }},
	{IntentDeleteExpense, isDelete},
	{IntentCreateGoal, isGoal},
	{IntentCreateWatch, isWatch},
	{IntentInsights, isInsights},
	{IntentMostSpent, isMostSpent},
	{IntentMonthlySummary, isMonthly},
	{IntentYearlySummary, isYearly},
}

// Classify returns the intent of a query. Every query classifies to
// exactly one intent; queries matching no rule are IntentFallback.
func Classify(query string) Intent {
	q := fold(query)

	for _, rule := range intentRules {
		if rule.match(q) {
			return rule.intent
		}
	}

	return IntentFallback
}
