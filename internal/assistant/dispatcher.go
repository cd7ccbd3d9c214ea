package assistant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var chartCategoryTail = regexp.MustCompile(`\b(?:on|for|en|para)\s+([a-z][\w\s-]*)$`)

func (i *Interpreter) chart(ownerID uuid.UUID, query Query) (ActionResult, error) {
	r := i.resolver.Resolve(query.Text, query.Month, query.Timezone)

	category := "All"
	if m := chartCategoryTail.FindStringSubmatch(fold(strings.TrimSpace(query.Text))); m != nil {
		category = strings.TrimSpace(m[1])
	}

	all, err := i.store.Transactions(ownerID, models.TransactionFilter{})
	if err != nil {
		return ActionResult{}, err
	}

	within := FilterRange(all, r)
	if category != "All" {
		within = FilterCategory(within, category)
	}

	series := DailySeries(within, r)
	total := Total(within)
	average := total.Div(decimal.NewFromInt(int64(r.Days())))

	return ActionResult{
		Chart: &Chart{
			Range:    r,
			Category: category,
			Summary: ChartSummary{
				Total:   total.StringFixed(2),
				Average: average.StringFixed(2),
				Peak:    Peak(series),
			},
			Series:           series,
			WeekdayBreakdown: WeekdayBreakdown(within),
		},
	}, nil
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func (i *Interpreter) addExpense(ownerID uuid.UUID, query Query) (ActionResult, error) {
	amount, ok := ExtractAmount(query.Text)
	if !ok || !amount.IsPositive() {
		return guidance("❌ Please include an amount. Example: 'Add 12 coffee' or '$20 for groceries'."), nil
	}

	now := today(i.clock, query.Timezone)

	// An exact date sent alongside the query wins over anything found
	// in the text, and the text wins over today.
	date := now
	if isoDatePattern.MatchString(query.Date) {
		if parsed, err := time.Parse(DateFormat, query.Date); err == nil {
			date = parsed
		}
	} else if parsed, found := ExtractDate(query.Text, query.Month, now); found {
		date = parsed
	}

	description := ExtractDescription(query.Text)

	transaction := models.Transaction{
		OwnerID:     ownerID,
		Date:        date,
		Description: description,
		Category:    InferCategory(description),
		Amount:      amount,
	}
	if err := i.store.CreateTransaction(&transaction); err != nil {
		return ActionResult{}, err
	}

	return ActionResult{
		Messages: []string{fmt.Sprintf("✅ Added: %s – $%s (%s) on %s",
			transaction.Description, transaction.Amount.StringFixed(2), transaction.Category, transaction.Date.Format(DateFormat))},
		Effects: []Effect{{Type: EffectExpenseCreated, ID: transaction.ID}},
	}, nil
}

var watchDeleteCategory = regexp.MustCompile(`\b(?:watch|alert|alerta)\s+(?:for\s+)?([a-z]\w+)`)

func (i *Interpreter) deleteWatch(ownerID uuid.UUID, query Query) (ActionResult, error) {
	var category string
	if m := watchDeleteCategory.FindStringSubmatch(fold(query.Text)); m != nil {
		category = m[1]
	}

	if category == "" {
		return guidance("❌ Please specify the category. Example: 'delete watch food' or 'delete watch for shoes'."), nil
	}

	watches, err := i.store.Watches(ownerID, types.Month{})
	if err != nil {
		return ActionResult{}, err
	}

	for _, watch := range watches {
		if fold(watch.Category) != category {
			continue
		}

		if err := i.store.DeleteWatch(watch.ID, ownerID); err != nil {
			return ActionResult{}, err
		}

		return ActionResult{
			Messages: []string{fmt.Sprintf("✅ Deleted watch: %s - $%s %s", watch.Category, watch.Threshold.String(), watchPeriodLabel(watch))},
			Effects:  []Effect{{Type: EffectWatchDeleted, ID: watch.ID}},
		}, nil
	}

	available := make([]string, 0, len(watches))
	for _, watch := range watches {
		available = append(available, fmt.Sprintf("• %s - $%s %s", watch.Category, watch.Threshold.String(), watch.Period))
	}

	return guidance(fmt.Sprintf("❌ Could not find watch for %q.\n\nAvailable watches:\n%s", category, listOrNone(available))), nil
}

func watchPeriodLabel(watch models.Watch) string {
	if watch.Period == models.PeriodCustom && watch.RangeStart != nil && watch.RangeEnd != nil {
		return fmt.Sprintf("%s to %s", watch.RangeStart.Format(DateFormat), watch.RangeEnd.Format(DateFormat))
	}

	switch watch.Period {
	case models.PeriodWeekly, models.PeriodYearly:
		return string(watch.Period)
	default:
		return string(models.PeriodMonthly)
	}
}

var (
	deleteDayPattern   = regexp.MustCompile(`\b(?:on|in|en)\s+([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})?\b`)
	deleteMonthPattern = regexp.MustCompile(`\b(?:on|in|en)\s+([a-z]+)\b`)
	deleteVerbToken    = regexp.MustCompile(`\b(?:delete|remove|eliminar|borrar|quitar)\b`)
	amountToken        = regexp.MustCompile(`\$?\s*\d+(?:\.\d+)?\s*\$?\s*(?:dollars?|dolares)?`)
	deleteDateClause   = regexp.MustCompile(`\b(?:on|in|en)\s+[a-z]+(?:\s+\d{1,2}(?:st|nd|rd|th)?,?\s*\d{4})?\b`)
	forToken           = regexp.MustCompile(`\b(?:for|para)\s+`)
)

// replaceFirst removes the first match of pattern from s.
func replaceFirst(pattern *regexp.Regexp, s string) string {
	if loc := pattern.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + s[loc[1]:]
	}
	return s
}

func (i *Interpreter) deleteExpense(ownerID uuid.UUID, query Query) (ActionResult, error) {
	q := fold(query.Text)
	now := today(i.clock, query.Timezone)
	amount, hasAmount := ExtractAmount(query.Text)

	// An explicit day narrows matching to that date; a bare month
	// narrows it to that month.
	var targetDate time.Time
	var targetMonth types.Month
	if m := deleteDayPattern.FindStringSubmatch(q); m != nil {
		if month, ok := monthFromWord(m[1]); ok {
			year := defaultYear(m[3], query.Month, now)
			targetDate = types.NewMonth(year, month).ClampDay(atoi(m[2]))
			targetMonth = types.NewMonth(year, month)
		}
	}
	if targetMonth.IsZero() {
		if m := deleteMonthPattern.FindStringSubmatch(q); m != nil {
			if month, ok := monthFromWord(m[1]); ok {
				targetMonth = types.NewMonth(defaultYear("", query.Month, now), month)
			}
		}
	}

	// Each token is stripped once, so a second numeric token stays in
	// the keyword set.
	keywords := replaceFirst(deleteVerbToken, q)
	keywords = replaceFirst(amountToken, keywords)
	keywords = replaceFirst(deleteDateClause, keywords)
	keywords = replaceFirst(forToken, keywords)
	keywords = strings.TrimSpace(keywords)

	month := targetMonth
	if month.IsZero() {
		month = query.Month
	}
	if month.IsZero() {
		month = types.MonthOf(now)
	}

	if !hasAmount || keywords == "" {
		return guidance("❌ Please say amount and description. Example: 'delete 30 for path on december 3'."), nil
	}

	monthExpenses, err := i.store.Transactions(ownerID, models.TransactionFilter{Month: month})
	if err != nil {
		return ActionResult{}, err
	}

	var candidates []models.Transaction
	for _, t := range monthExpenses {
		if t.Amount.Equal(amount) {
			candidates = append(candidates, t)
		}
	}

	if !targetDate.IsZero() {
		var onDate []models.Transaction
		for _, t := range candidates {
			if day(t.Date).Equal(targetDate) {
				onDate = append(onDate, t)
			}
		}
		if len(onDate) > 0 {
			candidates = onDate
		}
	}

	if len(candidates) == 0 {
		available := make([]string, 0, len(monthExpenses))
		for _, t := range monthExpenses {
			available = append(available, fmt.Sprintf("• %s - %s on %s", t.Description, t.Amount.StringFixed(2), t.Date.Format(DateFormat)))
		}

		where := fmt.Sprintf("in %s", month)
		if !targetDate.IsZero() {
			where = fmt.Sprintf("on %s", targetDate.Format(DateFormat))
		}

		return guidance(fmt.Sprintf("❌ Not found %s for %q %s.\n\nAvailable:\n%s", amount.String(), keywords, where, listOrNone(available))), nil
	}

	// Among equal-amount candidates, a keyword hit on description or
	// category wins; otherwise the first candidate does.
	chosen := candidates[0]
	for _, t := range candidates {
		if matchesKeywords(t, keywords) {
			chosen = t
			break
		}
	}

	if err := i.store.DeleteTransaction(chosen.ID, ownerID); err != nil {
		return ActionResult{}, err
	}

	return ActionResult{
		Messages: []string{fmt.Sprintf("✅ Deleted: %s – %s on %s", chosen.Description, chosen.Amount.StringFixed(2), chosen.Date.Format(DateFormat))},
		Effects:  []Effect{{Type: EffectExpenseDeleted, ID: chosen.ID}},
	}, nil
}

func matchesKeywords(t models.Transaction, keywords string) bool {
	description := fold(t.Description)
	category := fold(t.Category)

	for _, word := range strings.Fields(keywords) {
		if len(word) <= 2 {
			continue
		}

		if strings.Contains(description, word) || strings.Contains(category, word) {
			return true
		}
	}

	return false
}

var goalMonthYear = regexp.MustCompile(`\b(?:in|for|en|para)\s+([a-z]+)\s+(\d{4})\b`)

func (i *Interpreter) createGoal(ownerID uuid.UUID, query Query) (ActionResult, error) {
	amount, hasAmount := ExtractAmount(query.Text)
	period, hasPeriod := ParsePeriod(query.Text)
	if !hasAmount || !hasPeriod {
		return guidance("❌ Please include amount and period. Example: 'Set monthly goal 300 for food'."), nil
	}

	category := GoalCategory(query.Text)

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(today(i.clock, query.Timezone))
	}
	if m := goalMonthYear.FindStringSubmatch(fold(query.Text)); m != nil {
		if named, ok := monthFromWord(m[1]); ok {
			month = types.NewMonth(atoi(m[2]), named)
		}
	}

	label := fmt.Sprintf("Stay under $%s %s", amount.String(), period)
	if category != "" {
		label += " for " + category
	}

	goal := models.Goal{
		OwnerID:  ownerID,
		Label:    label,
		Category: category,
		Limit:    amount,
		Month:    month,
		Period:   models.Period(period),
	}
	if err := i.store.CreateGoal(&goal); err != nil {
		return ActionResult{}, err
	}

	return ActionResult{
		Messages: []string{fmt.Sprintf("✅ Goal created: %s.", goal.Label)},
		Effects:  []Effect{{Type: EffectGoalCreated, ID: goal.ID}},
	}, nil
}

func (i *Interpreter) createWatch(ownerID uuid.UUID, query Query) (ActionResult, error) {
	amount, hasAmount := ExtractAmount(query.Text)
	if !hasAmount {
		return guidance("❌ Please include an amount. Example: 'watch food 500 weekly' or 'watch 500 for food monthly'."), nil
	}

	period, _ := ParsePeriod(query.Text)

	// An explicit day range like "september 10 to 17" makes the watch
	// a custom one regardless of any period word.
	dayRange, hasRange := i.resolver.DayRange(query.Text, query.Month, query.Timezone)
	if hasRange {
		period = string(models.PeriodCustom)
	}
	if period == "" {
		period = string(models.PeriodMonthly)
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(today(i.clock, query.Timezone))
	}

	var rangeStart, rangeEnd *time.Time
	switch {
	case hasRange:
		rangeStart, rangeEnd = &dayRange.Start, &dayRange.End
	case period == string(models.PeriodWeekly):
		// Weekly watches pin the current Monday..Sunday week so the
		// window is reproducible later.
		week := weekRange(today(i.clock, query.Timezone))
		rangeStart, rangeEnd = &week.Start, &week.End
	}

	watch := models.Watch{
		OwnerID:    ownerID,
		Category:   WatchCategory(query.Text),
		Threshold:  amount,
		Period:     models.Period(period),
		Month:      month,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	}
	if err := i.store.CreateWatch(&watch); err != nil {
		return ActionResult{}, err
	}

	var when string
	switch {
	case watch.Period == models.PeriodWeekly && rangeStart != nil:
		when = fmt.Sprintf("this week (%s → %s)", rangeStart.Format(DateFormat), rangeEnd.Format(DateFormat))
	case watch.Period == models.PeriodMonthly:
		when = fmt.Sprintf("monthly (%s)", watch.Month)
	case watch.Period == models.PeriodYearly:
		when = fmt.Sprintf("year %d", watch.Month.Year())
	case watch.Period == models.PeriodCustom && rangeStart != nil:
		when = fmt.Sprintf("%s → %s", rangeStart.Format(DateFormat), rangeEnd.Format(DateFormat))
	default:
		when = string(watch.Period)
	}

	return ActionResult{
		Messages: []string{fmt.Sprintf("✅ Watch created: Alert when %s reaches $%s %s.", watch.Category, watch.Threshold.String(), when)},
		Effects:  []Effect{{Type: EffectWatchCreated, ID: watch.ID}},
	}, nil
}

// Spending levels above which insights suggest saving tips.
var (
	foodTipThreshold          = decimal.NewFromInt(300)
	transitTipThreshold       = decimal.NewFromInt(150)
	subscriptionsTipThreshold = decimal.NewFromInt(100)
)

func (i *Interpreter) insights(ownerID uuid.UUID, query Query) (ActionResult, error) {
	r := i.resolver.Resolve(query.Text, query.Month, query.Timezone)

	all, err := i.store.Transactions(ownerID, models.TransactionFilter{})
	if err != nil {
		return ActionResult{}, err
	}

	within := FilterRange(all, r)
	total, ranked := TopCategories(within)
	days := decimal.NewFromInt(int64(r.Days()))
	avgPerDay := total.Div(days)
	projected := avgPerDay.Mul(days)

	messages := []string{
		fmt.Sprintf("🔍 Insights %s", r),
		fmt.Sprintf("• Total: $%s • Daily avg: $%s • Projected: ~$%s",
			total.StringFixed(2), avgPerDay.StringFixed(2), projected.StringFixed(2)),
	}

	if len(ranked) > 0 {
		messages = append(messages, "• Top categories:\n"+topThree(ranked))
	} else {
		messages = append(messages, "• No categorized spending.")
	}

	var tips []string
	for _, c := range ranked {
		switch {
		case c.Category == "Food" && c.Amount.GreaterThan(foodTipThreshold):
			tips = append(tips, "💡 Food is high — meal prep could help.")
		case c.Category == "Transit" && c.Amount.GreaterThan(transitTipThreshold):
			tips = append(tips, "💡 Consider a weekly/monthly transit pass.")
		case c.Category == "Subscriptions" && c.Amount.GreaterThan(subscriptionsTipThreshold):
			tips = append(tips, "💡 Review and cancel unused subscriptions.")
		}
	}
	if len(tips) > 0 {
		messages = append(messages, "")
		messages = append(messages, tips...)
	}

	return ActionResult{Messages: messages}, nil
}

func (i *Interpreter) mostSpent(ownerID uuid.UUID, query Query) (ActionResult, error) {
	r := i.resolver.Resolve(query.Text, query.Month, query.Timezone)

	all, err := i.store.Transactions(ownerID, models.TransactionFilter{})
	if err != nil {
		return ActionResult{}, err
	}

	within := FilterRange(all, r)
	if len(within) == 0 {
		return guidance(fmt.Sprintf("No expenses from %s to %s.", r.Start.Format(DateFormat), r.End.Format(DateFormat))), nil
	}

	total, ranked := TopCategories(within)
	if len(ranked) == 0 {
		return guidance("No categorized spending in that range."), nil
	}

	top := ranked[0]
	return ActionResult{Messages: []string{
		fmt.Sprintf("💰 From %s to %s, you spent the most on %s: $%s (%.1f%%)",
			r.Start.Format(DateFormat), r.End.Format(DateFormat), top.Category, top.Amount.StringFixed(2), percent(top.Amount, total)),
		"\nTop 3 Categories:\n" + topThree(ranked),
	}}, nil
}

func (i *Interpreter) monthlySummary(ownerID uuid.UUID, query Query) (ActionResult, error) {
	q := fold(query.Text)
	now := today(i.clock, query.Timezone)

	// A month named in the query beats the selected month.
	month, found := explicitMonthYear(q)
	if !found {
		if named, ok := bareMonth(q); ok {
			month, found = types.NewMonth(now.Year(), named), true
		}
	}
	if !found {
		month = query.Month
	}
	if month.IsZero() {
		month = types.MonthOf(now)
	}

	monthExpenses, err := i.store.Transactions(ownerID, models.TransactionFilter{Month: month})
	if err != nil {
		return ActionResult{}, err
	}

	total, ranked := TopCategories(monthExpenses)

	messages := []string{fmt.Sprintf("📊 Monthly Summary for %s:\nTotal Spent: $%s\nTransactions: %d",
		month, total.StringFixed(2), len(monthExpenses))}
	messages = appendBreakdown(messages, total, ranked)

	return ActionResult{Messages: messages}, nil
}

func (i *Interpreter) yearlySummary(ownerID uuid.UUID, query Query) (ActionResult, error) {
	year := query.Month.Year()
	if query.Month.IsZero() {
		year = today(i.clock, query.Timezone).Year()
	}

	all, err := i.store.Transactions(ownerID, models.TransactionFilter{})
	if err != nil {
		return ActionResult{}, err
	}

	var yearExpenses []models.Transaction
	months := make(map[types.Month]bool)
	for _, t := range all {
		if t.Date.UTC().Year() == year {
			yearExpenses = append(yearExpenses, t)
			months[types.MonthOf(t.Date.UTC())] = true
		}
	}

	total, ranked := TopCategories(yearExpenses)

	monthCount := int64(len(months))
	if monthCount == 0 {
		monthCount = 1
	}
	avgMonthly := total.Div(decimal.NewFromInt(monthCount))

	messages := []string{fmt.Sprintf("📊 Yearly Summary for %d:\nTotal Spent: $%s\nTransactions: %d\nAverage Monthly: $%s",
		year, total.StringFixed(2), len(yearExpenses), avgMonthly.StringFixed(2))}
	messages = appendBreakdown(messages, total, ranked)

	return ActionResult{Messages: messages}, nil
}

func fallbackHelp() ActionResult {
	return ActionResult{Messages: []string{
		"Try:",
		"• Add: 'Add 20 dollars for path' (+ optional { date: 'YYYY-MM-DD', month: 'YYYY-MM' })",
		"• Delete: 'delete 100 for coffee'",
		"• Goal: 'Set monthly goal 300 for food'",
		"• Watch: 'Watch food 500 weekly/monthly/yearly'",
		"• Chart: 'chart 7d', 'chart last week', 'chart May 2025', 'chart last month on food'",
		"• Insights: 'insights' (uses selected month by default)",
		"• Most spent: 'Most spent on this week?' / 'Most spent on May 2025'",
		"• Summary: 'monthly summary', 'yearly summary'",
	}}
}

func guidance(message string) ActionResult {
	return ActionResult{Messages: []string{message}}
}

func topThree(ranked []CategoryAmount) string {
	lines := make([]string, 0, 3)
	for i, c := range ranked {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s: $%s", i+1, c.Category, c.Amount.StringFixed(2)))
	}

	return strings.Join(lines, "\n")
}

func appendBreakdown(messages []string, total decimal.Decimal, ranked []CategoryAmount) []string {
	if len(ranked) == 0 {
		return messages
	}

	top := ranked[0]
	messages = append(messages, fmt.Sprintf("💰 Most spent on: %s ($%s - %.1f%%)",
		top.Category, top.Amount.StringFixed(2), percent(top.Amount, total)))

	lines := make([]string, 0, len(ranked))
	for _, c := range ranked {
		lines = append(lines, fmt.Sprintf("• %s: $%s", c.Category, c.Amount.StringFixed(2)))
	}

	return append(messages, "\nBreakdown by Category:\n"+strings.Join(lines, "\n"))
}

func listOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None"
	}

	return strings.Join(lines, "\n")
}
