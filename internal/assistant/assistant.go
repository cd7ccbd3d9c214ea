// Package assistant interprets free-text spending queries. A query in
// English or Spanish is classified into exactly one intent, its
// entities (amounts, dates, categories, periods) are extracted, and
// the matching action runs against the store. Every query produces a
// result: commands either perform their action or answer with guidance
// on what was missing, and unrecognized queries get a help listing.
package assistant

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
)

// Query is one free-text request against a user's spending data.
type Query struct {
	// Text is the free-text query.
	Text string `json:"query"`

	// Month is the month selected in the UI, used as the default
	// temporal context. Optional.
	Month types.Month `json:"month"`

	// Date pins an add command to an exact day, overriding any date
	// found in the text. Optional, format 2006-01-02.
	Date string `json:"date"`

	// Timezone is an IANA timezone name used to determine "today".
	// Optional; unknown or empty values mean UTC.
	Timezone string `json:"tz"`
}

// Effect describes a state change an action performed.
type Effect struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
}

// Effect types, one per mutating action.
const (
	EffectExpenseCreated = "expense_created"
	EffectExpenseDeleted = "expense_deleted"
	EffectGoalCreated    = "goal_created"
	EffectWatchCreated   = "watch_created"
	EffectWatchDeleted   = "watch_deleted"
)

// ChartSummary aggregates a chart's range.
type ChartSummary struct {
	Total   string    `json:"total"`
	Average string    `json:"avg"`
	Peak    DayAmount `json:"peak"`
}

// Chart is the payload of a chart query.
type Chart struct {
	Range            Range           `json:"range"`
	Category         string          `json:"category"`
	Summary          ChartSummary    `json:"summary"`
	Series           []DayAmount     `json:"series"`
	WeekdayBreakdown []WeekdayAmount `json:"weekdayBreakdown"`
}

// ActionResult is what a query produced: user-facing messages, the
// effects of any state changes, and the chart payload for chart
// queries.
type ActionResult struct {
	Messages []string `json:"messages"`
	Effects  []Effect `json:"effects,omitempty"`
	Chart    *Chart   `json:"chart,omitempty"`
}

// RecordStore is the persistence the interpreter acts on.
type RecordStore interface {
	Transactions(ownerID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(transaction *models.Transaction) error
	DeleteTransaction(id, ownerID uuid.UUID) error

	Goals(ownerID uuid.UUID, month types.Month) ([]models.Goal, error)
	CreateGoal(goal *models.Goal) error

	Watches(ownerID uuid.UUID, month types.Month) ([]models.Watch, error)
	CreateWatch(watch *models.Watch) error
	DeleteWatch(id, ownerID uuid.UUID) error
}

// Interpreter executes free-text queries against a store.
type Interpreter struct {
	store    RecordStore
	clock    Clock
	resolver *Resolver
}

// New returns an Interpreter on the system clock.
func New(store RecordStore) *Interpreter {
	return NewWithClock(store, systemClock{})
}

// NewWithClock returns an Interpreter using the given clock for
// "today". Tests use this to pin time.
func NewWithClock(store RecordStore, clock Clock) *Interpreter {
	return &Interpreter{store: store, clock: clock, resolver: NewResolver(clock)}
}

// Interpret classifies the query and runs the matching action for the
// given user. The error return is reserved for store failures; queries
// the interpreter cannot act on still succeed and explain themselves in
// the result's messages.
func (i *Interpreter) Interpret(ownerID uuid.UUID, query Query) (ActionResult, error) {
	switch Classify(query.Text) {
	case IntentChart:
		return i.chart(ownerID, query)
	case IntentAddExpense:
		return i.addExpense(ownerID, query)
	case IntentDeleteWatch:
		return i.deleteWatch(ownerID, query)
	case IntentDeleteExpense:
		return i.deleteExpense(ownerID, query)
	case IntentCreateGoal:
		return i.createGoal(ownerID, query)
	case IntentCreateWatch:
		return i.createWatch(ownerID, query)
	case IntentInsights:
		return i.insights(ownerID, query)
	case IntentMostSpent:
		return i.mostSpent(ownerID, query)
	case IntentMonthlySummary:
		return i.monthlySummary(ownerID, query)
	case IntentYearlySummary:
		return i.yearlySummary(ownerID, query)
	default:
		return fallbackHelp(), nil
	}
}
