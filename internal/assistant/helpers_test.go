package assistant_test

import (
	"time"

	"github.com/centsible/backend/internal/assistant"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testNow is the fixed instant the interpreter tests run at. It is a
// Wednesday so that week arithmetic is visible in the expectations.
var testNow = time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeStore is an in-memory RecordStore.
type fakeStore struct {
	transactions []models.Transaction
	goals        []models.Goal
	watches      []models.Watch
}

func (s *fakeStore) Transactions(ownerID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.OwnerID != ownerID {
			continue
		}

		if !filter.Month.IsZero() {
			if t.Date.Before(filter.Month.FirstDay()) || !t.Date.Before(filter.Month.AddDate(0, 1).FirstDay()) {
				continue
			}
		}

		if filter.Category != "" && t.Category != filter.Category {
			continue
		}

		out = append(out, t)
	}

	return out, nil
}

func (s *fakeStore) CreateTransaction(transaction *models.Transaction) error {
	transaction.ID = uuid.New()
	s.transactions = append(s.transactions, *transaction)
	return nil
}

func (s *fakeStore) DeleteTransaction(id, ownerID uuid.UUID) error {
	for i, t := range s.transactions {
		if t.ID == id && t.OwnerID == ownerID {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}

	return models.ErrResourceNotFound
}

func (s *fakeStore) Goals(ownerID uuid.UUID, month types.Month) ([]models.Goal, error) {
	var out []models.Goal
	for _, g := range s.goals {
		if g.OwnerID != ownerID {
			continue
		}

		if !month.IsZero() && !g.Month.Equal(month) {
			continue
		}

		out = append(out, g)
	}

	return out, nil
}

func (s *fakeStore) CreateGoal(goal *models.Goal) error {
	goal.ID = uuid.New()
	s.goals = append(s.goals, *goal)
	return nil
}

func (s *fakeStore) Watches(ownerID uuid.UUID, month types.Month) ([]models.Watch, error) {
	var out []models.Watch
	for _, w := range s.watches {
		if w.OwnerID != ownerID {
			continue
		}

		if !month.IsZero() && !w.Month.Equal(month) {
			continue
		}

		out = append(out, w)
	}

	return out, nil
}

func (s *fakeStore) CreateWatch(watch *models.Watch) error {
	watch.ID = uuid.New()
	s.watches = append(s.watches, *watch)
	return nil
}

func (s *fakeStore) DeleteWatch(id, ownerID uuid.UUID) error {
	for i, w := range s.watches {
		if w.ID == id && w.OwnerID == ownerID {
			s.watches = append(s.watches[:i], s.watches[i+1:]...)
			return nil
		}
	}

	return models.ErrResourceNotFound
}

func newTestInterpreter() (*assistant.Interpreter, *fakeStore) {
	store := &fakeStore{}
	return assistant.NewWithClock(store, fixedClock{now: testNow}), store
}

func transaction(ownerID uuid.UUID, date string, description, category string, amount float64) models.Transaction {
	day, _ := time.Parse("2006-01-02", date)

	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		OwnerID:      ownerID,
		Date:         day,
		Description:  description,
		Category:     category,
		Amount:       decimal.NewFromFloat(amount),
	}
}
