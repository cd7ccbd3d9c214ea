package models

import (
	"fmt"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
)

// TransactionFilter restricts the transactions returned by a listing.
// The zero value matches everything.
type TransactionFilter struct {
	Month    types.Month // Calendar month the transaction date falls into
	Category string      // Exact category name
}

// Store exposes owner-scoped access to the records. It implements the
// assistant's RecordStore interface on top of the shared DB handle.
type Store struct{}

// NewStore returns a Store using the connected database.
func NewStore() *Store {
	return &Store{}
}

// Transactions lists an owner's transactions, oldest first.
func (*Store) Transactions(ownerID uuid.UUID, filter TransactionFilter) ([]Transaction, error) {
	tx := DB.Where(&Transaction{OwnerID: ownerID})

	if !filter.Month.IsZero() {
		tx = tx.Where("date >= ? AND date < ?", filter.Month.FirstDay(), filter.Month.AddDate(0, 1).FirstDay())
	}

	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	var transactions []Transaction
	err := tx.Order("created_at asc").Find(&transactions).Error
	return transactions, err
}

func (*Store) CreateTransaction(transaction *Transaction) error {
	return DB.Create(transaction).Error
}

func (*Store) DeleteTransaction(id, ownerID uuid.UUID) error {
	return deleteOwned[Transaction](id, ownerID, "transaction")
}

// Goals lists an owner's goals, oldest first. A non-zero month
// restricts the list to goals anchored to that month.
func (*Store) Goals(ownerID uuid.UUID, month types.Month) ([]Goal, error) {
	tx := DB.Where(&Goal{OwnerID: ownerID})

	if !month.IsZero() {
		tx = tx.Where("month = ?", month)
	}

	var goals []Goal
	err := tx.Order("created_at asc").Find(&goals).Error
	return goals, err
}

func (*Store) CreateGoal(goal *Goal) error {
	return DB.Create(goal).Error
}

func (*Store) DeleteGoal(id, ownerID uuid.UUID) error {
	return deleteOwned[Goal](id, ownerID, "goal")
}

// Watches lists an owner's spending watches, oldest first. A non-zero
// month restricts the list to watches anchored to that month.
func (*Store) Watches(ownerID uuid.UUID, month types.Month) ([]Watch, error) {
	tx := DB.Where(&Watch{OwnerID: ownerID})

	if !month.IsZero() {
		tx = tx.Where("month = ?", month)
	}

	var watches []Watch
	err := tx.Order("created_at asc").Find(&watches).Error
	return watches, err
}

func (*Store) CreateWatch(watch *Watch) error {
	return DB.Create(watch).Error
}

func (*Store) DeleteWatch(id, ownerID uuid.UUID) error {
	return deleteOwned[Watch](id, ownerID, "watch")
}

// deleteOwned deletes a record if it belongs to the owner. A record of
// another owner is reported as not found, not as forbidden.
func deleteOwned[T any](id, ownerID uuid.UUID, name string) error {
	res := DB.Where("id = ? AND owner_id = ?", id, ownerID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}

	return nil
}
