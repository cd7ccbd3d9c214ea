package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single expense of an owner.
type Transaction struct {
	DefaultModel
	OwnerID        uuid.UUID       `json:"ownerId" gorm:"index"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Merchant       string          `json:"merchant,omitempty"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	IsSubscription bool            `json:"isSubscription"`
	Notes          string          `json:"notes,omitempty"`
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave normalizes the transaction. The date defaults to the
// current day so that records created from "add 20 coffee" style
// commands without a date always land on "today".
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.Merchant = strings.TrimSpace(t.Merchant)
	t.Notes = strings.TrimSpace(t.Notes)

	return nil
}

// AfterSave validates the amount.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}
