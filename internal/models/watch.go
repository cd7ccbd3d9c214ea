package models

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Watch is an alert threshold for a category over a period. In contrast
// to a Goal it does not express a target, it triggers a notification
// when spending reaches the threshold.
type Watch struct {
	DefaultModel
	OwnerID    uuid.UUID       `json:"ownerId" gorm:"index"`
	Category   string          `json:"category"`
	Threshold  decimal.Decimal `json:"threshold" gorm:"type:DECIMAL(20,8)"`
	Period     Period          `json:"period"`
	Month      types.Month     `json:"month"`                // Anchor month for weekly/monthly/yearly watches
	RangeStart *time.Time      `json:"rangeStart,omitempty"` // Set for weekly and custom watches
	RangeEnd   *time.Time      `json:"rangeEnd,omitempty"`   // Set for weekly and custom watches
}

func (w *Watch) BeforeSave(_ *gorm.DB) error {
	if w.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if w.Period == "" {
		w.Period = PeriodMonthly
	}

	if w.Period == PeriodCustom && (w.RangeStart == nil || w.RangeEnd == nil) {
		return ErrWatchRangeIncomplete
	}

	w.Category = strings.TrimSpace(w.Category)

	return nil
}

func (w *Watch) AfterSave(_ *gorm.DB) error {
	if !w.Threshold.IsPositive() {
		return ErrWatchThresholdNotSet
	}

	return nil
}
