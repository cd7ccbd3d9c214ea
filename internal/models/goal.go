package models

import (
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a spending limit the owner wants to stay under for a period.
type Goal struct {
	DefaultModel
	OwnerID  uuid.UUID       `json:"ownerId" gorm:"index"`
	Label    string          `json:"label"`
	Category string          `json:"category,omitempty"`
	Limit    decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
	Month    types.Month     `json:"month"` // Anchor month for the period
	Period   Period          `json:"period"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	if g.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	if g.Period == "" {
		g.Period = PeriodMonthly
	}

	g.Label = strings.TrimSpace(g.Label)
	g.Category = strings.TrimSpace(g.Category)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Limit.IsPositive() {
		return ErrGoalLimitNotPositive
	}

	return nil
}
