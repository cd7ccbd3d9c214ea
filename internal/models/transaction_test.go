package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestTransaction(transaction models.Transaction) models.Transaction {
	if transaction.OwnerID == uuid.Nil {
		transaction.OwnerID = uuid.New()
	}

	if transaction.Amount.IsZero() {
		transaction.Amount = decimal.NewFromInt(10)
	}

	err := models.NewStore().CreateTransaction(&transaction)
	if err != nil {
		suite.Assert().FailNow("Transaction could not be saved", "Error: %s, Transaction: %#v", err, transaction)
	}

	return transaction
}

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{
		Date: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}

	err := transaction.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionSaveTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	transaction := models.Transaction{OwnerID: uuid.New()}
	err := transaction.BeforeSave(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")

	transaction = models.Transaction{
		OwnerID: uuid.New(),
		Date:    time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}
	err = transaction.BeforeSave(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionOwnerRequired() {
	transaction := models.Transaction{
		Amount: decimal.NewFromInt(10),
	}

	err := models.NewStore().CreateTransaction(&transaction)
	assert.ErrorIs(suite.T(), err, models.ErrOwnerRequired)
}

func (suite *TestSuiteStandard) TestTransactionAmountPositive() {
	tests := []struct {
		name   string
		amount decimal.Decimal
		err    error
	}{
		{"positive", decimal.NewFromFloat(12.5), nil},
		{"zero", decimal.NewFromInt(0), models.ErrAmountNotPositive},
		{"negative", decimal.NewFromInt(-7), models.ErrAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := models.Transaction{
				OwnerID: uuid.New(),
				Amount:  tt.amount,
			}

			err := models.NewStore().CreateTransaction(&transaction)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimsFields() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "  coffee  ",
		Category:    " Food ",
		Merchant:    " Blue Bottle ",
	})

	assert.Equal(suite.T(), "coffee", transaction.Description)
	assert.Equal(suite.T(), "Food", transaction.Category)
	assert.Equal(suite.T(), "Blue Bottle", transaction.Merchant)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "lunch"})

	assert.WithinDuration(suite.T(), time.Now().In(time.UTC), transaction.Date, time.Minute)
}
