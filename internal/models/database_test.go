package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestConnectPersistsData() {
	file := test.TmpFile(suite.T())
	suite.Require().NoError(models.Connect(file))

	owner := uuid.New()
	transaction := models.Transaction{
		OwnerID:     owner,
		Description: "coffee",
		Category:    "Food",
		Amount:      decimal.NewFromInt(4),
	}
	suite.Require().NoError(models.NewStore().CreateTransaction(&transaction))

	suite.CloseDB()
	suite.Require().NoError(models.Connect(file))

	transactions, err := models.NewStore().Transactions(owner, models.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("coffee", transactions[0].Description)
}

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/this/path/does/not/exist/db.sqlite")
	suite.Assert().Error(err)

	// Restore the connection so the suite teardown has one to close.
	suite.Require().NoError(models.Connect(":memory:"))
}
