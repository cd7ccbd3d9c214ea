package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestGoal(goal models.Goal) models.Goal {
	if goal.OwnerID == uuid.Nil {
		goal.OwnerID = uuid.New()
	}

	if goal.Limit.IsZero() {
		goal.Limit = decimal.NewFromInt(300)
	}

	err := models.NewStore().CreateGoal(&goal)
	if err != nil {
		suite.Assert().FailNow("Goal could not be saved", "Error: %s, Goal: %#v", err, goal)
	}

	return goal
}

func (suite *TestSuiteStandard) TestGoalPeriodDefaultsToMonthly() {
	goal := suite.createTestGoal(models.Goal{
		Label: "Stay under $300 monthly",
		Month: types.NewMonth(2025, 6),
	})

	assert.Equal(suite.T(), models.PeriodMonthly, goal.Period)
}

func (suite *TestSuiteStandard) TestGoalOwnerRequired() {
	goal := models.Goal{Limit: decimal.NewFromInt(300)}

	err := models.NewStore().CreateGoal(&goal)
	assert.ErrorIs(suite.T(), err, models.ErrOwnerRequired)
}

func (suite *TestSuiteStandard) TestGoalLimitPositive() {
	goal := models.Goal{
		OwnerID: uuid.New(),
		Label:   "impossible",
		Limit:   decimal.NewFromInt(0),
	}

	err := models.NewStore().CreateGoal(&goal)
	assert.ErrorIs(suite.T(), err, models.ErrGoalLimitNotPositive)
}

func (suite *TestSuiteStandard) TestGoalTrimsFields() {
	goal := suite.createTestGoal(models.Goal{
		Label:    "  Stay under $500 weekly  ",
		Category: " food ",
	})

	assert.Equal(suite.T(), "Stay under $500 weekly", goal.Label)
	assert.Equal(suite.T(), "food", goal.Category)
}
