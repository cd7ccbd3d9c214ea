package models_test

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestWatch(watch models.Watch) models.Watch {
	if watch.OwnerID == uuid.Nil {
		watch.OwnerID = uuid.New()
	}

	if watch.Threshold.IsZero() {
		watch.Threshold = decimal.NewFromInt(500)
	}

	err := models.NewStore().CreateWatch(&watch)
	if err != nil {
		suite.Assert().FailNow("Watch could not be saved", "Error: %s, Watch: %#v", err, watch)
	}

	return watch
}

func (suite *TestSuiteStandard) TestWatchPeriodDefaultsToMonthly() {
	watch := suite.createTestWatch(models.Watch{
		Category: "food",
		Month:    types.NewMonth(2025, 6),
	})

	assert.Equal(suite.T(), models.PeriodMonthly, watch.Period)
}

func (suite *TestSuiteStandard) TestWatchCustomNeedsRange() {
	start := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	watch := models.Watch{
		OwnerID:    uuid.New(),
		Category:   "food",
		Threshold:  decimal.NewFromInt(500),
		Period:     models.PeriodCustom,
		RangeStart: &start,
	}

	err := models.NewStore().CreateWatch(&watch)
	assert.ErrorIs(suite.T(), err, models.ErrWatchRangeIncomplete)

	end := time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)
	watch.RangeEnd = &end
	err = models.NewStore().CreateWatch(&watch)
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestWatchThresholdPositive() {
	watch := models.Watch{
		OwnerID:   uuid.New(),
		Category:  "food",
		Threshold: decimal.NewFromInt(-1),
	}

	err := models.NewStore().CreateWatch(&watch)
	assert.ErrorIs(suite.T(), err, models.ErrWatchThresholdNotSet)
}

func (suite *TestSuiteStandard) TestWatchOwnerRequired() {
	watch := models.Watch{Threshold: decimal.NewFromInt(500)}

	err := models.NewStore().CreateWatch(&watch)
	assert.ErrorIs(suite.T(), err, models.ErrOwnerRequired)
}
