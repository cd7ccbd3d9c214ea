package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) createTestWatch(user uuid.UUID, editable map[string]any) v1.WatchResponse {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/watches", editable, asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.WatchResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestWatchCreate() {
	user := uuid.New()

	response := suite.createTestWatch(user, map[string]any{
		"category":  "Food",
		"threshold": 500,
		"period":    "weekly",
		"month":     "2025-06-01",
	})

	assert := suite.Assert()
	assert.Equal(user, response.Data.OwnerID)
	assert.Equal("Food", response.Data.Category)
	assert.Equal(models.PeriodWeekly, response.Data.Period)
}

func (suite *TestSuiteStandard) TestWatchCreateCustomRange() {
	response := suite.createTestWatch(uuid.New(), map[string]any{
		"category":   "Food",
		"threshold":  500,
		"period":     "custom",
		"rangeStart": "2025-09-10T00:00:00Z",
		"rangeEnd":   "2025-09-17T00:00:00Z",
	})

	assert := suite.Assert()
	assert.Equal(models.PeriodCustom, response.Data.Period)
	suite.Require().NotNil(response.Data.RangeStart)
	suite.Require().NotNil(response.Data.RangeEnd)
	assert.Equal("2025-09-10", response.Data.RangeStart.Format("2006-01-02"))
}

func (suite *TestSuiteStandard) TestWatchCreateCustomWithoutRange() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/watches", map[string]any{
		"category": "Food", "threshold": 500, "period": "custom",
	}, asUser(uuid.New()))

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrWatchRangeIncomplete.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestWatchList() {
	user := uuid.New()
	suite.createTestWatch(user, map[string]any{"category": "Food", "threshold": 500})
	suite.createTestWatch(uuid.New(), map[string]any{"category": "Transit", "threshold": 100})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/watches", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WatchListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	// A watch without a period defaults to monthly.
	suite.Assert().Equal(models.PeriodMonthly, response.Data[0].Period)
}

func (suite *TestSuiteStandard) TestWatchListMonthFilter() {
	user := uuid.New()
	suite.createTestWatch(user, map[string]any{"category": "Food", "threshold": 500, "month": "2025-06"})
	suite.createTestWatch(user, map[string]any{"category": "Shoes", "threshold": 200, "month": "2025-07"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/watches?month=2025-06", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WatchListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Food", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestWatchListInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/watches?month=rocktober", "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWatchDelete() {
	user := uuid.New()
	response := suite.createTestWatch(user, map[string]any{"category": "Food", "threshold": 500})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/watches/%s", response.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/watches/%s", response.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestWatchesRequireUser() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/watches", map[string]any{"threshold": 500})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
