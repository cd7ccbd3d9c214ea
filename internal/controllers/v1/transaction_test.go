package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestTransaction(user uuid.UUID, editable map[string]any) v1.TransactionResponse {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", editable, asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	user := uuid.New()

	response := suite.createTestTransaction(user, map[string]any{
		"date":        "2025-06-10T00:00:00Z",
		"description": "Coffee with Ana",
		"category":    "Food",
		"amount":      12.5,
	})

	assert := suite.Assert()
	assert.Equal(user, response.Data.OwnerID)
	assert.Equal("Coffee with Ana", response.Data.Description)
	assert.Equal("Food", response.Data.Category)
	assert.True(response.Data.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.NotEqual(uuid.Nil, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalidAmount() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", map[string]any{
		"date":        "2025-06-10T00:00:00Z",
		"description": "Free coffee",
		"amount":      0,
	}, asUser(uuid.New()))

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrAmountNotPositive.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", "", asUser(uuid.New()))

	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(httputil.ErrRequestBodyEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionListFilters() {
	user := uuid.New()

	suite.createTestTransaction(user, map[string]any{
		"date": "2025-06-10T00:00:00Z", "description": "coffee", "category": "Food", "amount": 4.5,
	})
	suite.createTestTransaction(user, map[string]any{
		"date": "2025-06-12T00:00:00Z", "description": "path", "category": "Transit", "amount": 2.75,
	})
	suite.createTestTransaction(user, map[string]any{
		"date": "2025-07-01T00:00:00Z", "description": "groceries", "category": "Food", "amount": 80,
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"month=2025-06", 2},
		{"month=2025-07", 1},
		{"category=Food", 2},
		{"month=2025-06&category=Food", 1},
		{"month=2025-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "", asUser(user))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionListScopedToUser() {
	suite.createTestTransaction(uuid.New(), map[string]any{
		"date": "2025-06-10T00:00:00Z", "description": "coffee", "amount": 4.5,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestTransactionListInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=rocktober", "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	user := uuid.New()
	response := suite.createTestTransaction(user, map[string]any{
		"date": "2025-06-10T00:00:00Z", "description": "coffee", "amount": 4.5,
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", response.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// A second delete finds nothing.
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", response.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDeleteOtherUser() {
	response := suite.createTestTransaction(uuid.New(), map[string]any{
		"date": "2025-06-10T00:00:00Z", "description": "coffee", "amount": 4.5,
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", response.Data.ID), "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDeleteInvalidID() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions/not-a-uuid", "", asUser(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsRequireUser() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")

	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
	suite.Assert().Equal(httputil.ErrUserNotSet.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
