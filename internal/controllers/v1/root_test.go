package v1_test

import (
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert := suite.Assert()
	assert.Equal("http://example.com/v1/assistant", response.Links.Assistant)
	assert.Equal("http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal("http://example.com/v1/goals", response.Links.Goals)
	assert.Equal("http://example.com/v1/watches", response.Links.Watches)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))
}
