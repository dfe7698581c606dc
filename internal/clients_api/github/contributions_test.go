package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mario-graph/internal/infra/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarResponse = `{
  "data": {
    "user": {
      "contributionsCollection": {
        "contributionCalendar": {
          "weeks": [
            {"contributionDays": [
              {"date": "2024-01-01", "contributionCount": 0},
              {"date": "2024-01-02", "contributionCount": 3}
            ]},
            {"contributionDays": [
              {"date": "2024-01-08", "contributionCount": 7}
            ]}
          ]
        }
      }
    }
  }
}`

func newTestServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req graphQLRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "contributionCalendar")
		assert.Equal(t, "alice", req.Variables["login"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestContributionDays_FlattensWeeks(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusOK, calendarResponse, &calls)
	c := NewClient(Options{Endpoint: srv.URL, Token: "secret"})

	days, err := c.ContributionDays(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, []ContributionDay{
		{Date: "2024-01-01", ContributionCount: 0},
		{Date: "2024-01-02", ContributionCount: 3},
		{Date: "2024-01-08", ContributionCount: 7},
	}, days)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestContributionDays_GraphQLErrors(t *testing.T) {
	var calls int32
	body := `{"data":null,"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User with the login of 'alice'."}]}`
	srv := newTestServer(t, http.StatusOK, body, &calls)
	c := NewClient(Options{Endpoint: srv.URL, Token: "secret"})

	_, err := c.ContributionDays(context.Background(), "alice")

	var gqlErr *GraphQLError
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, []string{"Could not resolve to a User with the login of 'alice'."}, gqlErr.Messages)
	assert.Contains(t, gqlErr.Detail, `"type": "NOT_FOUND"`)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestContributionDays_HTTPErrorIsNotRetriedByDefault(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusBadGateway, `{"message":"upstream"}`, &calls)
	c := NewClient(Options{Endpoint: srv.URL, Token: "secret"})

	_, err := c.ContributionDays(context.Background(), "alice")

	var he *retry.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadGateway, he.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestContributionDays_MissingCalendar(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusOK, `{"data":{"user":null}}`, &calls)
	c := NewClient(Options{Endpoint: srv.URL, Token: "secret"})

	_, err := c.ContributionDays(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNoContributionData)
}

func TestParseContributionDays_InvalidJSON(t *testing.T) {
	_, err := parseContributionDays([]byte("<html>rate limited</html>"))
	assert.Error(t, err)
}

func TestParseContributionDays_NullErrorsIgnored(t *testing.T) {
	days, err := parseContributionDays([]byte(`{"errors":null,"data":{"user":{"contributionsCollection":{"contributionCalendar":{"weeks":[]}}}}}`))
	require.NoError(t, err)
	assert.Empty(t, days)
}
