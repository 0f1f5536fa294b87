package analytics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientFor(server *httptest.Server, token, projectID, teamID string) *VercelClient {
	return &VercelClient{
		httpClient: server.Client(),
		baseURL:    server.URL,
		token:      token,
		projectID:  projectID,
		teamID:     teamID,
	}
}

func TestVercelClient_FetchViews(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"uniques":{"total":42},"views":{"total":90}}`))
	}))
	defer server.Close()

	client := clientFor(server, "tok", "prj_123", "team_zen")

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	report, err := client.FetchViews(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 42, report.Uniques.Total)
	assert.Equal(t, 90, report.Views.Total)

	assert.Equal(t, "/v9/projects/prj_123/analytics/views", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, []string{"2026-08-01"}, gotQuery["from"])
	assert.Equal(t, []string{"2026-08-31"}, gotQuery["to"])
	assert.Equal(t, []string{"team_zen"}, gotQuery["teamId"])
}

func TestVercelClient_NotConfigured(t *testing.T) {
	client := NewVercelClient("", "", "", time.Second)

	_, err := client.FetchViews(context.Background(), time.Now().AddDate(0, 0, -30), time.Now())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVercelClient_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := clientFor(server, "tok", "prj_123", "")

	_, err := client.FetchViews(context.Background(), time.Now().AddDate(0, 0, -30), time.Now())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVercelClient_OmitsEmptyTeamID(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := clientFor(server, "tok", "prj_123", "")

	_, err := client.FetchViews(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	_, present := gotQuery["teamId"]
	assert.False(t, present)
}
