package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrNotConfigured = errors.New("analytics provider not configured")
	ErrUpstream      = errors.New("analytics provider request failed")
)

const vercelBaseURL = "https://api.vercel.com"

// ViewsFetcher abstracts the upstream analytics provider.
type ViewsFetcher interface {
	FetchViews(ctx context.Context, from, to time.Time) (*ViewsReport, error)
}

// VercelClient fetches view statistics from the Vercel analytics API.
type VercelClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	projectID  string
	teamID     string
}

func NewVercelClient(token, projectID, teamID string, timeout time.Duration) *VercelClient {
	return &VercelClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    vercelBaseURL,
		token:      token,
		projectID:  projectID,
		teamID:     teamID,
	}
}

// FetchViews queries the project's view stats for the given window. A
// missing token or project id fails fast with ErrNotConfigured; any
// transport or non-2xx outcome wraps ErrUpstream.
func (c *VercelClient) FetchViews(ctx context.Context, from, to time.Time) (*ViewsReport, error) {
	if c.token == "" || c.projectID == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v9/projects/%s/analytics/views", c.baseURL, url.PathEscape(c.projectID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	if c.teamID != "" {
		q.Set("teamId", c.teamID)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var report ViewsReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return &report, nil
}
