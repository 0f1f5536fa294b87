package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	report *ViewsReport
	err    error
	from   time.Time
	to     time.Time
}

func (s *stubFetcher) FetchViews(_ context.Context, from, to time.Time) (*ViewsReport, error) {
	s.from, s.to = from, to
	return s.report, s.err
}

func analyticsRouter(fetcher ViewsFetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(fetcher).RegisterAdminRoutes(r.Group("/api"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestAnalyticsHandler_Get(t *testing.T) {
	stub := &stubFetcher{report: &ViewsReport{}}
	r := analyticsRouter(stub)

	w := get(r, "/api/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	var data Data
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, placeholderTopPages, data.TopPages)

	// The default window is 30 days.
	assert.InDelta(t, 30, stub.to.Sub(stub.from).Hours()/24, 1)
}

func TestAnalyticsHandler_TimeRange(t *testing.T) {
	stub := &stubFetcher{report: &ViewsReport{}}
	r := analyticsRouter(stub)

	w := get(r, "/api/analytics?timeRange=7d")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 7, stub.to.Sub(stub.from).Hours()/24, 1)

	w = get(r, "/api/analytics?timeRange=90d")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 90, stub.to.Sub(stub.from).Hours()/24, 1)
}

func TestAnalyticsHandler_Failures(t *testing.T) {
	t.Run("provider not configured", func(t *testing.T) {
		r := analyticsRouter(&stubFetcher{err: ErrNotConfigured})

		w := get(r, "/api/analytics")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Provedor de analytics não configurado"}`, w.Body.String())
	})

	t.Run("provider unreachable", func(t *testing.T) {
		r := analyticsRouter(&stubFetcher{err: ErrUpstream})

		w := get(r, "/api/analytics")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"Falha ao consultar o provedor de analytics"}`, w.Body.String())
	})
}
