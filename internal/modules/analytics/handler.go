package analytics

import (
	"errors"
	"net/http"
	"time"

	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	fetcher ViewsFetcher
}

func NewHandler(fetcher ViewsFetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/analytics", h.Get)
}

// Get handles GET /analytics?timeRange=7d|30d|90d. An unreachable or
// misconfigured provider is a distinguishable failure, never partial data;
// the dashboard falls back to its own cached display.
func (h *Handler) Get(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -windowDays(c.Query("timeRange")))

	report, err := h.fetcher.FetchViews(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusInternalServerError, "Provedor de analytics não configurado")
			return
		}
		response.Error(c, http.StatusBadGateway, "Falha ao consultar o provedor de analytics")
		return
	}

	c.JSON(http.StatusOK, Transform(report))
}

func windowDays(timeRange string) int {
	switch timeRange {
	case "7d":
		return 7
	case "90d":
		return 90
	default: // "30d" and anything unrecognized
		return 30
	}
}
