package events

import (
	"errors"
	"net/http"
	"strconv"

	"zenrio/internal/domain"
	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      *Service
	defaultLimit int
}

func NewHandler(service *Service, defaultLimit int) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/events", h.List)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/events", h.Create)
	r.PUT("/events", h.Update)
	r.DELETE("/events", h.Delete)
}

// List handles GET /events with optional date, location and type filters.
func (h *Handler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultLimit)))
	if err != nil || limit < 1 {
		limit = h.defaultLimit
	}

	filters := domain.EventFilters{
		Date:     c.Query("date"),
		Location: c.Query("location"),
		Type:     domain.EventType(c.Query("type")),
	}

	list, total, err := h.service.List(c.Request.Context(), page, limit, filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao buscar eventos")
		return
	}

	c.JSON(http.StatusOK, ListResponse{Events: list, Total: total})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados do evento incompletos")
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "Dados do evento incompletos")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Erro ao criar evento")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados do evento incompletos")
		return
	}

	event, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Dados do evento incompletos")
		case errors.Is(err, ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "Evento não encontrado")
		default:
			response.Error(c, http.StatusInternalServerError, "Erro ao atualizar evento")
		}
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events?id=. Deleting a missing id still answers
// {"success": true} so the operation is safely retryable.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "ID do evento inválido")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao excluir evento")
		return
	}

	response.OK(c, http.StatusOK)
}
