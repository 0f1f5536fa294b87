package articles

import (
	"errors"
	"net/http"

	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/artigos", h.List)
	r.GET("/artigos/:slug", h.Get)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/artigos", h.Create)
	r.PUT("/artigos/:slug", h.Update)
	r.DELETE("/artigos/:slug", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao buscar artigos")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "Artigo não encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Erro ao buscar artigo")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados do artigo incompletos")
		return
	}

	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidSlug):
			response.Error(c, http.StatusBadRequest, "Dados do artigo inválidos")
		case errors.Is(err, ErrSlugTaken):
			response.Error(c, http.StatusConflict, "Slug já está em uso")
		default:
			response.Error(c, http.StatusInternalServerError, "Erro ao criar artigo")
		}
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados do artigo incompletos")
		return
	}

	article, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Dados do artigo inválidos")
		case errors.Is(err, ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, "Artigo não encontrado")
		default:
			response.Error(c, http.StatusInternalServerError, "Erro ao atualizar artigo")
		}
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao excluir artigo")
		return
	}
	response.OK(c, http.StatusOK)
}
