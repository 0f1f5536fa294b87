package auth

import (
	"errors"
	"net/http"

	"zenrio/internal/middleware"
	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface of admin authentication, including the
// session cookie lifecycle.
type Handler struct {
	service      *Service
	cookieMaxAge int
	cookieSecure bool
}

func NewHandler(service *Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/verify", h.Verify)
		authGroup.POST("/register-admin", h.RegisterAdmin)
	}
}

// RegisterMasterRoutes mounts the account-management endpoints; the caller
// wraps them with the session guard plus the master check.
func (h *Handler) RegisterMasterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/admins", h.ListAdmins)
		authGroup.POST("/add-admin", h.AddAdmin)
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", h.cookieSecure, true)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest,
			"Credenciais incompletas", "Username e password são obrigatórios")
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Credenciais inválidas")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	h.setSessionCookie(c, token, h.cookieMaxAge)
	response.OK(c, http.StatusOK)
}

// Logout invalidates the session by overwriting the cookie with an empty,
// already-expired value. Tokens are self-contained, so there is nothing to
// revoke server-side.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, http.StatusOK)
}

func (h *Handler) Verify(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	user, err := h.service.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}

// RegisterAdmin is the secret-gated first-setup endpoint.
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados de registro incompletos")
		return
	}

	admin, err := h.service.RegisterFirstAdmin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSecret):
			response.Error(c, http.StatusForbidden, "Não autorizado")
		case errors.Is(err, ErrRegistrationClosed):
			response.Error(c, http.StatusForbidden, "Já existe um administrador registrado")
		default:
			response.Error(c, http.StatusInternalServerError, "Erro ao registrar administrador")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    gin.H{"id": admin.ID, "username": admin.Username},
	})
}

func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao listar administradores")
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *Handler) AddAdmin(c *gin.Context) {
	var req AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Dados do administrador incompletos")
		return
	}

	admin, err := h.service.AddAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "Nome de usuário já existe")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Erro ao adicionar administrador")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    gin.H{"id": admin.ID, "username": admin.Username},
	})
}
