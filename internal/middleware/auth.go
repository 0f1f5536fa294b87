package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"zenrio/internal/domain"
	jwtsvc "zenrio/internal/pkg/jwt"
	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CookieName is the session cookie holding the signed admin token.
const CookieName = "admin_token"

// AdminReader is the slice of the credential store the guard needs.
type AdminReader interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
}

// CookieAuth gates admin API routes on the session cookie. A missing,
// tampered or expired token aborts with 401; the body never says which.
// On success, the decoded identity lands in the context for handlers.
func CookieAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// PageGuard protects the admin page prefixes. Requests without a valid
// session are redirected to the login page before any handler runs; valid
// sessions pass through unchanged. Non-matching paths are untouched.
func PageGuard(jwt *jwtsvc.Service, prefixes []string, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		matched := false
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				matched = true
				break
			}
		}
		if !matched || path == loginPath {
			c.Next()
			return
		}

		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// RequireMaster refines CookieAuth for the admin-management endpoints. The
// master flag is re-read from the store, not trusted from the token, so a
// demoted or deleted account loses access immediately.
func RequireMaster(admins AdminReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetInt64("admin_id")
		if adminID == 0 {
			response.Error(c, http.StatusUnauthorized, "Não autenticado")
			c.Abort()
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), adminID)
		if err != nil {
			// A token for a deleted account is a refusal; anything else
			// is a store failure.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusForbidden, "Apenas admin master pode acessar este recurso")
			} else {
				response.Error(c, http.StatusInternalServerError, "Erro interno do servidor")
			}
			c.Abort()
			return
		}
		if !admin.IsMaster {
			response.Error(c, http.StatusForbidden, "Apenas admin master pode acessar este recurso")
			c.Abort()
			return
		}

		c.Next()
	}
}
