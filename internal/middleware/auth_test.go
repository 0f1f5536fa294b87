package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zenrio/internal/domain"
	jwtsvc "zenrio/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAdminReader struct {
	admins map[int64]*domain.AdminUser
	err    error
}

func (s *stubAdminReader) GetByID(_ context.Context, id int64) (*domain.AdminUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a, ok := s.admins[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func request(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCookieAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	r := gin.New()
	r.GET("/api/admin/eventos", CookieAuth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetInt64("admin_id")})
	})

	t.Run("no cookie", func(t *testing.T) {
		w := request(r, "/api/admin/eventos")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Não autenticado"}`, w.Body.String())
	})

	t.Run("tampered token", func(t *testing.T) {
		w := request(r, "/api/admin/eventos", &http.Cookie{Name: CookieName, Value: "nonsense"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwtsvc.New("test-secret", -time.Minute)
		token, err := expired.GenerateToken(7, "mestre")
		require.NoError(t, err)

		w := request(r, "/api/admin/eventos", &http.Cookie{Name: CookieName, Value: token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		token, err := jwt.GenerateToken(7, "mestre")
		require.NoError(t, err)

		w := request(r, "/api/admin/eventos", &http.Cookie{Name: CookieName, Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin_id":7}`, w.Body.String())
	})
}

func TestPageGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)

	r := gin.New()
	r.Use(PageGuard(jwt, []string{"/admin", "/drckadm"}, "/login"))
	for _, path := range []string{"/", "/login", "/eventos", "/admin/painel", "/drckadm"} {
		r.GET(path, func(c *gin.Context) { c.Status(http.StatusOK) })
	}

	t.Run("public paths pass without a session", func(t *testing.T) {
		for _, path := range []string{"/", "/login", "/eventos"} {
			w := request(r, path)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("protected path without a cookie redirects to login", func(t *testing.T) {
		w := request(r, "/admin/painel")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("tampered cookie redirects", func(t *testing.T) {
		w := request(r, "/drckadm", &http.Cookie{Name: CookieName, Value: "nonsense"})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("valid session passes through", func(t *testing.T) {
		token, err := jwt.GenerateToken(7, "mestre")
		require.NoError(t, err)

		w := request(r, "/admin/painel", &http.Cookie{Name: CookieName, Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireMaster(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := jwtsvc.New("test-secret", time.Hour)
	admins := &stubAdminReader{admins: map[int64]*domain.AdminUser{
		1: {ID: 1, Username: "mestre", IsMaster: true},
		2: {ID: 2, Username: "ajudante", IsMaster: false},
	}}

	r := gin.New()
	r.GET("/api/auth/admins", CookieAuth(jwt), RequireMaster(admins), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cookieFor := func(t *testing.T, id int64, username string) *http.Cookie {
		t.Helper()
		token, err := jwt.GenerateToken(id, username)
		require.NoError(t, err)
		return &http.Cookie{Name: CookieName, Value: token}
	}

	t.Run("master passes", func(t *testing.T) {
		w := request(r, "/api/auth/admins", cookieFor(t, 1, "mestre"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular admin gets 403", func(t *testing.T) {
		w := request(r, "/api/auth/admins", cookieFor(t, 2, "ajudante"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Apenas admin master pode acessar este recurso"}`, w.Body.String())
	})

	t.Run("token for a deleted admin gets 403", func(t *testing.T) {
		w := request(r, "/api/auth/admins", cookieFor(t, 99, "fantasma"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no session at all gets 401", func(t *testing.T) {
		w := request(r, "/api/auth/admins")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("store failure is a 500, not a refusal", func(t *testing.T) {
		broken := &stubAdminReader{err: errors.New("connection reset")}
		r := gin.New()
		r.GET("/api/auth/admins", CookieAuth(jwt), RequireMaster(broken), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := request(r, "/api/auth/admins", cookieFor(t, 1, "mestre"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, w.Body.String())
	})
}
