package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"zenrio/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an id, honoring one supplied by a
// proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// ErrorLogger logs request outcomes and recovers from panics. Failure
// detail stays in the server log; clients get a generic 500 body.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf(
					"panic request_id=%s method=%s path=%s recovered=%v stack=%s",
					c.GetString("request_id"), c.Request.Method, c.Request.URL.Path,
					recovered, debug.Stack(),
				)
				response.Error(c, http.StatusInternalServerError, "Erro interno do servidor")
				c.Abort()
				return
			}

			status := c.Writer.Status()
			if status >= http.StatusInternalServerError {
				log.Printf(
					"request_error status=%d method=%s path=%s query=%s client_ip=%s request_id=%s latency=%s errors=%v",
					status, c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery,
					c.ClientIP(), c.GetString("request_id"), time.Since(start), c.Errors.Errors(),
				)
			}
		}()

		c.Next()
	}
}
