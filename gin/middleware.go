package gin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitenav/sitenav"
)

const requestIDHeader = "X-Request-ID"

// requestLogger assigns each request an ID and logs method, path,
// status and duration after the handler chain completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		begin := time.Now()
		c.Next()
		elapsed := time.Since(begin)

		s.logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", elapsed,
		)
		s.recordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), elapsed)
	}
}

// recovery converts panics into an opaque 500 response. Pages embedding
// the widget never see internal detail.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"results": []sitenav.ScoredSection{},
					"message": "Internal error.",
				})
			}
		}()
		c.Next()
	}
}

// cors allows calls from any page origin. The widget is injected into
// arbitrary third-party sites, so the API cannot restrict callers.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
