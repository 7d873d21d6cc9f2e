package middleware

import (
	"github.com/flowmeta/eventlog-service/internal/api/response"
	"github.com/flowmeta/eventlog-service/internal/auth"
	"github.com/flowmeta/eventlog-service/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// APIKeyHeader carries the caller's API key.
	APIKeyHeader = "X-API-Key"
	// PrincipalKey is the context key under which the authorized principal
	// is stored for handlers and logging.
	PrincipalKey = "principal"
)

// RequiresAccess gates a route group on an access review for the given
// resource entity and verb. It runs before any handler, so a denied request
// never reaches the database. Denials are 403s; no distinction is made
// between a missing key and an unauthorized one.
func RequiresAccess(reviewer auth.AccessReviewer, resource, verb string, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)

		principal, allowed := reviewer.Review(apiKey, resource, verb)
		if !allowed {
			logger.Warn("access denied",
				zap.String("resource", resource),
				zap.String("verb", verb),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", response.GetRequestID(c)),
			)
			response.Forbidden(c, "forbidden")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}
