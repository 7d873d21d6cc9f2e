package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flowmeta/eventlog-service/internal/auth"
	"github.com/flowmeta/eventlog-service/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(reviewer auth.AccessReviewer, handlerCalled *bool, principal *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequiresAccess(reviewer, auth.ResourceAuditLog, auth.VerbGet, logging.NewNoOpLogger()))
	r.GET("/api/v1/eventLogs", func(c *gin.Context) {
		*handlerCalled = true
		if p, exists := c.Get(PrincipalKey); exists {
			*principal = p.(string)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequiresAccess_WhenValidKey_ThenForwardsWithPrincipal(t *testing.T) {
	var handlerCalled bool
	var principal string
	r := newAuthRouter(auth.NewStaticKeyReviewer([]string{"alice:key-1"}), &handlerCalled, &principal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/eventLogs", nil)
	req.Header.Set(APIKeyHeader, "key-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled)
	assert.Equal(t, "alice", principal)
}

func TestRequiresAccess_WhenMissingKey_ThenForbiddenBeforeHandler(t *testing.T) {
	var handlerCalled bool
	var principal string
	r := newAuthRouter(auth.NewStaticKeyReviewer([]string{"alice:key-1"}), &handlerCalled, &principal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/eventLogs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled, "handler must not run on denial")
}

func TestRequiresAccess_WhenUnknownKey_ThenForbidden(t *testing.T) {
	var handlerCalled bool
	var principal string
	r := newAuthRouter(auth.NewStaticKeyReviewer([]string{"alice:key-1"}), &handlerCalled, &principal)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/eventLogs", nil)
	req.Header.Set(APIKeyHeader, "wrong-key")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled)
}
