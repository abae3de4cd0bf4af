package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/core/apperror"
)

// The middleware chain mirrors the router: Recovery outermost, then Trace
// and ErrorHandler.
func panicChain(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.Use(Trace())
	router.Use(ErrorHandler())
	router.GET("/boom", handler)
	return router
}

func TestRecovery_PanicReturns500(t *testing.T) {
	router := panicChain(func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apperror.CodeInternal)
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestRecovery_PanicAfterPartialWrite(t *testing.T) {
	router := panicChain(func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	// The status line already went out; the recovery must not crash the
	// server while handling it.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) {
	router := panicChain(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}
