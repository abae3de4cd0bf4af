package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appctx "shopapi/internal/core/context"
)

// setUser injects an authenticated user the way Auth does, without a token.
func setUser(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
			UserID: 1,
			Email:  "user@example.com",
			Role:   role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func roleRouter(pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	chain := append(pre, RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", chain...)
	return router
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		router     *gin.Engine
		wantStatus int
	}{
		{"no user", roleRouter(), http.StatusUnauthorized},
		{"wrong role", roleRouter(setUser("customer")), http.StatusUnauthorized},
		{"matching role", roleRouter(setUser("admin")), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
