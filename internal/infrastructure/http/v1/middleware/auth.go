package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	appctx "shopapi/internal/core/context"
	"shopapi/internal/infrastructure/auth"
)

// Auth middleware validates bearer tokens and populates user context.
func Auth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		user := claims.UserContext()
		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", user.UserID)

		c.Next()
	}
}

// OptionalAuth validates a token when present but does not require one.
func OptionalAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		if claims, err := tokens.Parse(parts[1]); err == nil {
			user := claims.UserContext()
			ctx := appctx.WithUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
			c.Set("user_id", user.UserID)
		}

		c.Next()
	}
}

// RequireRole middleware checks if the authenticated user has one of the roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appctx.GetUser(c.Request.Context()) == nil {
			abortUnauthorized(c, "authentication required")
			return
		}

		for _, required := range roles {
			if appctx.HasRole(c.Request.Context(), required) {
				c.Next()
				return
			}
		}
		_ = c.Error(
			apperror.NewUnauthorized("insufficient permissions").
				WithDetail("required_roles", roles),
		)
		c.Abort()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
