package middleware

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/infrastructure/storage/postgres"
)

// UnitOfWork middleware creates a fresh unit of work for every request and
// injects it into the request context. Services find it there, stage their
// mutations on it and commit via SaveChanges. This middleware must run
// before any handler that touches the database.
func UnitOfWork(pool *postgres.Pool, opts ...func(*postgres.UnitOfWork)) gin.HandlerFunc {
	return func(c *gin.Context) {
		uow := postgres.NewUnitOfWork(pool)
		for _, opt := range opts {
			opt(uow)
		}

		ctx := postgres.WithUnitOfWork(c.Request.Context(), uow)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
