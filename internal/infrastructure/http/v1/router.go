// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"shopapi/internal/domain/account"
	"shopapi/internal/domain/address"
	"shopapi/internal/domain/cart"
	"shopapi/internal/domain/cartitem"
	"shopapi/internal/domain/category"
	"shopapi/internal/domain/order"
	"shopapi/internal/domain/orderitem"
	"shopapi/internal/domain/product"
	"shopapi/internal/domain/user"
	"shopapi/internal/infrastructure/auth"
	"shopapi/internal/infrastructure/http/v1/handlers"
	"shopapi/internal/infrastructure/http/v1/middleware"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool.
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// Tokens signs and verifies access tokens.
	Tokens *auth.TokenIssuer

	// StatementTimeout bounds every SaveChanges transaction. Zero keeps the
	// unit of work default.
	StatementTimeout time.Duration
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth, no database work besides the ping)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	productHandler := handlers.NewProductHandler(base, product.NewService())
	categoryHandler := handlers.NewCategoryHandler(base, category.NewService())
	userHandler := handlers.NewUserHandler(base, user.NewService())
	addressHandler := handlers.NewAddressHandler(base, address.NewService())
	orderHandler := handlers.NewOrderHandler(base, order.NewService())
	orderItemHandler := handlers.NewOrderItemHandler(base, orderitem.NewService())
	cartItemHandler := handlers.NewCartItemHandler(base, cartitem.NewService())
	cartHandler := handlers.NewCartHandler(base, cart.NewService())
	auditHandler := handlers.NewAuditHandler(base)
	accountHandler := handlers.NewAccountHandler(base, account.NewService(cfg.Tokens))

	uowOpts := []func(*postgres.UnitOfWork){}
	if cfg.StatementTimeout > 0 {
		uowOpts = append(uowOpts, func(u *postgres.UnitOfWork) {
			u.SetStatementTimeout(cfg.StatementTimeout)
		})
	}

	api := router.Group("/api")
	api.Use(middleware.UnitOfWork(cfg.Pool, uowOpts...))
	{
		// Account endpoints are open.
		accountGroup := api.Group("/account")
		{
			accountGroup.POST("/register", accountHandler.Register)
			accountGroup.POST("/login", accountHandler.Login)
		}

		// Catalog reads are open, token context is attached when present.
		open := api.Group("")
		open.Use(middleware.OptionalAuth(cfg.Tokens))
		{
			open.GET("/products", productHandler.List)
			open.GET("/products/:id", productHandler.Get)
			open.GET("/products/category/:categoryId", productHandler.ByCategory)
			open.GET("/products/search", productHandler.Search)
			open.GET("/products/filter", productHandler.FilterByPrice)
			open.GET("/products/sort/price", productHandler.SortByPrice)

			open.GET("/categories", categoryHandler.List)
			open.GET("/categories/:id", categoryHandler.Get)
		}

		// Everything else needs a valid token.
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.Tokens))
		{
			protected.POST("/products", productHandler.Create)
			protected.PUT("/products/:id", productHandler.Update)
			protected.DELETE("/products/:id", productHandler.Delete)

			protected.POST("/categories", categoryHandler.Create)
			protected.PUT("/categories/:id", categoryHandler.Update)
			protected.DELETE("/categories/:id", categoryHandler.Delete)

			// User management is restricted to administrators.
			admin := protected.Group("/users")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("", userHandler.List)
				admin.GET("/:id", userHandler.Get)
				admin.POST("", userHandler.Create)
				admin.PUT("/:id", userHandler.Update)
				admin.DELETE("/:id", userHandler.Delete)
			}

			protected.GET("/addresses", addressHandler.List)
			protected.GET("/addresses/:id", addressHandler.Get)
			protected.GET("/addresses/user/:userId", addressHandler.ByUser)
			protected.POST("/addresses", addressHandler.Create)
			protected.PUT("/addresses/:id", addressHandler.Update)
			protected.DELETE("/addresses/:id", addressHandler.Delete)

			protected.GET("/orders", orderHandler.List)
			protected.GET("/orders/:id", orderHandler.Get)
			protected.GET("/orders/user/:userId", orderHandler.ByUser)
			protected.POST("/orders", orderHandler.Create)
			protected.PUT("/orders/:id", orderHandler.Update)
			protected.DELETE("/orders/:id", orderHandler.Delete)

			protected.GET("/orderitems", orderItemHandler.List)
			protected.GET("/orderitems/:id", orderItemHandler.Get)
			protected.GET("/orderitems/order/:orderId", orderItemHandler.ByOrder)
			protected.POST("/orderitems", orderItemHandler.Create)
			protected.PUT("/orderitems/:id", orderItemHandler.Update)
			protected.DELETE("/orderitems/:id", orderItemHandler.Delete)

			protected.GET("/cartitems", cartItemHandler.List)
			protected.GET("/cartitems/:id", cartItemHandler.Get)
			protected.POST("/cartitems", cartItemHandler.Create)
			protected.PUT("/cartitems/:id", cartItemHandler.Update)
			protected.DELETE("/cartitems/:id", cartItemHandler.Delete)

			protected.GET("/carts/:userId", cartHandler.Get)
			protected.POST("/carts/:userId", cartHandler.Create)
			protected.PUT("/carts/:userId", cartHandler.Update)
			protected.DELETE("/carts/:userId", cartHandler.Delete)

			// Change history is restricted to administrators.
			protected.GET("/audit/:entityType/:id", middleware.RequireRole("admin"), auditHandler.Trail)
		}
	}

	return router
}
