package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/model/response"
	"todoapi/pkg/config"
	"todoapi/pkg/logging"
	"todoapi/pkg/telemetry"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *logging.AppLogger, cfg *config.AppConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.EnforceHTTPS {
		router.Use(middleware.HTTPSEnforcerMiddleware())
	}

	router.Use(otelgin.Middleware("todoapi"))

	if logger != nil {
		router.Use(middleware.LoggingMiddleware(logger))
	}

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitConfigs, metrics)
		router.Use(limiter.RateLimitMiddleware())
	}

	if handlers.AuthHandler != nil {
		setupPublicRoutes(router, handlers.AuthHandler)
	}

	if handlers.TodoHandler != nil {
		setupProtectedRoutes(router, handlers.TodoHandler)
	}

	// Anything unmatched, wrong method included, falls through to 404.
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.MessageResponse{Message: "Not found"})
	}
	router.NoRoute(notFound)
	router.HandleMethodNotAllowed = false

	return router
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	public := router.Group("/auth")
	{
		public.POST("/signup", authHandler.SignUp)
		public.POST("/login", authHandler.Login)
	}
}

func setupProtectedRoutes(router *gin.Engine, todoHandler *handler.TodoHandler) {
	protected := router.Group("/")
	protected.Use(middleware.JwtAuthMiddleware())
	{
		protected.GET("/todos", todoHandler.GetAllTodos)
		protected.POST("/todos", todoHandler.CreateTodo)
		protected.PUT("/todos/:id", todoHandler.UpdateTodo)
		protected.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}
}
