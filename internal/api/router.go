package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/config"
	"github.com/news-api/internal/observability"
	"github.com/news-api/internal/service"
)

const serviceName = "news-api"

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router. metrics may be nil.
func NewRouter(services *service.Services, health HealthChecker, metrics *observability.Metrics, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS))
	if metrics != nil {
		router.Use(metrics.Middleware())
	}

	// Handlers
	topicHandler := NewTopicHandler(services.Topic, log)
	userHandler := NewUserHandler(services.User, log)
	articleHandler := NewArticleHandler(services.Article, log)
	commentHandler := NewCommentHandler(services.Comment, log)

	router.GET("/health", healthCheck(health))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("", getEndpoints)

		topics := apiGroup.Group("/topics")
		{
			topics.GET("", topicHandler.List)
			topics.POST("", topicHandler.Create)
		}

		users := apiGroup.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:username", userHandler.Get)
		}

		articles := apiGroup.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/:article_id", articleHandler.Get)
			articles.PATCH("/:article_id", articleHandler.UpdateVotes)
			articles.DELETE("/:article_id", articleHandler.Delete)
			articles.GET("/:article_id/comments", commentHandler.ListForArticle)
			articles.POST("/:article_id/comments", commentHandler.Create)
		}

		comments := apiGroup.Group("/comments")
		{
			comments.PATCH("/:comment_id", commentHandler.UpdateVotes)
			comments.DELETE("/:comment_id", commentHandler.Delete)
		}
	}

	router.NoRoute(invalidPath)

	return router
}

// healthCheck returns the health status
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := health.HealthCheck(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}

// corsMiddleware handles CORS. An empty list or a "*" entry allows every origin.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	corsCfg.AllowAllOrigins = len(cfg.AllowedOrigins) == 0
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			break
		}
	}
	if !corsCfg.AllowAllOrigins {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	return cors.New(corsCfg)
}
