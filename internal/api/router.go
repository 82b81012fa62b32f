package api

import (
	"net/http"
	"time"

	"github.com/blogging-platform/internal/auth"
	"github.com/blogging-platform/internal/config"
	"github.com/blogging-platform/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, codec *auth.TokenCodec, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))

	// Server-rendered views
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	// Handlers
	authHandler := NewAuthHandler(services, cfg, log)
	articleHandler := NewArticleHandler(services, log)
	homeHandler := NewHomeHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Public pages
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/home")
	})
	router.GET("/login", authHandler.ShowLogin)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/admin/home", homeHandler.Home)
	router.GET("/admin/article/:id", homeHandler.ShowArticle)

	// Authenticated admin area
	admin := router.Group("", authRequired(codec))
	{
		admin.GET("/dashboard", articleHandler.Dashboard)
		admin.GET("/add-article", articleHandler.ShowAddArticle)
		admin.POST("/add-article", articleHandler.AddArticle)
		admin.GET("/edit-article/:id", articleHandler.ShowEditArticle)
		admin.PUT("/edit-article/:id", articleHandler.EditArticle)
		admin.DELETE("/delete-article/:id", articleHandler.DeleteArticle)
		admin.GET("/publish-article/:id", articleHandler.PublishArticle)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blogging-platform",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}
