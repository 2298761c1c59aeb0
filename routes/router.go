package routes

import (
	"fmt"
	"net/http"

	"github.com/coolleighton/InventoryApp/internal/handlers"
	"github.com/coolleighton/InventoryApp/internal/middleware"
	"github.com/coolleighton/InventoryApp/internal/models"
	"github.com/coolleighton/InventoryApp/internal/utils"
	"github.com/coolleighton/InventoryApp/pkg/logger"
	"github.com/coolleighton/InventoryApp/web"

	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Index        *handlers.IndexHandler
	Cars         []handlers.CatalogHandler
	InventoryAPI *handlers.InventoryAPIHandler
	CarsAPI      []handlers.CatalogAPIHandler
	Health       *handlers.HealthHandler
}

type RouterConfig struct {
	CORSOrigins []string
	Logger      *logger.Logger
}

// NewRouter builds the gin engine with global middleware, the HTML
// templates and every route.
func NewRouter(cfg RouterConfig, h Handlers) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)

	// Global middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	router.Use(middleware.LoggingMiddleware(cfg.Logger))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, models.CatalogPath)
	})

	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}

	SetupCatalogRoutes(router.Group(models.CatalogPath), h.Index, h.Cars...)

	v1 := router.Group("/api/v1")
	{
		SetupCatalogAPIRoutes(v1, h.InventoryAPI, h.CarsAPI...)
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error", gin.H{
			"title":   utils.TitleError,
			"message": "Page not found",
			"status":  http.StatusNotFound,
		})
	})

	return router, nil
}
