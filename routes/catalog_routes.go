package routes

import (
	"github.com/coolleighton/InventoryApp/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the HTML catalog: the index page plus the
// create, delete, update, detail and list pages of every category.
func SetupCatalogRoutes(r *gin.RouterGroup, index *handlers.IndexHandler, categories ...handlers.CatalogHandler) {
	r.GET("", index.Index)

	for _, h := range categories {
		cars := r.Group("/" + h.Slug())
		{
			cars.GET("/create", h.CreateForm)
			cars.POST("/create", h.Create)

			cars.GET("/:id/delete", h.DeleteForm)
			cars.POST("/:id/delete", h.Delete)

			cars.GET("/:id/update", h.UpdateForm)
			cars.POST("/:id/update", h.Update)

			cars.GET("/:id", h.Detail)
			cars.GET("", h.List)
		}
	}
}

// SetupCatalogAPIRoutes sets up the read-only JSON view of the catalog.
func SetupCatalogAPIRoutes(r *gin.RouterGroup, inventory *handlers.InventoryAPIHandler, categories ...handlers.CatalogAPIHandler) {
	catalog := r.Group("/catalog")
	catalog.GET("", inventory.Counts)

	for _, h := range categories {
		cars := catalog.Group("/" + h.Slug())
		{
			cars.GET("", h.List)
			cars.GET("/:id", h.Get)
		}
	}
}
