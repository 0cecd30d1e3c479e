// =============================================================================
// FILE: internal/routes/routes.go
// PURPOSE: Router assembly - every route the API serves, in one place
// =============================================================================

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"category-api/internal/config"
	"category-api/internal/handlers"
	"category-api/internal/middleware"
)

func NewRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	categoryHandler *handlers.CategoryHandler,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// gin.New instead of gin.Default - we bring our own logging middleware
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// API GROUP
	api := router.Group("/api")
	{
		// ======================================================================
		// CATEGORY ROUTES
		// ======================================================================
		categories := api.Group("/categories")
		{
			// POST /api/categories - Create a category
			categories.POST("", categoryHandler.CreateCategory)

			// GET /api/categories - List categories (paginated)
			categories.GET("", categoryHandler.ListCategories)

			// GET /api/categories/:id - Get one category
			// :id is a URL parameter - any value in that position is captured
			categories.GET("/:id", categoryHandler.GetCategory)

			// PUT /api/categories/:id - Update a category
			categories.PUT("/:id", categoryHandler.UpdateCategory)

			// DELETE /api/categories/:id - Delete a category
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}
	}

	// ==========================================================================
	// HEALTH CHECK ROUTE
	// ==========================================================================
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	return router
}
