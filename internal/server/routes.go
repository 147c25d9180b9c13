package server

import (
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	// Breach checker routes are public, they carry no account data
	e.POST("/api/check-breach", routes.CheckBreachHandler)
	e.POST("/api/check-password", routes.CheckPasswordHandler)

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Entity routes
	apiRoutes.GET("/dorks/entities", routes.GetEntitiesHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/dorks/entities", routes.CreateEntityHandler, middleware.RequirePermission("entity.create"))
	apiRoutes.GET("/dorks/entities/:id", routes.GetEntityHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.PATCH("/dorks/entities/:id", routes.EditEntityHandler, middleware.RequirePermission("entity.update"))
	apiRoutes.DELETE("/dorks/entities/:id", routes.DeleteEntityHandler, middleware.RequirePermission("entity.delete"))
	apiRoutes.GET("/dorks/entity-types", routes.GetEntityTypesHandler, middleware.RequirePermission("entity.view"))

	// Relationship graph routes
	apiRoutes.GET("/dorks/entities/:id/relationships", routes.GetEntityRelationshipsHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/dorks/entities/:id/graph", routes.GetEntityGraphHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/dorks/entities/:id/graph/export", routes.GetGraphExportHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/dorks/relationships", routes.CreateRelationshipHandler, middleware.RequirePermission("relationship.create"))
	apiRoutes.PATCH("/dorks/relationships/:id", routes.EditRelationshipHandler, middleware.RequirePermission("relationship.update"))
	apiRoutes.DELETE("/dorks/relationships/:id", routes.DeleteRelationshipHandler, middleware.RequirePermission("relationship.delete"))

	// Template and session routes
	apiRoutes.GET("/dorks/templates", routes.GetTemplatesHandler, middleware.RequireAnyPermission("entity.view", "session.create"))
	apiRoutes.GET("/dorks/entities/:id/preview", routes.GetTemplatePreviewHandler, middleware.RequireAnyPermission("entity.view", "session.create"))
	apiRoutes.POST("/dorks/sessions", routes.CreateSessionHandler, middleware.RequirePermission("session.create"))
	apiRoutes.GET("/dorks/sessions/:id", routes.GetSessionHandler, middleware.RequirePermission("session.view"))
	apiRoutes.GET("/dorks/sessions/:id/results", routes.GetSessionResultsHandler, middleware.RequirePermission("session.view"))
	apiRoutes.GET("/dorks/entities/:id/sessions", routes.GetEntitySessionsHandler, middleware.RequirePermission("session.view"))

	// Dork catalog routes
	apiRoutes.GET("/dorks", routes.GetDorksHandler, middleware.RequirePermission("dork.view"))
	apiRoutes.POST("/dorks", routes.CreateDorkHandler, middleware.RequirePermission("dork.create"))
	apiRoutes.PATCH("/dorks/:id", routes.EditDorkHandler, middleware.RequirePermission("dork.update"))
	apiRoutes.DELETE("/dorks/:id", routes.DeleteDorkHandler, middleware.RequirePermission("dork.delete"))
	apiRoutes.GET("/dorks/categories", routes.GetDorkCategoriesHandler, middleware.RequirePermission("dork.view"))

	// Crawler routes
	apiRoutes.GET("/crawler/jobs", routes.GetCrawlJobsHandler, middleware.RequirePermission("crawl.view"))
	apiRoutes.POST("/crawler/jobs", routes.CreateCrawlJobHandler, middleware.RequirePermission("crawl.create"))
	apiRoutes.GET("/crawler/jobs/:id", routes.GetCrawlJobHandler, middleware.RequirePermission("crawl.view"))
	apiRoutes.DELETE("/crawler/jobs/:id", routes.DeleteCrawlJobHandler, middleware.RequirePermission("crawl.delete"))
	apiRoutes.GET("/crawler/jobs/:id/profiles", routes.GetJobProfilesHandler, middleware.RequirePermission("crawl.view"))
	apiRoutes.GET("/crawler/jobs/:id/posts", routes.GetJobPostsHandler, middleware.RequirePermission("crawl.view"))
}
