package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/handlers"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/middleware"
)

type Controllers struct {
	Catalog   *handlers.CatalogController
	Property  *handlers.PropertyController
	Project   *handlers.ProjectController
	Developer *handlers.DeveloperController
	User      *handlers.UserController
	Session   *handlers.SessionController
	Export    *handlers.ExportController
	Ingest    *handlers.IngestController
}

func RegisterRoutes(e *echo.Echo, ctl Controllers) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	api.GET("/catalog", ctl.Catalog.Browse)
	api.GET("/zones", ctl.Catalog.Zones)

	api.GET("/properties", ctl.Property.ListProperties)
	api.GET("/properties/:id", ctl.Property.GetProperty)

	api.GET("/projects", ctl.Project.ListProjects)
	api.GET("/projects/:id", ctl.Project.GetProject)

	api.GET("/developers", ctl.Developer.ListDevelopers)
	api.GET("/developers/:id", ctl.Developer.GetDeveloper)

	api.GET("/export", ctl.Export.ExportProperties)

	api.POST("/session", ctl.Session.CreateSession)
	api.GET("/session/:id", ctl.Session.GetSession)
	api.PUT("/session/:id/criteria", ctl.Session.UpdateCriteria)
	api.PUT("/session/:id/developer", ctl.Session.SelectDeveloper)
	api.GET("/session/:id/results", ctl.Session.Results)

	api.POST("/auth/register", ctl.User.Register)
	api.POST("/auth/login", ctl.User.Login)
	api.GET("/auth/profile", ctl.User.GetProfile, middleware.JWTMiddleware())

	admin := api.Group("/admin", middleware.JWTMiddleware())
	admin.POST("/projects", ctl.Project.CreateProject)
	admin.POST("/projects/:id/properties", ctl.Project.CreateProperty)
	admin.POST("/projects/:id/properties/import", ctl.Ingest.ImportProperties)
}
