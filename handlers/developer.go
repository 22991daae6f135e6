package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/engine"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type DeveloperController struct {
	store catalog.Store
}

func NewDeveloperController(store catalog.Store) *DeveloperController {
	return &DeveloperController{store: store}
}

func (dc *DeveloperController) ListDevelopers(c echo.Context) error {
	developers, err := dc.store.GetAllDevelopers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch developers"})
	}
	return c.JSON(http.StatusOK, developers)
}

type micrositeResponse struct {
	Developer  models.Developer  `json:"developer"`
	Projects   []models.Project  `json:"projects"`
	Properties []models.Property `json:"properties"`
}

// GetDeveloper returns the microsite payload: the developer record plus
// the catalog narrowed to its projects.
func (dc *DeveloperController) GetDeveloper(c echo.Context) error {
	ctx := c.Request().Context()

	developer, err := dc.store.GetDeveloper(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Developer not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch developer"})
	}

	properties, err := dc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch developer catalog"})
	}
	projects, err := dc.store.GetAllProjects(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch developer catalog"})
	}
	developers, err := dc.store.GetAllDevelopers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch developer catalog"})
	}

	scopedProperties, scopedProjects := engine.ScopeToDeveloper(properties, projects, developers, developer.ID)
	return c.JSON(http.StatusOK, micrositeResponse{
		Developer:  developer,
		Projects:   scopedProjects,
		Properties: scopedProperties,
	})
}
