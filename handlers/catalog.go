package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/engine"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type CatalogController struct {
	store catalog.Store
}

func NewCatalogController(store catalog.Store) *CatalogController {
	return &CatalogController{store: store}
}

type browseResponse struct {
	Mode        string                `json:"mode"` // "grouped" or "flat"
	Total       int                   `json:"total"`
	DeveloperID string                `json:"developerId,omitempty"`
	Groups      []engine.ProjectGroup `json:"groups,omitempty"`
	Properties  []models.Property     `json:"properties,omitempty"`
}

// Browse is the storefront view: developer scope first, then the filter
// engine, then grouped-by-project when nothing is restricted and a flat
// list otherwise. Totals come from the path actually displayed.
func (cc *CatalogController) Browse(c echo.Context) error {
	ctx := c.Request().Context()

	properties, err := cc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}
	projects, err := cc.store.GetAllProjects(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}
	developers, err := cc.store.GetAllDevelopers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}

	developerID := c.QueryParam("developer")
	criteria := criteriaFromQuery(c)

	resp := buildBrowseResponse(properties, projects, developers, developerID, criteria)
	return c.JSON(http.StatusOK, resp)
}

func buildBrowseResponse(properties []models.Property, projects []models.Project, developers []models.Developer, developerID string, criteria models.FilterCriteria) browseResponse {
	scopedProperties, scopedProjects := engine.ScopeToDeveloper(properties, projects, developers, developerID)
	filtered := engine.FilterProperties(scopedProperties, criteria)

	if engine.HasActiveFilters(criteria, models.DefaultCriteria()) {
		return browseResponse{
			Mode:        "flat",
			Total:       len(filtered),
			DeveloperID: developerID,
			Properties:  filtered,
		}
	}

	groups := engine.GroupByProject(filtered, scopedProjects)
	return browseResponse{
		Mode:        "grouped",
		Total:       engine.CountGrouped(groups),
		DeveloperID: developerID,
		Groups:      groups,
	}
}

func (cc *CatalogController) Zones(c echo.Context) error {
	ctx := c.Request().Context()

	properties, err := cc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}
	projects, err := cc.store.GetAllProjects(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}

	return c.JSON(http.StatusOK, engine.BuildCatalogMeta(properties, projects))
}
