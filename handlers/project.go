package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type ProjectController struct {
	store catalog.Store
}

func NewProjectController(store catalog.Store) *ProjectController {
	return &ProjectController{store: store}
}

func (pc *ProjectController) ListProjects(c echo.Context) error {
	projects, err := pc.store.GetAllProjects(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch projects"})
	}
	return c.JSON(http.StatusOK, projects)
}

type projectDetailResponse struct {
	Project    models.Project    `json:"project"`
	Properties []models.Property `json:"properties"`
}

func (pc *ProjectController) GetProject(c echo.Context) error {
	ctx := c.Request().Context()

	project, err := pc.store.GetProject(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch project"})
	}

	properties, err := pc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch project"})
	}
	members := []models.Property{}
	for _, p := range properties {
		if p.ProjectID == project.ID {
			members = append(members, p)
		}
	}

	return c.JSON(http.StatusOK, projectDetailResponse{Project: project, Properties: members})
}

// CreateProject registers a development for the authenticated company.
// The drawn map boundary arrives as an ordered list of points and is
// validated by the store.
func (pc *ProjectController) CreateProject(c echo.Context) error {
	developerID := c.Get("developer_id").(string)
	if developerID == "" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Account is not linked to a developer"})
	}

	var project models.Project
	if err := c.Bind(&project); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.DeveloperID = developerID

	developer, err := pc.store.GetDeveloper(c.Request().Context(), developerID)
	if err == nil {
		project.Developer = developer.Name
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusPreSale
	}

	if err := pc.store.AddProject(c.Request().Context(), project); err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateID):
			return c.JSON(http.StatusConflict, map[string]string{"error": "Project with this id already exists"})
		case errors.Is(err, catalog.ErrUnknownDeveloper):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Account is not linked to a developer"})
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, project)
}

// CreateProperty appends a unit to one of the company's own projects.
func (pc *ProjectController) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	developerID := c.Get("developer_id").(string)
	userRole := c.Get("user_role").(string)

	project, err := pc.store.GetProject(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch project"})
	}
	if project.DeveloperID != developerID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to add units to this project"})
	}

	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	property.ProjectID = project.ID
	if property.Zone == "" {
		property.Zone = project.Zone
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}

	if err := pc.store.AddProperty(ctx, property); err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateID):
			return c.JSON(http.StatusConflict, map[string]string{"error": "Property with this id already exists"})
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, property)
}
