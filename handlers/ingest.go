package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

type IngestController struct {
	store catalog.Store
}

func NewIngestController(store catalog.Store) *IngestController {
	return &IngestController{store: store}
}

type ingestResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportProperties bulk-loads units into a project from an uploaded xlsx
// workbook. The first sheet must carry a header row with the columns:
// title, description, price, zone, type, bedrooms, bathrooms, area,
// status (id is optional). Bad rows are reported and skipped; good rows
// are appended.
func (ic *IngestController) ImportProperties(c echo.Context) error {
	ctx := c.Request().Context()
	developerID := c.Get("developer_id").(string)
	userRole := c.Get("user_role").(string)

	project, err := ic.store.GetProject(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch project"})
	}
	if project.DeveloperID != developerID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "You are not authorized to import units into this project"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing file upload"})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to open uploaded file"})
	}
	defer src.Close()

	f, err := excelize.OpenReader(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to open xlsx"})
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Workbook has no sheets"})
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read rows from xlsx"})
	}
	if len(rows) < 2 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Workbook has no data rows"})
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"title", "price", "type", "bedrooms", "bathrooms", "area", "status"} {
		if _, ok := columns[required]; !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Missing column %q", required)})
		}
	}

	result := ingestResult{Errors: []string{}}
	for rowIdx, row := range rows[1:] {
		property, rowErr := propertyFromRow(row, columns, project)
		if rowErr == nil {
			rowErr = ic.store.AddProperty(ctx, property)
		}
		if rowErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowIdx+2, rowErr))
			continue
		}
		result.Imported++
	}
	return c.JSON(http.StatusOK, result)
}

func propertyFromRow(row []string, columns map[string]int, project models.Project) (models.Property, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return models.Property{}, fmt.Errorf("invalid price %q", cell("price"))
	}
	area, err := strconv.ParseFloat(cell("area"), 64)
	if err != nil {
		return models.Property{}, fmt.Errorf("invalid area %q", cell("area"))
	}
	bedrooms, err := strconv.Atoi(cell("bedrooms"))
	if err != nil {
		return models.Property{}, fmt.Errorf("invalid bedrooms %q", cell("bedrooms"))
	}
	bathrooms, err := strconv.Atoi(cell("bathrooms"))
	if err != nil {
		return models.Property{}, fmt.Errorf("invalid bathrooms %q", cell("bathrooms"))
	}

	property := models.Property{
		ID:          cell("id"),
		ProjectID:   project.ID,
		Title:       cell("title"),
		Description: cell("description"),
		Price:       price,
		Zone:        cell("zone"),
		Type:        cell("type"),
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Area:        area,
		Status:      cell("status"),
		Features:    []string{},
	}
	if property.ID == "" {
		property.ID = uuid.NewString()
	}
	if property.Zone == "" {
		property.Zone = project.Zone
	}
	return property, nil
}
