package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/engine"
)

type ExportController struct {
	store catalog.Store
}

func NewExportController(store catalog.Store) *ExportController {
	return &ExportController{store: store}
}

var exportHeader = []string{
	"id", "projectId", "title", "price", "zone", "type",
	"bedrooms", "bathrooms", "area", "status",
}

// ExportProperties streams the filtered catalog as a csv download. It
// accepts the same query params as the property listing.
func (ec *ExportController) ExportProperties(c echo.Context) error {
	ctx := c.Request().Context()

	properties, err := ec.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	filtered := engine.FilterProperties(properties, criteriaFromQuery(c))

	filename := fmt.Sprintf("propiedades-%s.csv", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range filtered {
		record := []string{
			p.ID,
			p.ProjectID,
			p.Title,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.Zone,
			p.Type,
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.Bathrooms),
			strconv.FormatFloat(p.Area, 'f', -1, 64),
			p.Status,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
