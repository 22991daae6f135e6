package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

// criteriaFromQuery builds a FilterCriteria from the listing query
// params. Anything absent or unparseable keeps its default, so a bad
// param never turns into an error response.
func criteriaFromQuery(c echo.Context) models.FilterCriteria {
	criteria := models.DefaultCriteria()

	criteria.Zones = splitParam(c.QueryParam("zones"))
	criteria.Types = splitParam(c.QueryParam("types"))
	criteria.Statuses = splitParam(c.QueryParam("statuses"))

	for _, raw := range splitParam(c.QueryParam("bedrooms")) {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			criteria.Bedrooms = append(criteria.Bedrooms, n)
		}
	}

	if raw := c.QueryParam("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.PriceMin = v
		}
	}
	if raw := c.QueryParam("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.PriceMax = v
		}
	}
	if raw := c.QueryParam("area_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.AreaMin = v
		}
	}
	if raw := c.QueryParam("area_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.AreaMax = v
		}
	}

	criteria.Search = c.QueryParam("search")
	return criteria
}

func splitParam(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
