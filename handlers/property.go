package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/engine"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/utils"
)

type PropertyController struct {
	store catalog.Store
	cache *redis.Client
}

func NewPropertyController(store catalog.Store, cache *redis.Client) *PropertyController {
	return &PropertyController{store: store, cache: cache}
}

type propertyListResponse struct {
	Total      int               `json:"total"`
	Properties []models.Property `json:"properties"`
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	properties, err := pc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	filtered := engine.FilterProperties(properties, criteriaFromQuery(c))
	total := len(filtered)

	page := 1
	limit := 0
	if p := c.QueryParam("page"); p != "" {
		if num, err := strconv.Atoi(p); err == nil && num > 0 {
			page = num
		}
	}
	if l := c.QueryParam("limit"); l != "" {
		if num, err := strconv.Atoi(l); err == nil && num > 0 {
			limit = num
		}
	}
	if limit > 0 {
		start := (page - 1) * limit
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		filtered = filtered[start:end]
	}

	return c.JSON(http.StatusOK, propertyListResponse{Total: total, Properties: filtered})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	cacheKey := "property:" + id
	if pc.cache != nil {
		var cached models.Property
		if hit, err := utils.GetCached(ctx, pc.cache, cacheKey, &cached); err == nil && hit {
			return c.JSON(http.StatusOK, cached)
		}
	}

	property, err := pc.store.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if pc.cache != nil {
		_ = utils.SetCached(ctx, pc.cache, cacheKey, property, 30*time.Second)
	}
	return c.JSON(http.StatusOK, property)
}
