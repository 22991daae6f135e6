package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/catalog"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/session"
)

// SessionController carries a visitor's browse state between requests:
// the SPA equivalent of keeping filters and the selected developer in
// page state. Only the query lives in the session; results are always
// recomputed from the live catalog.
type SessionController struct {
	sessions session.Store
	store    catalog.Store
}

func NewSessionController(sessions session.Store, store catalog.Store) *SessionController {
	return &SessionController{sessions: sessions, store: store}
}

func (sc *SessionController) CreateSession(c echo.Context) error {
	s := session.NewBrowseSession()
	if err := sc.sessions.Put(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create session"})
	}
	return c.JSON(http.StatusCreated, s)
}

func (sc *SessionController) GetSession(c echo.Context) error {
	s, err := sc.sessions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch session"})
	}
	return c.JSON(http.StatusOK, s)
}

func (sc *SessionController) UpdateCriteria(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := sc.sessions.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch session"})
	}

	var criteria models.FilterCriteria
	if err := c.Bind(&criteria); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	s.SetCriteria(criteria)

	if err := sc.sessions.Put(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save session"})
	}
	return c.JSON(http.StatusOK, s)
}

// SelectDeveloper switches the session's microsite scope, which resets
// criteria and search text to defaults.
func (sc *SessionController) SelectDeveloper(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := sc.sessions.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch session"})
	}

	var req struct {
		DeveloperID string `json:"developerId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	s.SelectDeveloper(req.DeveloperID)

	if err := sc.sessions.Put(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save session"})
	}
	return c.JSON(http.StatusOK, s)
}

// Results recomputes the session's view: scope, then filter, then the
// grouped or flat display depending on whether any filter is active.
func (sc *SessionController) Results(c echo.Context) error {
	ctx := c.Request().Context()

	s, err := sc.sessions.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch session"})
	}

	properties, err := sc.store.GetAllProperties(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}
	projects, err := sc.store.GetAllProjects(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}
	developers, err := sc.store.GetAllDevelopers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch catalog"})
	}

	resp := buildBrowseResponse(properties, projects, developers, s.DeveloperID, s.Criteria)
	return c.JSON(http.StatusOK, resp)
}
