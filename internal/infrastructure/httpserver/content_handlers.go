package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/application/services"
	"github.com/scenastudio/site-backend/internal/core/domain/content"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

// listContent serves the full cached content collection for public pages.
func (s *Server) listContent(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"loaded":  s.contentStore.Loaded(),
		"entries": s.contentStore.Entries(),
	})
}

// getContent resolves one key with an optional fallback value, mirroring how
// the site templates read content: absent keys are not an error.
func (s *Server) getContent(c echo.Context) error {
	key := c.Param("key")
	def := c.QueryParam("default")
	return c.JSON(http.StatusOK, map[string]string{
		"key":   key,
		"value": s.contentStore.Get(key, def),
	})
}

func (s *Server) contentSections(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"sections": s.contentEditor.Sections()})
}

func (s *Server) contentSuggestions(c echo.Context) error {
	suggestions := s.contentEditor.Suggestions()
	if suggestions == nil {
		suggestions = []content.CatalogEntry{}
	}
	return c.JSON(http.StatusOK, map[string]any{"suggestions": suggestions})
}

// startEditingContent stages an entry for editing and echoes the staged state.
func (s *Server) startEditingContent(c echo.Context) error {
	var entry content.Entry
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if entry.Key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "key is required"})
	}
	s.contentEditor.StartEditing(entry)
	return c.JSON(http.StatusOK, map[string]string{"key": entry.Key, "value": entry.Value})
}

type updateContentRequest struct {
	Value string `json:"value"`
}

// updateContent sets the staged value and commits it upstream.
func (s *Server) updateContent(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := s.contentEditor.SetValue(req.Value); err != nil {
		return echo.NewHTTPError(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	entry, err := s.contentEditor.Update(c.Request().Context(), token)
	if errors.Is(err, services.ErrNoStagedEntry) {
		return echo.NewHTTPError(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (s *Server) cancelEditingContent(c echo.Context) error {
	s.contentEditor.Cancel()
	return c.NoContent(http.StatusNoContent)
}

type addContentRequest struct {
	CatalogKey string `json:"catalog_key"`
	CustomKey  string `json:"custom_key"`
	Value      string `json:"value"`
}

func (s *Server) addContent(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var req addContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !s.contentEditor.CanAdd(req.CatalogKey, req.CustomKey) {
		return echo.NewHTTPError(http.StatusConflict, map[string]string{"error": "add not possible right now"})
	}
	entry, err := s.contentEditor.Add(c.Request().Context(), token, req.CatalogKey, req.CustomKey, req.Value)
	if errors.Is(err, services.ErrEmptyKey) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if errors.Is(err, services.ErrAddInFlight) {
		return echo.NewHTTPError(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// refreshContent forces a reload of the content cache from upstream.
func (s *Server) refreshContent(c echo.Context) error {
	s.contentStore.Refetch(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"loaded":  s.contentStore.Loaded(),
		"entries": s.contentStore.Entries(),
	})
}
