package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/core/domain/lead"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

// createLead is the public enrollment endpoint. Rate limiting happens in
// route middleware; conversion and notification side effects run inside the
// service and never fail the submission.
func (s *Server) createLead(c echo.Context) error {
	var req lead.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.leadSvc.Create(c.Request().Context(), &req)
	if errors.Is(err, lead.ErrPhoneRequired) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) listLeads(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	leads, err := s.leadSvc.List(c.Request().Context(), token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, leads)
}

type updateLeadStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateLeadStatus(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateLeadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "status is required"})
	}
	updated, err := s.leadSvc.UpdateStatus(c.Request().Context(), id, req.Status, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
