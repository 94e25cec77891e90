package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/core/domain/messaging"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

func (s *Server) whatsAppQueue(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	items, err := s.messagingSvc.Queue(c.Request().Context(), token, c.QueryParam("status"))
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) deleteWhatsAppQueueItem(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.messagingSvc.DeleteQueueItem(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// deleteWhatsAppQueueByPhone removes every queued message for one phone, used
// when a lead asks to stop receiving messages.
func (s *Server) deleteWhatsAppQueueByPhone(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "phone is required"})
	}
	if err := s.messagingSvc.DeleteQueueByPhone(c.Request().Context(), phone, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type sendNowRequest struct {
	QueueID int `json:"queue_id"`
}

func (s *Server) whatsAppSendNow(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var req sendNowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.QueueID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "queue_id is required"})
	}
	raw, err := s.messagingSvc.SendNow(c.Request().Context(), req.QueueID, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (s *Server) whatsAppTemplates(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	templates, err := s.messagingSvc.Templates(c.Request().Context(), token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, templates)
}

func (s *Server) createWhatsAppTemplate(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	var t messaging.Template
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	created, err := s.messagingSvc.CreateTemplate(c.Request().Context(), &t, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateWhatsAppTemplate(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var t messaging.Template
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	t.ID = id
	updated, err := s.messagingSvc.UpdateTemplate(c.Request().Context(), &t, token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteWhatsAppTemplate(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.messagingSvc.DeleteTemplate(c.Request().Context(), id, token); err != nil {
		return upstreamError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) whatsAppStats(c echo.Context) error {
	token, err := helpers.GetOperatorTokenFromContext(c)
	if err != nil {
		return err
	}
	stats, err := s.messagingSvc.Stats(c.Request().Context(), token)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) processWhatsAppQueue(c echo.Context) error {
	raw, err := s.messagingSvc.ProcessQueue(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}
