package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login proxies credentials to the remote auth function and passes its JSON
// response through untouched, token and all.
func (s *Server) login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	raw, err := s.authAPI.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

func (s *Server) register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	raw, err := s.authAPI.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return upstreamError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}
