package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scenastudio/site-backend/internal/infrastructure/upstream"
)

// upstreamError translates a failed remote call into an HTTP error. Upstream
// status codes pass through so the admin UI can distinguish 401 from 500;
// transport failures surface as 502.
func upstreamError(err error) error {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return echo.NewHTTPError(se.Status, map[string]string{"error": se.Body})
	}
	return echo.NewHTTPError(http.StatusBadGateway, map[string]string{"error": "upstream request failed"})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	return id, nil
}
