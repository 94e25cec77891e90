package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver/helpers"
)

// TokenMiddleware guards admin routes. The token itself is never validated
// here: it is extracted and forwarded to the remote functions, which reject
// it with 401 if it is stale or forged. This layer only refuses requests that
// carry no token at all.
type TokenMiddleware struct {
	logger *logrus.Logger
}

func NewTokenMiddleware(logger *logrus.Logger) *TokenMiddleware {
	return &TokenMiddleware{logger: logger}
}

func (m *TokenMiddleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := helpers.ExtractToken(c.Request())
			if token == "" {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{
						"method": c.Request().Method,
						"path":   c.Path(),
					}).Debug("Admin request without operator token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing operator token")
			}
			helpers.SetOperatorToken(c, token)
			return next(c)
		}
	}
}
