package helpers

import (
	"github.com/labstack/echo/v4"
)

type ctxKey string

const (
	keyOperatorToken ctxKey = "operator_token"
)

// SetOperatorToken stashes the operator's upstream bearer token for the
// request. The token is opaque here; only the remote functions validate it.
func SetOperatorToken(c echo.Context, token string) { c.Set(string(keyOperatorToken), token) }

func GetOperatorTokenRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyOperatorToken))
	s, ok := v.(string)
	return s, ok && s != ""
}
