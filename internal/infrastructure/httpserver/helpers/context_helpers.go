package helpers

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// GetOperatorTokenFromContext returns the operator token set by the token
// middleware, or a 401 error when the request carried none.
func GetOperatorTokenFromContext(c echo.Context) (string, error) {
	token, ok := GetOperatorTokenRaw(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing operator token")
	}
	return token, nil
}

// ExtractToken pulls the operator token from the request: the Authorization
// Bearer header wins, with the X-Auth-Token header as a fallback for callers
// that mirror the upstream convention.
func ExtractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		if token := strings.TrimPrefix(auth, "Bearer "); token != "" {
			return token
		}
	}
	return r.Header.Get("X-Auth-Token")
}

// ClientIP resolves the originating client address, preferring the first
// X-Forwarded-For hop set by the fronting proxy.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
