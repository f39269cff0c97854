package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/printhaus/go-shop-finance/internal/common/http"
)

var (
	errSecretKeyRequired = errors.New("required secret key")
	errSecretKeyInvalid  = errors.New("invalid secret key")
)

// InternalAuth guards back office operations behind the shared X-Secret-Key.
func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get("X-Secret-Key")
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyRequired)
			}

			if secretKey != m.conf.App.SecretKey {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errSecretKeyInvalid)
			}

			return next(c)
		}
	}
}
