package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
)

// Context loads the correlation id, idempotency key and source into the request
// context and echoes the correlation id back to the caller.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(ctxdata.HeaderCorrelationID, ctxdata.GetCorrelationId(ctx))
			return next(c)
		}
	}
}
