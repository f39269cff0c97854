package health

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/printhaus/go-shop-finance/internal/common/http"
)

const readinessTimeout = 2 * time.Second

// Check is a dependency the process cannot serve without.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type healthHandler struct {
	checks []Check
}

// New registers /health for liveness and /health/ready, which also pings every check.
func New(app *echo.Group, checks ...Check) {
	hh := healthHandler{checks: checks}
	app.GET("/health", hh.healthCheck)
	app.GET("/health/ready", hh.readinessCheck)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}

	DoHealthCheckReadinessResponse struct {
		Kind         string            `json:"kind" example:"readiness"`
		Status       string            `json:"status" example:"ready"`
		Dependencies map[string]string `json:"dependencies,omitempty"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Tags		Health
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

// readinessCheck godoc
// @Summary 	Check the dependencies of the server
// @Description	Ping every dependency; 503 when one of them is down
// @Tags		Health
// @Produce		json
// @Success 200 {object} DoHealthCheckReadinessResponse
// @Failure 503 {object} DoHealthCheckReadinessResponse
// @Router /health/ready [get]
func (hh healthHandler) readinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	res := DoHealthCheckReadinessResponse{Kind: "readiness", Status: "ready"}
	code := nethttp.StatusOK
	for _, check := range hh.checks {
		if res.Dependencies == nil {
			res.Dependencies = make(map[string]string, len(hh.checks))
		}
		if err := check.Ping(ctx); err != nil {
			res.Dependencies[check.Name] = err.Error()
			res.Status = "not ready"
			code = nethttp.StatusServiceUnavailable
			continue
		}
		res.Dependencies[check.Name] = "ok"
	}

	return http.RestSuccessResponse(c, code, res)
}
