package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
)

func TestAppMiddleware_Logger(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		handler      echo.HandlerFunc
		wantLogged   bool
		wantLevel    zapcore.Level
		wantResponse string
	}{
		{
			name: "success is info",
			path: "/api/v1/customers/:id",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": "CUS-1"})
			},
			wantLogged:   true,
			wantLevel:    zapcore.InfoLevel,
			wantResponse: `{"id":"CUS-1"}` + "\n",
		},
		{
			name: "client error is warn",
			path: "/api/v1/customers/:id",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusNotFound, map[string]string{"code": "404001"})
			},
			wantLogged:   true,
			wantLevel:    zapcore.WarnLevel,
			wantResponse: `{"code":"404001"}` + "\n",
		},
		{
			name: "returned error is rendered and logged as error",
			path: "/api/v1/customers/:id",
			handler: func(echo.Context) error {
				return assert.AnError
			},
			wantLogged: true,
			wantLevel:  zapcore.ErrorLevel,
		},
		{
			name: "csv body is summarized",
			path: "/api/v1/customers/:id/ledger",
			handler: func(c echo.Context) error {
				return c.Blob(http.StatusOK, "text/csv", []byte("date,kind\n2024-03-15,Order\n"))
			},
			wantLogged:   true,
			wantLevel:    zapcore.InfoLevel,
			wantResponse: "<csv 27 bytes>",
		},
		{
			name: "health is not logged",
			path: "/api/health",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			xlog.ReplaceForTest(zap.New(core))
			t.Cleanup(xlog.InitForTest)

			e := echo.New()
			m := NewMiddleware(config.Config{}, nil)
			req := httptest.NewRequest(http.MethodGet, "/x", strings.NewReader(`{"a":1}`))
			req.Header.Set(echo.HeaderAuthorization, "Bearer secret")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath(tt.path)

			require.NoError(t, m.Logger()(tt.handler)(c))

			entries := logs.All()
			if !tt.wantLogged {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, `{"a":1}`, fields["request_body"])
			assert.NotContains(t, fields["request_header"], "secret")
			if tt.wantResponse != "" {
				assert.Equal(t, tt.wantResponse, fields["response"])
			}
		})
	}
}

func Test_loggedBody(t *testing.T) {
	long := strings.Repeat("x", maxLoggedBody+10)
	got := loggedBody(echo.MIMEApplicationJSON, []byte(long))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.Len(t, got, maxLoggedBody+len("...(truncated)"))
	assert.Equal(t, "", loggedBody("", nil))
}
