package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

const (
	maxLoggedBody = 4 << 10
	maskedValue   = "*****"
)

var (
	excludedLogPaths = []string{"/api/health", "/api/health/ready", "/metrics", "/swagger/*"}

	sensitiveHeaders = map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
		"x-secret-key":  {},
	}
)

// bodyDumpResponseWriter tees the response into a buffer for the access log.
type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	err := http.NewResponseController(w.ResponseWriter).Flush()
	if err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// readRequestBody drains the request body and puts back a replayable copy.
func readRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, err
}

// getResponseBodyBuffer tees everything written to the response into the returned buffer.
func (m *AppMiddleware) getResponseBodyBuffer(c echo.Context) *bytes.Buffer {
	resBody := new(bytes.Buffer)
	res := c.Response()
	res.Writer = &bodyDumpResponseWriter{Writer: io.MultiWriter(res.Writer, resBody), ResponseWriter: res.Writer}
	return resBody
}

func maskedHeaders(h http.Header) string {
	headers := make(map[string][]string, len(h))
	for k, vals := range h {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			vals = []string{maskedValue}
		}
		headers[k] = vals
	}

	b, _ := json.Marshal(headers)
	return string(b)
}

// loggedBody cuts a body down to what is worth keeping in a log line.
// Statement and ledger CSV downloads are summarized by size only.
func loggedBody(contentType string, body []byte) string {
	if strings.HasPrefix(contentType, "text/csv") {
		return fmt.Sprintf("<csv %d bytes>", len(body))
	}
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "...(truncated)"
	}
	return string(body)
}

// Logger writes one access log line per request, at a level picked from the status.
// The correlation and idempotency keys come from the context set by Context().
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogPaths, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			// a broken body is still logged as far as it was read
			reqBody, _ := readRequestBody(req)
			resBody := m.getResponseBodyBuffer(c)
			res := c.Response()

			if err := next(c); err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			fields := []xlog.Field{
				xlog.Time("start_time", start),
				xlog.String("method", req.Method),
				xlog.String("route", c.Path()),
				xlog.String("url_path", req.URL.String()),
				xlog.String("request_body", loggedBody(req.Header.Get(echo.HeaderContentType), reqBody)),
				xlog.String("request_header", maskedHeaders(req.Header)),
				xlog.Int("status", res.Status),
				xlog.Int64("response_size", res.Size),
				xlog.String("response", loggedBody(res.Header().Get(echo.HeaderContentType), resBody.Bytes())),
				xlog.Duration("latency", latency),
			}
			message := fmt.Sprintf("%d %s %s %v", res.Status, req.Method, req.URL.Path, latency)

			ctx := req.Context()
			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusBadRequest:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
