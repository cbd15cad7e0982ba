package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arena/config"
	deliverycontext "arena/internal/delivery/context"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog string
	}{
		{name: "success hidden outside debug", debug: false, status: http.StatusOK},
		{name: "success logged in debug", debug: true, status: http.StatusOK, wantLog: "level=INFO"},
		{name: "client error logged", debug: false, status: http.StatusUnauthorized, wantLog: "level=WARN"},
		{name: "server error logged", debug: false, status: http.StatusInternalServerError, wantLog: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, tt.debug)
			e.GET("/", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
			e.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "request_id=req-9")
		})
	}
}

func TestLoggerMiddleware_UsesDomainErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/", func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "status=401")
}
