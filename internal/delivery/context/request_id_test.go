package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestWithSubject(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithSubject(WithLogger(context.Background(), base), 42)

	id, ok := GetSubjectID(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "subject_id=42")

	_, ok = GetSubjectID(context.Background())
	assert.False(t, ok)
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
}
