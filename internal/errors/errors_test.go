package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapPreservesIdentity(t *testing.T) {
	wrapped := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "outer 1: inner: sentinel", wrapped.Error())
}

func TestWithMessageAndJoin(t *testing.T) {
	other := New("other")
	joined := Join(WithMessage(errSentinel, "context"), other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
	assert.Nil(t, Wrap(nil, "ignored"))
}

type statusError struct{ code int }

func (e *statusError) Error() string { return http.StatusText(e.code) }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&statusError{code: http.StatusConflict}, "register")

	got, ok := AsType[*statusError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, got.code)

	got, ok = AsType[*statusError](errSentinel)
	assert.False(t, ok)
	assert.Nil(t, got)
}
