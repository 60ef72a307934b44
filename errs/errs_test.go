package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kprajapati/tracker/errs"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errs.Code(""), errs.CodeOf(nil))
	assert.Equal(t, errs.NotFound, errs.CodeOf(errs.New(errs.NotFound, "gone")))
	assert.Equal(t, errs.Internal, errs.CodeOf(errors.New("plain")))

	// Codes survive wrapping by callers.
	wrapped := fmt.Errorf("handler: %w", errs.New(errs.Conflict, "key reuse"))
	assert.Equal(t, errs.Conflict, errs.CodeOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.Wrap(errs.Unavailable, "failed to list tasks", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errs.HTTPStatus(errs.InvalidArgument))
	assert.Equal(t, http.StatusNotFound, errs.HTTPStatus(errs.NotFound))
	assert.Equal(t, http.StatusForbidden, errs.HTTPStatus(errs.PermissionDenied))
	assert.Equal(t, http.StatusConflict, errs.HTTPStatus(errs.Conflict))
	assert.Equal(t, http.StatusLocked, errs.HTTPStatus(errs.Aborted))
	assert.Equal(t, http.StatusServiceUnavailable, errs.HTTPStatus(errs.Unavailable))
	assert.Equal(t, http.StatusInternalServerError, errs.HTTPStatus(errs.Internal))
}
