package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "UPSTREAM_ERROR", http.StatusBadGateway, "call failed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "call failed: boom", err.Error())
}

func TestFromErrorPassthrough(t *testing.T) {
	err := FromError(ErrNotFound)
	assert.Same(t, ErrNotFound, err)
}

func TestFromErrorNormalisesUnknown(t *testing.T) {
	err := FromError(errors.New("weird"))
	require.NotNil(t, err)
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrNotFound, "result not found")
	assert.Equal(t, ErrNotFound.Code, clone.Code)
	assert.Equal(t, "result not found", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(Clone(ErrNotFound, "gone")))
	assert.False(t, IsNotFound(ErrUpstream))
	assert.False(t, IsNotFound(nil))
}
