// Test Type: Unit Test
// Description: Tests error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "discovery_failure",
			code:    errors.ErrDiscovery,
			message: "folder does not exist",
			wantStr: "[DISCOVERY_FAILURE] folder does not exist",
		},
		{
			name:    "permission_denied",
			code:    errors.ErrPermission,
			message: "access denied",
			wantStr: "[PERMISSION] access denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("open failed")
	err := errors.Wrap(inner, errors.ErrStoreQuery, "registry enumeration failed")

	assert.Equal(t, "[STORE_QUERY] registry enumeration failed: open failed", err.Error())
	assert.Equal(t, inner, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should be nil"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrNotDirectory, "path %s is not a directory", "/tmp/file")

	assert.True(t, errors.IsErrorCode(err, errors.ErrNotDirectory))
	assert.False(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrNotDirectory))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrInvalidFont, errors.GetErrorCode(errors.New(errors.ErrInvalidFont, "bad magic")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInstallFailed, "all methods failed").
		WithDetail("font", "Roboto-Regular.ttf").
		WithDetail("attempts", 4)

	assert.Equal(t, "Roboto-Regular.ttf", err.Details["font"])
	assert.Equal(t, 4, err.Details["attempts"])
}
