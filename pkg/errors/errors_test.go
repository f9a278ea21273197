package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/seekwe/smart-npm/pkg/errors"
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
			name:    "rename_error",
			code:    errors.ErrRename,
			message: "cannot move entry point",
			wantStr: "[RENAME] cannot move entry point",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "manager.%s must not be empty", "name")
	assert.Equal(t, "manager.name must not be empty", err.Message)
	assert.Equal(t, errors.ErrConfigValid, err.Code)
}

func TestWrap(t *testing.T) {
	base := os.ErrPermission

	t.Run("wraps_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(base, errors.ErrRename, "rename failed")
		require.NotNil(t, err)

		assert.Equal(t, "[RENAME] rename failed: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, os.ErrPermission))
		assert.Same(t, base, stderrors.Unwrap(err))
	})

	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrRename, "rename failed"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrRename, "rename %s", "x"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrSymlinkCreate, "link %s -> %s", "a", "b")
		assert.Equal(t, "link a -> b", err.Message)
	})
}

func TestIs(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("boom"), errors.ErrRemove, "remove failed")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrRemove, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrRename, "")))
}

func TestCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrPathResolve, "no bin dir").WithDetail("source", "env")
	wrapped := fmt.Errorf("startup: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrPathResolve))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrRename))
	assert.Equal(t, errors.ErrPathResolve, errors.GetErrorCode(wrapped))
	assert.Equal(t, "env", errors.GetErrorDetails(wrapped)["source"])

	plain := fmt.Errorf("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}

func TestCause(t *testing.T) {
	base := fmt.Errorf("symlink a b: permission denied")

	assert.Same(t, base, errors.Cause(errors.Wrap(base, errors.ErrSymlinkCreate, "cannot link")))
	assert.Same(t, base, errors.Cause(base))

	bare := errors.New(errors.ErrRename, "no wrapped error")
	assert.Equal(t, bare, errors.Cause(bare))
	assert.Nil(t, errors.Cause(nil))
}
