// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/idswap/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_option",
			code:    errors.ErrInvalidInput,
			message: "unknown convert option",
			wantStr: "[INVALID_INPUT] unknown convert option",
		},
		{
			name:    "scan_failure",
			code:    errors.ErrScanFailed,
			message: "cannot list plugins directory",
			wantStr: "[SCAN_FAILED] cannot list plugins directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "unknown option %q", "nether")
	if err.Message != `unknown option "nether"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrRenameFailed, "cannot rename")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[RENAME_FAILED] cannot rename: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileWrite, "cannot write %s", "a.yml")
		if err.Message != "cannot write a.yml" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDirRead, "cannot list").
		WithDetail("path", "/srv/world").
		WithDetail("root", "world")

	if err.Details["path"] != "/srv/world" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["root"]; got != "world" {
		t.Errorf("GetErrorDetails() root = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrScanFailed, "error 1")
	err2 := errors.New(errors.ErrScanFailed, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with IdswapError")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNotFound, "x"), errors.ErrNotFound, true},
		{"different_code", errors.New(errors.ErrNotFound, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileRead, "denied"), errors.ErrFileRead, true},
		{"standard_error", stderrors.New("standard"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrRootFailed, "x")); got != errors.ErrRootFailed {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	renameErr := errors.Wrap(rootCause, errors.ErrRenameFailed, "cannot rename Steve.dat")
	rootErr := errors.Wrap(renameErr, errors.ErrRootFailed, "world root failed")

	if !errors.IsErrorCode(rootErr, errors.ErrRootFailed) {
		t.Error("top level should have ErrRootFailed code")
	}

	var middle *errors.IdswapError
	if stderrors.As(rootErr.Unwrap(), &middle) && middle.Code != errors.ErrRenameFailed {
		t.Errorf("middle error code = %v, want RENAME_FAILED", middle.Code)
	}

	if !stderrors.Is(rootErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
