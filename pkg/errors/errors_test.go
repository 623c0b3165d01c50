// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, fatal classification

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/strfind/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "directory_not_found",
			code:    errors.ErrDirectoryNotFound,
			message: "directory '/nope' does not exist",
			wantStr: "[DIRECTORY_NOT_FOUND] directory '/nope' does not exist",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "search term must not be empty",
			wantStr: "[INVALID_INPUT] search term must not be empty",
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
	err := errors.Newf(errors.ErrInvalidPattern, "invalid regular expression %q", "[a")

	if want := `invalid regular expression "[a"`; err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "failed to read file /a.txt")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_READ] failed to read file /a.txt: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})

	t.Run("wrapped_cause_is_reachable", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrPermission, errors.ErrDirectoryListing, "failed to list %s", "/x")
		if !stderrors.Is(err, fs.ErrPermission) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileRead, "cannot read").
		WithDetail("path", "/test/path").
		WithDetails(map[string]interface{}{"size": 1024})

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}
	if err.Details["size"] != 1024 {
		t.Errorf("WithDetails() size = %v, want %v", err.Details["size"], 1024)
	}
	if got := errors.GetErrorDetails(err); got["path"] != "/test/path" {
		t.Errorf("GetErrorDetails() path = %v", got["path"])
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFileRead, "error 1")
	err2 := errors.New(errors.ErrFileRead, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"search_error", errors.New(errors.ErrInvalidPattern, "bad"), errors.ErrInvalidPattern},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
			if tt.err != nil && !errors.IsErrorCode(tt.err, tt.expected) && tt.expected != errors.ErrUnknown {
				t.Errorf("IsErrorCode(%v) = false", tt.expected)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		code  errors.ErrorCode
		fatal bool
	}{
		{errors.ErrDirectoryNotFound, true},
		{errors.ErrInvalidPattern, true},
		{errors.ErrDirectoryListing, false},
		{errors.ErrFileRead, false},
		{errors.ErrInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := errors.New(tt.code, "x")
			if got := errors.IsFatal(err); got != tt.fatal {
				t.Errorf("IsFatal(%s) = %v, want %v", tt.code, got, tt.fatal)
			}
			wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
			if errors.IsFatal(wrapped) {
				t.Errorf("IsFatal should classify on the outermost code")
			}
		})
	}
}
