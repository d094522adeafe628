package errors_test

import (
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/arthur-debert/dots/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "package_not_found",
			code:    errors.ErrPackageNotFound,
			message: "no package named vim",
			wantStr: "[PACKAGE_NOT_FOUND] no package named vim",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid package name",
			wantStr: "[INVALID_INPUT] invalid package name",
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

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileAccess, "cannot read dotfiles dir")
	if got, want := err.Error(), "[FILE_ACCESS] cannot read dotfiles dir: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, base) {
		t.Error("wrapped error should match its cause")
	}

	if errors.Wrap(nil, errors.ErrFileAccess, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if errors.Wrapf(nil, errors.ErrFileAccess, "nothing %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPackageInvalid, "no build file").
		WithDetail("package", "zsh")

	if got := errors.GetErrorDetails(err)["package"]; got != "zsh" {
		t.Errorf("detail package = %v, want zsh", got)
	}
}

func TestIs(t *testing.T) {
	err := errors.Newf(errors.ErrUntrackedConflict, "%d conflicts", 2)
	wrapped := fmt.Errorf("install: %w", err)

	if !stderrors.Is(wrapped, errors.New(errors.ErrUntrackedConflict, "")) {
		t.Error("errors.Is should match on code through fmt wrapping")
	}
	if stderrors.Is(wrapped, errors.New(errors.ErrNotFound, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{"matching code", errors.New(errors.ErrNotInitialized, "x"), errors.ErrNotInitialized, true},
		{"different code", errors.New(errors.ErrNotInitialized, "x"), errors.ErrNotFound, false},
		{"plain error", stderrors.New("x"), errors.ErrNotFound, false},
		{"nil error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	err := errors.Wrap(stderrors.New("boom"), errors.ErrToolFailed, "make failed")
	if got := errors.GetErrorCode(err); got != errors.ErrToolFailed {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrToolFailed)
	}
}

func TestExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	toolErr := exec.Command("sh", "-c", "exit 3").Run()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", stderrors.New("x"), 1},
		{"dots error", errors.New(errors.ErrUntrackedConflict, "x"), 1},
		{"tool exit", toolErr, 3},
		{"wrapped tool exit", errors.Wrap(toolErr, errors.ErrToolFailed, "git failed"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}

	if !errors.IsToolExit(toolErr) {
		t.Error("IsToolExit should report an exec exit error")
	}
}
