package strfind

import (
	stderrors "errors"

	"github.com/arthur-debert/strfind/pkg/errors"
)

// Process exit statuses
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitSearchError = 2
)

// ExitError ends the process with Code. Its error has already been shown
// to the user, so it must not be printed again.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to an exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.IsFatal(err) {
		return ExitSearchError
	}
	return ExitUsage
}

// Reported tells whether err was already shown to the user
func Reported(err error) bool {
	var exitErr *ExitError
	return stderrors.As(err, &exitErr)
}
