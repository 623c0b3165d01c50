package types

import (
	"strings"

	"github.com/arthur-debert/strfind/pkg/errors"
)

// OutputMode selects how a matched file is rendered
type OutputMode int

const (
	// OutputPath renders the path as enumerated
	OutputPath OutputMode = iota
	// OutputName renders the base file name only
	OutputName
	// OutputFull renders both the path and the base name
	OutputFull
)

// String returns the string representation of the output mode
func (m OutputMode) String() string {
	switch m {
	case OutputPath:
		return "path"
	case OutputName:
		return "name"
	case OutputFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseOutputMode parses a string into an OutputMode value.
// Unrecognized values return OutputPath together with an
// ErrInvalidOutputMode error, so callers can choose between
// falling back and failing.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "":
		return OutputPath, nil
	case "name":
		return OutputName, nil
	case "full":
		return OutputFull, nil
	default:
		return OutputPath, errors.Newf(errors.ErrInvalidOutputMode,
			"unknown output mode %q (expected full, path or name)", s).
			WithDetail("value", s)
	}
}
