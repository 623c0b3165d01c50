// Package format renders a matched file as a single output line.
package format

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/strfind/pkg/types"
)

// Format renders filePath according to mode. It is pure: no I/O and no
// styling, so the same line can be printed plain or decorated later.
func Format(filePath string, mode types.OutputMode) string {
	switch mode {
	case types.OutputName:
		return filepath.Base(filePath)
	case types.OutputFull:
		return fmt.Sprintf("%s (file: %s)", filePath, filepath.Base(filePath))
	default:
		return filePath
	}
}

// Candidate renders a candidate, using its recorded name rather than
// recomputing it from the path.
func Candidate(c types.Candidate, mode types.OutputMode) string {
	switch mode {
	case types.OutputName:
		return c.Name
	case types.OutputFull:
		return fmt.Sprintf("%s (file: %s)", c.Path, c.Name)
	default:
		return c.Path
	}
}
