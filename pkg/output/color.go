package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorEnabled reports whether output written to w should be styled.
// Styling needs the user to allow it, NO_COLOR to be unset and w to be a
// terminal with color support.
func ColorEnabled(w io.Writer, allowed bool) bool {
	if !allowed {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return false
	}

	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}
