package filesystem

import (
	"fmt"

	"github.com/arthur-debert/strfind/pkg/types"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText reads the whole file at name and decodes it to UTF-8.
//
// A UTF-8 or UTF-16 (LE/BE) byte order mark selects the encoding and is
// stripped; content without a BOM is treated as UTF-8. Invalid sequences
// are replaced with U+FFFD rather than failing the read.
func ReadText(fsys types.FS, name string) (string, error) {
	raw, err := fsys.ReadFile(name)
	if err != nil {
		return "", err
	}
	return DecodeText(raw)
}

// DecodeText converts raw file bytes to a UTF-8 string, honoring any BOM.
func DecodeText(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(out), nil
}
