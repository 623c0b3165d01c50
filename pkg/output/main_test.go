package output_test

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	// Engine debug logging would otherwise interleave with test output
	zerolog.SetGlobalLevel(zerolog.Disabled)
	m.Run()
}
