package format

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	path := filepath.Join("root", "sub", "b.log")

	tests := []struct {
		name string
		mode types.OutputMode
		want string
	}{
		{"path only", types.OutputPath, path},
		{"name only", types.OutputName, "b.log"},
		{"full", types.OutputFull, path + " (file: b.log)"},
		{"unknown mode renders the path", types.OutputMode(7), path},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(path, tt.mode))
			assert.Equal(t, tt.want, Candidate(types.Candidate{Path: path, Name: "b.log"}, tt.mode))
		})
	}
}
