package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	assert.Equal(t, "v1.2.3", Resolved())
	assert.Equal(t, "strfind version v1.2.3\n  commit: abc123\n  built:  2026-01-02\n", String())
}
