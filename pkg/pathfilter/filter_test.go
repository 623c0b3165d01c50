// Test Type: Unit Test
// Description: Tests for directory name exclusion

package pathfilter_test

import (
	"testing"

	"github.com/arthur-debert/strfind/pkg/pathfilter"
	"github.com/stretchr/testify/assert"
)

func TestIsExcluded(t *testing.T) {
	set := pathfilter.NewExcludeSet("node_modules", ".Git", "Build")

	tests := []struct {
		name     string
		dir      string
		excluded bool
	}{
		{"exact", "node_modules", true},
		{"upper case entry, lower case dir", ".git", true},
		{"lower case entry, upper case dir", "NODE_MODULES", true},
		{"mixed", "bUILD", true},
		{"prefix is not a match", "node", false},
		{"suffix is not a match", "node_modules_old", false},
		{"paths are not names", "src/build", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.excluded, pathfilter.IsExcluded(tt.dir, set))
		})
	}
}

func TestExcludeSet(t *testing.T) {
	t.Run("zero_value_is_empty", func(t *testing.T) {
		var set pathfilter.ExcludeSet
		assert.False(t, set.Contains("anything"))
		assert.Equal(t, 0, set.Len())
		assert.Empty(t, set.Names())
	})

	t.Run("blank_and_duplicate_entries_are_dropped", func(t *testing.T) {
		set := pathfilter.NewExcludeSet(" vendor ", "", "VENDOR", "dist")
		assert.Equal(t, 2, set.Len())
		assert.Equal(t, []string{"vendor", "dist"}, set.Names())
	})

	t.Run("unicode_names_fold", func(t *testing.T) {
		set := pathfilter.NewExcludeSet("Données")
		assert.True(t, set.Contains("DONNÉES"))
	})
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"comma separated", []string{"node_modules,bin"}, []string{"node_modules", "bin"}},
		{"space separated", []string{"obj bin"}, []string{"obj", "bin"}},
		{"mixed and repeated", []string{"a, b", " c ", ",,"}, []string{"a", "b", "c"}},
		{"nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathfilter.SplitNames(tt.values...))
		})
	}
}
