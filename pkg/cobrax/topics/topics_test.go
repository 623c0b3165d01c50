package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTopics() fstest.MapFS {
	return fstest.MapFS{
		"topics/patterns.md": {Data: []byte("# Patterns\n\nUse `*.go`.\n")},
		"topics/output.txt":  {Data: []byte("Output modes: path, name, full\n")},
		"topics/notes.json":  {Data: []byte("{}")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(sampleTopics())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"output", "patterns"}, tm.ListTopics())

		topic, ok := tm.GetTopic("patterns")
		require.True(t, ok)
		assert.Equal(t, "topics/patterns.md", topic.FilePath)
		assert.Contains(t, topic.Content, "# Patterns")

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(sampleTopics(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil source has no topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(sampleTopics())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"output", "-output", "--output"} {
		t.Run(name, func(t *testing.T) {
			_, ok := tm.GetTopic(name)
			assert.True(t, ok)
		})
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return format + ":" + strings.ToUpper(content)
}

func newRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "version", Short: "Print the version", Run: func(*cobra.Command, []string) {}})

	_, err := InitializeWithOptions(root, sampleTopics(), opts)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInitialize_HelpCommand(t *testing.T) {
	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Available help topics:")
		assert.Contains(t, out.String(), "  output\n  patterns\n")
		assert.Contains(t, out.String(), "Use 'app help <topic>'")
	})

	t.Run("renders a topic", func(t *testing.T) {
		root, out := newRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "output"})
		require.NoError(t, root.Execute())

		assert.Equal(t, ".txt:OUTPUT MODES: PATH, NAME, FULL\n", out.String())
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot(t, Options{})
		root.SetArgs([]string{"help", "version"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "Print the version")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	t.Run("non markdown passes through", func(t *testing.T) {
		assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
	})

	t.Run("markdown is rendered", func(t *testing.T) {
		out := r.Render("# Patterns\n\nSome **bold** words.", ".md")
		assert.Contains(t, out, "Patterns")
		assert.Contains(t, out, "bold")
		assert.NotEqual(t, "# Patterns\n\nSome **bold** words.", out)
	})
}
