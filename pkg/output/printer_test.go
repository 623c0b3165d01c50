package output_test

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/output"
	"github.com/arthur-debert/strfind/pkg/search"
	"github.com/arthur-debert/strfind/pkg/testutil"
	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, opts output.Options, req types.RequestOptions, tree testutil.FileTree) (string, string, error) {
	t.Helper()

	request, err := types.NewSearchRequest(req)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	printer := output.NewPrinter(&stdout, &stderr, opts)
	_, runErr := search.NewEngine(testutil.NewMemoryTree(t, "/root", tree), printer).Run(request)
	return stdout.String(), stderr.String(), runErr
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPrinter_FullRun(t *testing.T) {
	stdout, stderr, err := run(t, output.Options{}, types.RequestOptions{
		Root:    "/root",
		Term:    "hello",
		Exclude: []string{"vendor"},
	}, testutil.FileTree{
		"a.txt": "hello world",
		"b.txt": "bye",
	})
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, []string{
		"Directory: /root",
		"File name: *",
		"Search string: hello",
		"Ignore case: no",
		"Regular expression: no",
		"Exclude: vendor",
		output.MsgSeparator,
		"/root/a.txt",
		output.MsgSeparator,
		"Checked 2 file(s) named '*'",
		"Search complete: 1 file(s) contain 'hello'",
	}, lines(stdout))
}

func TestPrinter_OutputModes(t *testing.T) {
	tests := []struct {
		mode types.OutputMode
		want string
	}{
		{types.OutputPath, "/root/sub/a.txt"},
		{types.OutputName, "a.txt"},
		{types.OutputFull, "/root/sub/a.txt (file: a.txt)"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			stdout, _, err := run(t, output.Options{Quiet: true}, types.RequestOptions{
				Root:   "/root",
				Term:   "x",
				Output: tt.mode,
			}, testutil.FileTree{"sub": testutil.FileTree{"a.txt": "x"}})
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestPrinter_RegexZeroMatches(t *testing.T) {
	stdout, _, err := run(t, output.Options{}, types.RequestOptions{
		Root:     "/root",
		Term:     `^\d+$`,
		UseRegex: true,
	}, testutil.FileTree{"a.txt": "abc"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "Regular expression: yes")
	assert.Contains(t, stdout, `Search complete: 0 file(s) match regular expression '^\d+$'`)
	assert.Contains(t, stdout, `No file matches regular expression '^\d+$'`)
}

func TestPrinter_NoNamedFiles(t *testing.T) {
	t.Run("with a pattern", func(t *testing.T) {
		stdout, _, err := run(t, output.Options{}, types.RequestOptions{
			Root:        "/root",
			NamePattern: "*.md",
			Term:        "x",
		}, testutil.FileTree{"a.txt": "x"})
		require.NoError(t, err)
		assert.Contains(t, stdout, "No files named '*.md' found in directory '/root'")
		assert.NotContains(t, stdout, "Search complete")
	})

	t.Run("all files", func(t *testing.T) {
		stdout, _, err := run(t, output.Options{}, types.RequestOptions{
			Root: "/root",
			Term: "x",
		}, testutil.FileTree{})
		require.NoError(t, err)
		assert.Contains(t, stdout, "No files found in directory '/root'")
	})
}

func TestPrinter_Errors(t *testing.T) {
	request, err := types.NewSearchRequest(types.RequestOptions{Root: "/root", Term: "x"})
	require.NoError(t, err)

	mfs := testutil.NewMemoryTree(t, "/root", testutil.FileTree{"a.txt": "x", "b.txt": "x"})
	mfs.WithError("/root/a.txt", fs.ErrPermission)

	var stdout, stderr bytes.Buffer
	_, err = search.NewEngine(mfs, output.NewPrinter(&stdout, &stderr, output.Options{})).Run(request)
	require.NoError(t, err)

	assert.Equal(t, "Error: failed to read '/root/a.txt': permission denied\n", stderr.String())
	assert.Contains(t, stdout.String(), "/root/b.txt\n")
	assert.Contains(t, stdout.String(), "1 error(s) occurred, see above")
}

func TestPrinter_FatalError(t *testing.T) {
	stdout, stderr, err := run(t, output.Options{}, types.RequestOptions{
		Root: "/missing",
		Term: "x",
	}, testutil.FileTree{})

	require.Error(t, err)
	assert.Empty(t, stdout, "no banner before a fatal error")
	assert.True(t, strings.HasPrefix(stderr, "Error: directory '/missing' does not exist"))
}

func TestPrinter_QuietAndStatus(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := output.NewPrinter(&stdout, &stderr, output.Options{})
	printer.Start(types.SearchRequest{Root: "/cwd", NamePattern: "*", Term: "x", RootDefaulted: true})
	assert.True(t, strings.HasPrefix(stdout.String(), "No directory given, searching the current directory: '/cwd'\n"))

	stdout.Reset()
	quiet := output.NewPrinter(&stdout, &stderr, output.Options{Quiet: true})
	quiet.Start(types.SearchRequest{Root: "/cwd", NamePattern: "*", Term: "x", RootDefaulted: true})
	quiet.Finish(types.RunSummary{NameMatched: 3})
	assert.Empty(t, stdout.String())
}

func TestPrinter_Warn(t *testing.T) {
	var stdout, stderr bytes.Buffer
	output.NewPrinter(&stdout, &stderr, output.Options{}).Warn("falling back")
	assert.Equal(t, "Warning: falling back\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestPrinter_ColorKeepsText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	printer := output.NewPrinter(&stdout, &stderr, output.Options{Color: true})
	printer.Start(types.SearchRequest{Root: "/root", NamePattern: "*", Term: "needle"})
	printer.Match(types.MatchResult{Candidate: types.Candidate{Path: "/root/a.txt", Name: "a.txt"}, Matched: true})
	printer.Error(errors.New(errors.ErrFileRead, "failed to read '/root/b.txt'"))

	assert.Contains(t, stdout.String(), "needle")
	assert.Contains(t, stdout.String(), "/root/a.txt")
	assert.Contains(t, stderr.String(), "ERROR")
	assert.Contains(t, stderr.String(), "failed to read '/root/b.txt'")
}

func TestDescribe(t *testing.T) {
	wrapped := errors.Wrap(fs.ErrNotExist, errors.ErrFileRead, "failed to read 'x'")
	assert.Equal(t, "failed to read 'x': file does not exist", output.Describe(wrapped))
	assert.Equal(t, "bare", output.Describe(errors.New(errors.ErrInternal, "bare")))
	assert.Equal(t, "plain", output.Describe(stderrors.New("plain")))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, output.ColorEnabled(&buf, true), "buffers are not terminals")
	assert.False(t, output.ColorEnabled(&buf, false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, output.ColorEnabled(&buf, true))
}
