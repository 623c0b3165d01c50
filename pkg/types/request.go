package types

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultNamePattern matches every file name
const DefaultNamePattern = "*"

// RequestOptions is the raw, possibly incomplete input a SearchRequest is built from
type RequestOptions struct {
	Root        string
	NamePattern string
	Term        string
	IgnoreCase  bool
	UseRegex    bool
	Output      OutputMode
	Exclude     []string
}

// SearchRequest describes one search run. Build it with NewSearchRequest,
// which applies every default; it is passed by value and never modified.
type SearchRequest struct {
	Root        string
	NamePattern string
	Term        string
	IgnoreCase  bool
	UseRegex    bool
	Output      OutputMode
	Exclude     []string

	// RootDefaulted is set when Root was taken from the working directory
	RootDefaulted bool
}

// NewSearchRequest validates opts and applies defaults.
func NewSearchRequest(opts RequestOptions) (SearchRequest, error) {
	req := SearchRequest{
		Root:        opts.Root,
		NamePattern: strings.TrimSpace(opts.NamePattern),
		Term:        opts.Term,
		IgnoreCase:  opts.IgnoreCase,
		UseRegex:    opts.UseRegex,
		Output:      opts.Output,
	}

	if req.Term == "" {
		return SearchRequest{}, errors.New(errors.ErrInvalidInput, "search string must not be empty")
	}

	if req.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return SearchRequest{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to determine current directory")
		}
		req.Root = wd
		req.RootDefaulted = true
	}
	req.Root = filepath.Clean(req.Root)

	if req.NamePattern == "" {
		req.NamePattern = DefaultNamePattern
	}
	if strings.ContainsRune(req.NamePattern, '/') || strings.ContainsRune(req.NamePattern, filepath.Separator) {
		return SearchRequest{}, errors.Newf(errors.ErrInvalidInput,
			"file name pattern %q must not contain a path separator", req.NamePattern).
			WithDetail("pattern", req.NamePattern)
	}
	if !doublestar.ValidatePattern(req.NamePattern) {
		return SearchRequest{}, errors.Newf(errors.ErrInvalidInput,
			"file name pattern %q is not a valid glob", req.NamePattern).
			WithDetail("pattern", req.NamePattern)
	}

	if req.Output < OutputPath || req.Output > OutputFull {
		req.Output = OutputPath
	}

	for _, name := range opts.Exclude {
		name = strings.TrimSpace(name)
		if name != "" {
			req.Exclude = append(req.Exclude, name)
		}
	}

	return req, nil
}
