// Package enumerate walks a directory tree and yields the files whose name
// matches a glob, pruning excluded subtrees before they are listed.
package enumerate

import (
	"io/fs"
	"iter"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/logging"
	"github.com/arthur-debert/strfind/pkg/pathfilter"
	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/rs/zerolog"
)

// Enumerator produces candidate files from a filesystem
type Enumerator struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an enumerator over fsys
func New(fsys types.FS) *Enumerator {
	return &Enumerator{
		fs:     fsys,
		logger: logging.GetLogger(logging.ComponentEnumerate),
	}
}

// Enumerate walks the tree under root depth-first. Within a directory the
// matching files are yielded first, in name order, then each subdirectory is
// descended into in name order.
//
// A directory that cannot be listed is yielded once as an ErrDirectoryListing
// error paired with a zero Candidate; the walk then continues with the rest
// of the tree. Subdirectories in exclude are never listed. The root itself
// is not subject to exclusion.
//
// The returned sequence is lazy and single-use.
func (e *Enumerator) Enumerate(root string, pattern NamePattern, exclude pathfilter.ExcludeSet) iter.Seq2[types.Candidate, error] {
	return func(yield func(types.Candidate, error) bool) {
		stack := []string{root}

		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := e.fs.ReadDir(dir)
			if err != nil {
				listErr := errors.Wrapf(err, errors.ErrDirectoryListing, "failed to list directory '%s'", dir).
					WithDetail("path", dir)
				if !yield(types.Candidate{}, listErr) {
					return
				}
				continue
			}

			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})

			var subdirs []string
			for _, entry := range entries {
				name := entry.Name()
				path := filepath.Join(dir, name)

				switch e.classify(path, entry) {
				case entrySkip:
					continue
				case entryDir:
					if pathfilter.IsExcluded(name, exclude) {
						e.logger.Debug().Str("path", path).Msg("Pruned excluded directory")
						continue
					}
					subdirs = append(subdirs, path)
					continue
				}

				if !pattern.Match(name) {
					continue
				}
				if !yield(types.Candidate{Path: path, Name: name}, nil) {
					return
				}
			}

			// Push in reverse so subdirectories pop in name order
			for i := len(subdirs) - 1; i >= 0; i-- {
				stack = append(stack, subdirs[i])
			}
		}
	}
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entrySkip
)

// classify decides how the walk treats an entry. Symlinks are resolved:
// links to files are offered as files, links to directories are skipped
// so the walk never follows them into a cycle.
func (e *Enumerator) classify(path string, entry fs.DirEntry) entryKind {
	if entry.Type()&fs.ModeSymlink == 0 {
		if entry.IsDir() {
			return entryDir
		}
		return entryFile
	}

	info, err := e.fs.Stat(path)
	if err != nil {
		// Dangling link: offer it as a file so the read reports the failure
		return entryFile
	}
	if info.IsDir() {
		e.logger.Debug().Str("path", path).Msg("Not following symlinked directory")
		return entrySkip
	}
	return entryFile
}
