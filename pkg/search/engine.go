// Package search drives a search run: it enumerates candidate files, reads
// and matches their content, and reports every outcome.
package search

import (
	"github.com/arthur-debert/strfind/pkg/enumerate"
	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/filesystem"
	"github.com/arthur-debert/strfind/pkg/logging"
	"github.com/arthur-debert/strfind/pkg/matcher"
	"github.com/arthur-debert/strfind/pkg/pathfilter"
	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/rs/zerolog"
)

// Engine runs searches against a filesystem
type Engine struct {
	fs       types.FS
	reporter Reporter
	logger   zerolog.Logger
}

// NewEngine creates an engine. A nil reporter discards every event.
func NewEngine(fsys types.FS, reporter Reporter) *Engine {
	if reporter == nil {
		reporter = Discard{}
	}
	return &Engine{
		fs:       fsys,
		reporter: reporter,
		logger:   logging.GetLogger(logging.ComponentEngine),
	}
}

// Run executes one search.
//
// A nil error means the run completed, whatever the number of matches;
// recoverable listing and read failures are reported and counted in the
// summary. A non-nil error is fatal (ErrDirectoryNotFound, ErrInvalidPattern
// or an invalid name pattern): it has been reported, no file was read and
// the returned summary is zero.
func (e *Engine) Run(req types.SearchRequest) (types.RunSummary, error) {
	done := logging.LogOperationStart(e.logger, "search")
	defer done()

	info, err := e.fs.Stat(req.Root)
	if err != nil || !info.IsDir() {
		notFound := errors.Newf(errors.ErrDirectoryNotFound, "directory '%s' does not exist", req.Root).
			WithDetail("path", req.Root)
		if err != nil {
			notFound.Wrapped = err
		}
		return e.abort(notFound)
	}

	m, err := matcher.New(req.Term, req.IgnoreCase, req.UseRegex)
	if err != nil {
		return e.abort(err)
	}

	pattern, err := enumerate.CompileNamePattern(req.NamePattern)
	if err != nil {
		return e.abort(err)
	}

	e.logger.Info().
		Str("root", req.Root).
		Str("pattern", pattern.String()).
		Str("matcher", m.String()).
		Strs("exclude", req.Exclude).
		Msg("Starting search")

	e.reporter.Start(req)

	var summary types.RunSummary
	walker := enumerate.New(e.fs)
	for candidate, err := range walker.Enumerate(req.Root, pattern, pathfilter.NewExcludeSet(req.Exclude...)) {
		if err != nil {
			summary.Errors++
			e.logger.Debug().Err(err).Msg("Directory listing failed")
			e.reporter.Error(err)
			continue
		}

		summary.NameMatched++

		content, err := filesystem.ReadText(e.fs, candidate.Path)
		if err != nil {
			summary.Errors++
			readErr := errors.Wrapf(err, errors.ErrFileRead, "failed to read '%s'", candidate.Path).
				WithDetail("path", candidate.Path)
			e.logger.Debug().Err(err).Str("path", candidate.Path).Msg("File read failed")
			e.reporter.Error(readErr)
			continue
		}

		matched, err := m.Match(content)
		if err != nil {
			// regexp2 only fails here on a match timeout, which is never set
			summary.Errors++
			e.reporter.Error(errors.Wrapf(err, errors.ErrInternal, "failed to match '%s'", candidate.Path).
				WithDetail("path", candidate.Path))
			continue
		}
		if !matched {
			continue
		}

		e.logger.Debug().Str("path", candidate.Path).Msg("Content matched")
		e.reporter.Match(types.MatchResult{Candidate: candidate, Matched: true})
		summary.ContentMatched++
	}

	e.logger.Info().
		Int("nameMatched", summary.NameMatched).
		Int("contentMatched", summary.ContentMatched).
		Int("errors", summary.Errors).
		Msg("Search finished")

	e.reporter.Finish(summary)
	return summary, nil
}

func (e *Engine) abort(err error) (types.RunSummary, error) {
	e.logger.Debug().Err(err).Msg("Search aborted")
	e.reporter.Error(err)
	return types.RunSummary{}, err
}

// Search runs req against fsys and collects the result in memory
func Search(fsys types.FS, req types.SearchRequest) (*Collector, error) {
	c := NewCollector()
	_, err := NewEngine(fsys, c).Run(req)
	return c, err
}
