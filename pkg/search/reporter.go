package search

import "github.com/arthur-debert/strfind/pkg/types"

// Reporter receives the events of a search run, in order: Start once,
// then any number of Match and Error calls, then Finish once. A run that
// aborts on a fatal error reports only that Error.
type Reporter interface {
	Start(req types.SearchRequest)
	Match(result types.MatchResult)
	Error(err error)
	Finish(summary types.RunSummary)
}

// Collector is a Reporter that keeps every event in memory
type Collector struct {
	Request  *types.SearchRequest
	Matches  []types.MatchResult
	Errors   []error
	Summary  *types.RunSummary
	Finished bool
}

// NewCollector creates an empty Collector
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Start(req types.SearchRequest) {
	c.Request = &req
}

func (c *Collector) Match(result types.MatchResult) {
	c.Matches = append(c.Matches, result)
}

func (c *Collector) Error(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *Collector) Finish(summary types.RunSummary) {
	c.Summary = &summary
	c.Finished = true
}

// Paths returns the paths of the matched files in report order
func (c *Collector) Paths() []string {
	paths := make([]string, 0, len(c.Matches))
	for _, m := range c.Matches {
		paths = append(paths, m.Candidate.Path)
	}
	return paths
}

// Discard is a Reporter that ignores every event
type Discard struct{}

func (Discard) Start(types.SearchRequest) {}
func (Discard) Match(types.MatchResult)   {}
func (Discard) Error(error)               {}
func (Discard) Finish(types.RunSummary)   {}
