package types

// Candidate is a file selected by name during enumeration
type Candidate struct {
	// Path as enumerated: the root joined with the relative location
	Path string
	// Name is the base name of Path
	Name string
}

// MatchResult is the outcome of checking one candidate's content
type MatchResult struct {
	Candidate Candidate
	Matched   bool
}

// RunSummary holds the counters accumulated during a search run
type RunSummary struct {
	// NameMatched counts files whose name matched the glob
	NameMatched int
	// ContentMatched counts files whose content matched the term
	ContentMatched int
	// Errors counts recoverable listing and read errors
	Errors int
}
