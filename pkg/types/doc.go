// Package types defines the values passed between the search components:
// the immutable SearchRequest and its OutputMode, the Candidate and
// MatchResult produced while walking, the RunSummary counters, and the
// read-only FS interface every component reads through.
package types
