// Package testutil provides utilities for testing strfind components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with error injection and an operation
//     log, so tests can assert which directories were listed and which
//     files were read
//   - FileTree: declarative tree setup for MemoryFS or a real directory
//
// All test data should be defined inline, not in external files.
package testutil
