package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface the search core runs against
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the whole file; there are no partial reads
	ReadFile(name string) ([]byte, error)

	// ReadDir lists the immediate entries of a directory
	ReadDir(name string) ([]fs.DirEntry, error)
}
