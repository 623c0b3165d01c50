package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileTree represents a nested file structure for declarative test setup.
// A string value is a file with that content; a FileTree value is a directory.
type FileTree map[string]interface{}

// NewMemoryTree creates a MemoryFS holding tree under root.
// The operation log starts empty.
func NewMemoryTree(t *testing.T, root string, tree FileTree) *MemoryFS {
	t.Helper()

	mfs := NewMemoryFS()
	if err := mfs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}
	createFileTree(t, root, tree,
		func(path string, data []byte) error { return mfs.WriteFile(path, data, 0644) },
		func(path string) error { return mfs.MkdirAll(path, 0755) },
	)
	mfs.ResetOps()
	return mfs
}

// CreateFileTree writes tree into dir on the real filesystem.
func CreateFileTree(t *testing.T, dir string, tree FileTree) {
	t.Helper()

	createFileTree(t, dir, tree,
		func(path string, data []byte) error { return os.WriteFile(path, data, 0644) },
		func(path string) error { return os.MkdirAll(path, 0755) },
	)
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, basePath string, tree FileTree, writeFile func(string, []byte) error, mkdir func(string) error) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := writeFile(fullPath, []byte(v)); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := mkdir(fullPath); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fullPath, v, writeFile, mkdir)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
