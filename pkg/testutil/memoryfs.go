package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Operation kinds recorded by MemoryFS
const (
	OpStat     = "stat"
	OpReadFile = "readfile"
	OpReadDir  = "readdir"
)

// Op is one recorded filesystem call
type Op struct {
	Kind string
	Path string
}

// MemoryFS implements types.FS interface with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	// Operation log, in call order
	ops []Op
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		errorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute, slash-separated form
func (m *MemoryFS) normalizePath(path string) string {
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func (m *MemoryFS) record(kind, path string) {
	m.ops = append(m.ops, Op{Kind: kind, Path: m.normalizePath(path)})
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// resolve follows a symlink node to its target
func (m *MemoryFS) resolve(name string, node *fileNode) (*fileNode, error) {
	if !node.isLink {
		return node, nil
	}
	target := node.linkDest
	if !strings.HasPrefix(target, "/") {
		target = filepath.Join(filepath.Dir(m.normalizePath(name)), target)
	}
	return m.getNode(target)
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(OpReadFile, name)

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	node, err = m.resolve(name, node)
	if err != nil {
		return nil, err
	}

	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(OpStat, name)

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	node, err = m.resolve(name, node)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// ReadDir reads a directory and returns its entries sorted by name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record(OpReadDir, name)

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, &dirEntry{
			name: childName,
			info: &fileInfo{node: child, name: childName},
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// WriteFile writes data to a file, creating parent directories as needed
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(name)

	parent, err := m.mkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}

	filename := filepath.Base(path)
	if existing, ok := parent.children[filename]; ok && existing.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	node := &fileNode{
		name:    filename,
		mode:    perm,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)

	parent.children[filename] = node
	m.files[path] = node

	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.mkdirAll(path, perm)
	return err
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) (*fileNode, error) {
	path = m.normalizePath(path)

	if node, ok := m.files[path]; ok {
		if !node.isDir {
			return nil, &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("file exists")}
		}
		return node, nil
	}

	current := "/"
	currentNode := m.files["/"]

	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}

		next := filepath.ToSlash(filepath.Join(current, part))

		if child, exists := currentNode.children[part]; exists {
			if !child.isDir {
				return nil, &fs.PathError{Op: "mkdir", Path: next, Err: errors.New("not a directory")}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     part,
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[part] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}

	return currentNode, nil
}

// Symlink creates a symbolic link
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	linkPath := m.normalizePath(link)

	if _, exists := m.files[linkPath]; exists {
		return &fs.PathError{Op: "symlink", Path: link, Err: os.ErrExist}
	}

	parent, err := m.mkdirAll(filepath.Dir(linkPath), 0755)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:     filepath.Base(linkPath),
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}

	parent.children[node.name] = node
	m.files[linkPath] = node

	return nil
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// Ops returns a copy of the operation log
func (m *MemoryFS) Ops() []Op {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Op, len(m.ops))
	copy(out, m.ops)
	return out
}

// Paths returns the paths passed to operations of the given kind, in call order
func (m *MemoryFS) Paths(kind string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var paths []string
	for _, op := range m.ops {
		if op.Kind == kind {
			paths = append(paths, op.Path)
		}
	}
	return paths
}

// ResetOps clears the operation log
func (m *MemoryFS) ResetOps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = nil
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }

// dirEntry implements fs.DirEntry
type dirEntry struct {
	name string
	info os.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de *dirEntry) Type() os.FileMode          { return de.info.Mode().Type() }
func (de *dirEntry) Info() (os.FileInfo, error) { return de.info, nil }
