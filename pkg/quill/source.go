package quill

import "path/filepath"

// Source identifies where a template directory lives so the loader can
// operate on disk paths or fs.FS roots without leaking implementation
// details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindDir SourceKind = "dir"
	SourceKindFS  SourceKind = "fs"
)

// dirSource identifies an on-disk template directory.
type dirSource struct {
	path string
}

func (s dirSource) Location() string {
	return s.path
}

func (s dirSource) Kind() SourceKind {
	return SourceKindDir
}

// SourceFromDir returns a Source pointing at a template directory on disk.
func SourceFromDir(path string) Source {
	return dirSource{path: filepath.Clean(path)}
}

// fsSource references a directory within an fs.FS.
type fsSource struct {
	root string
}

func (s fsSource) Location() string {
	return s.root
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a template root inside an
// fs.FS supplied via loader options. Use "." for the filesystem root.
func SourceFromFS(root string) Source {
	if root == "" {
		root = "."
	}
	return fsSource{root: root}
}
