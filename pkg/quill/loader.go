package quill

// Loader contracts for turning a template directory into an immutable
// Quill. The filesystem implementation lives under internal/quill/loader.

import (
	"context"
	"io/fs"
)

// Loader materialises Quills from directory sources. Implementations fail
// with a load error when the manifest is missing or malformed, or when the
// declared template file cannot be read.
type Loader interface {
	Load(ctx context.Context, src Source) (Quill, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Nil means fs.FS sources are
	// rejected and only disk directories load.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS for SourceFromFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies LoaderOption values and returns the resulting
// configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level quillmark package to prevent import cycles.
