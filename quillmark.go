// Package quillmark resolves named, semantically versioned document
// templates ("quills"), binds one to a render workflow carrying dynamic
// assets and fonts, and produces MIME-tagged artifacts through a pluggable
// backend. The root package re-exports the public surface; implementations
// live under pkg/ and internal/.
package quillmark

import (
	"context"

	internalloader "github.com/goliatone/go-quillmark/internal/quill/loader"
	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/engine"
	"github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/render"
)

// Quill is an immutable, loaded template package.
type Quill = quill.Quill

// Version is a semantic major.minor.patch triple.
type Version = quill.Version

// ParsedDocument is the structured form of a markdown input.
type ParsedDocument = document.ParsedDocument

// Engine owns the quill and backend registries.
type Engine = engine.Engine

// Workflow is a per-render session bound to one resolved quill.
type Workflow = engine.Workflow

// File pairs a filename with contents for batch overlay additions.
type File = engine.File

// OutputFormat is the closed set of artifact formats.
type OutputFormat = render.OutputFormat

// Artifact is one produced output with its MIME type.
type Artifact = render.Artifact

// RenderResult carries the produced artifacts, the requested format, and
// any non-fatal backend diagnostics.
type RenderResult = render.RenderResult

// Diagnostic is a structured backend message attached to a result.
type Diagnostic = render.Diagnostic

// Backend is the rendering backend contract.
type Backend = render.Backend

// Output formats re-exported for callers of the root package.
const (
	FormatPDF = render.FormatPDF
	FormatSVG = render.FormatSVG
	FormatTxt = render.FormatTxt
)

// New constructs an Engine applying any provided options.
func New(options ...engine.Option) *engine.Engine {
	return engine.New(options...)
}

// WithBackend registers a backend during engine construction.
func WithBackend(backend render.Backend) engine.Option {
	return engine.WithBackend(backend)
}

// NewLoader constructs a quill loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...quill.LoaderOption) quill.Loader {
	cfg := quill.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// Load reads a quill template directory from disk.
func Load(ctx context.Context, path string) (quill.Quill, error) {
	return NewLoader().Load(ctx, quill.SourceFromDir(path))
}

// Parse splits markdown into front-matter fields and body.
func Parse(markdown string) (document.ParsedDocument, error) {
	return document.Parse(markdown)
}
