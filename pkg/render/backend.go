package render

import (
	"context"

	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/template"
)

// CompileRequest carries everything a backend needs for one compilation:
// the glue-composed content, the originating document, the quill whose
// resource maps already include any dynamic overlays, and the requested
// format.
type CompileRequest struct {
	// Content is the glue template output the backend compiles.
	Content string

	// Document is the parsed input, available for backends that consult
	// front matter directly.
	Document document.ParsedDocument

	// Quill is the resolved template package with static and dynamic
	// resources merged.
	Quill quill.Quill

	// Format is the requested output format.
	Format OutputFormat
}

// CompileOutput is what a backend hands back on success: one raw buffer
// per produced artifact plus any non-fatal diagnostics.
type CompileOutput struct {
	Buffers  [][]byte
	Warnings []Diagnostic
}

// Backend turns composed content plus a prepared quill into raw output
// buffers, one per produced artifact. Implementations live outside this
// module (a stub ships in pkg/testsupport); failures surface verbatim
// through a BackendError wrapper.
type Backend interface {
	// ID is the stable identifier quill manifests reference.
	ID() string

	// SupportedFormats lists the formats Compile accepts.
	SupportedFormats() []OutputFormat

	// RegisterFilters installs backend-specific template filters on the
	// renderer used for glue composition. Called once when the backend is
	// registered with an engine.
	RegisterFilters(tr template.TemplateRenderer) error

	// Compile produces the output buffers and any warnings. Compile may
	// block for the duration of typesetting work; honour ctx cancellation.
	Compile(ctx context.Context, req CompileRequest) (CompileOutput, error)
}
