package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/render"
	"github.com/goliatone/go-quillmark/pkg/template"
)

// File pairs a filename with its contents for batch overlay additions.
type File struct {
	Name     string
	Contents []byte
}

// Workflow is a per-render session bound to one resolved quill. It owns
// the caller-supplied dynamic overlays, which persist across Render calls
// until cleared. A Workflow is single-caller state: do not mutate one from
// multiple goroutines.
type Workflow struct {
	quill   quill.Quill
	backend render.Backend
	tmpl    template.TemplateRenderer
	assets  *overlay
	fonts   *overlay
}

// QuillName returns the bound quill's name.
func (w *Workflow) QuillName() string {
	return w.quill.Name()
}

// QuillVersion returns the bound quill's version.
func (w *Workflow) QuillVersion() quill.Version {
	return w.quill.Version()
}

// BackendID returns the backend this workflow dispatches to.
func (w *Workflow) BackendID() string {
	return w.backend.ID()
}

// SupportedFormats returns the output formats the backend accepts.
func (w *Workflow) SupportedFormats() []render.OutputFormat {
	return w.backend.SupportedFormats()
}

// AddAsset adds a dynamic asset. A filename already present in the dynamic
// overlay is a CollisionError and leaves the prior entry unchanged; static
// quill assets are never affected.
func (w *Workflow) AddAsset(filename string, contents []byte) error {
	return w.assets.add(filename, contents)
}

// AddAssets applies AddAsset for each file in order. The first collision
// aborts the batch: earlier files stay applied, later files are not. The
// returned error names the colliding filename.
func (w *Workflow) AddAssets(files []File) error {
	for _, f := range files {
		if err := w.assets.add(f.Name, f.Contents); err != nil {
			return err
		}
	}
	return nil
}

// AddFont adds a dynamic font under the AddAsset contract.
func (w *Workflow) AddFont(filename string, contents []byte) error {
	return w.fonts.add(filename, contents)
}

// AddFonts applies AddFont for each file in order, with the same
// partial-application semantics as AddAssets.
func (w *Workflow) AddFonts(files []File) error {
	for _, f := range files {
		if err := w.fonts.add(f.Name, f.Contents); err != nil {
			return err
		}
	}
	return nil
}

// ClearAssets empties the dynamic asset overlay. Never fails.
func (w *Workflow) ClearAssets() {
	w.assets.clear()
}

// ClearFonts empties the dynamic font overlay. Never fails.
func (w *Workflow) ClearFonts() {
	w.fonts.clear()
}

// DynamicAssetNames lists the dynamic asset filenames in insertion order.
func (w *Workflow) DynamicAssetNames() []string {
	return w.assets.nameList()
}

// DynamicFontNames lists the dynamic font filenames in insertion order.
func (w *Workflow) DynamicFontNames() []string {
	return w.fonts.nameList()
}

// ProcessGlue composes the quill's glue template with the document's
// front-matter fields plus the body, returning the composed source
// without compiling it.
func (w *Workflow) ProcessGlue(doc document.ParsedDocument) (string, error) {
	data := doc.Fields()
	data[document.BodyField] = doc.Body()

	content, err := w.tmpl.RenderString(string(w.quill.Template()), data)
	if err != nil {
		return "", fmt.Errorf("engine: compose glue template: %w", err)
	}
	return content, nil
}

// Render composes the glue template, merges static and dynamic resources
// (dynamic wins on name clashes), and dispatches to the backend. Backend
// failures surface as a BackendError carrying the backend's diagnostics
// unchanged; non-fatal backend diagnostics ride on the result as
// Warnings. The result always reports the requested format, even when the
// backend produced zero artifacts.
func (w *Workflow) Render(ctx context.Context, doc document.ParsedDocument, format render.OutputFormat) (render.RenderResult, error) {
	if ctx == nil {
		return render.RenderResult{}, errors.New("engine: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.RenderResult{}, err
	}
	if !format.Valid() {
		return render.RenderResult{}, fmt.Errorf("engine: invalid output format %v", format)
	}
	if !w.supportsFormat(format) {
		return render.RenderResult{}, &render.UnsupportedFormatError{Backend: w.backend.ID(), Format: format}
	}

	content, err := w.ProcessGlue(doc)
	if err != nil {
		return render.RenderResult{}, err
	}

	prepared := w.quill.WithOverlay(w.assets.snapshot(), w.fonts.snapshot())

	out, err := w.backend.Compile(ctx, render.CompileRequest{
		Content:  content,
		Document: doc,
		Quill:    prepared,
		Format:   format,
	})
	if err != nil {
		return render.RenderResult{}, &render.BackendError{Backend: w.backend.ID(), Err: err}
	}

	result := render.NewRenderResult(out.Buffers, format)
	result.Warnings = out.Warnings
	return result, nil
}

func (w *Workflow) supportsFormat(format render.OutputFormat) bool {
	for _, supported := range w.backend.SupportedFormats() {
		if supported == format {
			return true
		}
	}
	return false
}

// overlay is an insertion-ordered filename → bytes map with
// collision-over-overwrite semantics.
type overlay struct {
	kind  ResourceKind
	names []string
	files map[string][]byte
}

func newOverlay(kind ResourceKind) *overlay {
	return &overlay{
		kind:  kind,
		files: make(map[string][]byte),
	}
}

func (o *overlay) add(filename string, contents []byte) error {
	if filename == "" {
		return fmt.Errorf("engine: dynamic %s filename is required", o.kind)
	}
	if _, exists := o.files[filename]; exists {
		return &CollisionError{Kind: o.kind, Filename: filename}
	}
	o.files[filename] = append([]byte(nil), contents...)
	o.names = append(o.names, filename)
	return nil
}

func (o *overlay) clear() {
	o.names = nil
	o.files = make(map[string][]byte)
}

func (o *overlay) nameList() []string {
	return append([]string(nil), o.names...)
}

func (o *overlay) snapshot() map[string][]byte {
	out := make(map[string][]byte, len(o.files))
	for name, data := range o.files {
		out[name] = append([]byte(nil), data...)
	}
	return out
}
