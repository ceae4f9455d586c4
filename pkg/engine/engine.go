package engine

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-quillmark/internal/template/pongo"
	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/render"
	"github.com/goliatone/go-quillmark/pkg/template"
)

// Option customises the engine configuration.
type Option func(*Engine)

// WithBackend registers a backend during construction. Registration
// failures (duplicate or empty IDs) surface from the first engine call.
func WithBackend(backend render.Backend) Option {
	return func(e *Engine) {
		if err := e.backends.Register(backend); err != nil && e.initialiseErr == nil {
			e.initialiseErr = fmt.Errorf("engine: register backend: %w", err)
		}
	}
}

// WithBackendRegistry injects a shared backend registry.
func WithBackendRegistry(registry *render.Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.backends = registry
		}
	}
}

// WithQuillRegistry injects a shared quill registry.
func WithQuillRegistry(registry *Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.quills = registry
		}
	}
}

// WithTemplateRenderer injects a custom glue composition engine.
func WithTemplateRenderer(tr template.TemplateRenderer) Option {
	return func(e *Engine) {
		if tr != nil {
			e.tmpl = tr
		}
	}
}

// Engine owns the process-wide registries and builds per-render workflows.
// Registries are internally locked; the Engine itself holds no other
// mutable state, so one Engine serves concurrent callers.
type Engine struct {
	backends      *render.Registry
	quills        *Registry
	tmpl          template.TemplateRenderer
	initialiseErr error
}

// New constructs an Engine applying any provided options. Missing
// dependencies are initialised with the built-in implementations so
// callers can start with a single constructor call.
func New(options ...Option) *Engine {
	e := &Engine{
		backends: render.NewRegistry(),
		quills:   NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.tmpl == nil {
		tmpl, err := pongo.New()
		if err != nil {
			if e.initialiseErr == nil {
				e.initialiseErr = fmt.Errorf("engine: default template renderer: %w", err)
			}
		} else {
			e.tmpl = tmpl
		}
	}

	// Backends supplied through options (or a pre-populated registry) get
	// their filters installed once here, so workflow construction never
	// touches the renderer's filter state.
	if e.tmpl != nil {
		for _, id := range e.backends.List() {
			backend, err := e.backends.Get(id)
			if err != nil {
				continue
			}
			if err := backend.RegisterFilters(e.tmpl); err != nil && e.initialiseErr == nil {
				e.initialiseErr = fmt.Errorf("engine: register %q filters: %w", id, err)
			}
		}
	}
	return e
}

// RegisterBackend adds a backend after construction and installs its
// template filters.
func (e *Engine) RegisterBackend(backend render.Backend) error {
	if err := e.backends.Register(backend); err != nil {
		return err
	}
	if e.tmpl != nil {
		if err := backend.RegisterFilters(e.tmpl); err != nil {
			return fmt.Errorf("engine: register %q filters: %w", backend.ID(), err)
		}
	}
	return nil
}

// RegisterQuill inserts or replaces the (name, version) entry in the quill
// registry. It never fails for a well-formed Quill; a re-registration of
// the same name and version replaces the prior entry.
func (e *Engine) RegisterQuill(q quill.Quill) {
	e.quills.Register(q)
}

// UnregisterQuill drops every version registered under name.
func (e *Engine) UnregisterQuill(name string) bool {
	return e.quills.Remove(name)
}

// GetQuill resolves a selector against the registry. Absence is returned
// as a false boolean, not an error; the only error case is a malformed
// selector. Probing with GetQuill has no side effects.
func (e *Engine) GetQuill(selector string) (quill.Quill, bool, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return quill.Quill{}, false, err
	}
	q, ok := e.quills.Resolve(sel)
	return q, ok, nil
}

// RegisteredQuills lists the registered quill names in sorted order.
func (e *Engine) RegisteredQuills() []string {
	return e.quills.Names()
}

// QuillVersions lists the versions registered under name, ascending.
func (e *Engine) QuillVersions(name string) []quill.Version {
	return e.quills.Versions(name)
}

// RegisteredBackends lists the registered backend IDs in sorted order.
func (e *Engine) RegisteredBackends() []string {
	return e.backends.List()
}

// Workflow resolves the selector and binds the quill to a new render
// session. Unlike GetQuill, a selector that resolves to nothing is a hard
// error here: the workflow cannot exist without a concrete quill.
func (e *Engine) Workflow(selector string) (*Workflow, error) {
	if err := e.initialiseErr; err != nil {
		return nil, err
	}

	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	q, ok := e.quills.Resolve(sel)
	if !ok {
		return nil, &NotFoundError{Selector: selector, Available: e.quills.Names()}
	}
	return e.newWorkflow(q)
}

// WorkflowFromQuill binds a workflow directly to a quill object, which
// does not need to be registered.
func (e *Engine) WorkflowFromQuill(q quill.Quill) (*Workflow, error) {
	if err := e.initialiseErr; err != nil {
		return nil, err
	}
	return e.newWorkflow(q)
}

// WorkflowFromDocument reads the QUILL front-matter tag and resolves it
// like Workflow. Documents without a tag are an error.
func (e *Engine) WorkflowFromDocument(doc document.ParsedDocument) (*Workflow, error) {
	tag, ok := doc.QuillTag()
	if !ok {
		return nil, errors.New("engine: document does not carry a QUILL tag")
	}
	return e.Workflow(tag)
}

func (e *Engine) newWorkflow(q quill.Quill) (*Workflow, error) {
	backend, err := e.backends.Get(q.Backend())
	if err != nil {
		return nil, fmt.Errorf("engine: quill %q: %w", q.Name(), err)
	}

	return &Workflow{
		quill:   q,
		backend: backend,
		tmpl:    e.tmpl,
		assets:  newOverlay(ResourceAsset),
		fonts:   newOverlay(ResourceFont),
	}, nil
}
