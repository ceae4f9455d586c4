package testsupport

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-quillmark/pkg/render"
	"github.com/goliatone/go-quillmark/pkg/template"
)

// StubBackendID is the backend ID fixture quills declare.
const StubBackendID = "stub"

// StubBackend implements render.Backend for tests. By default it echoes
// the composed content as a single artifact; CompileFn overrides that, and
// LastRequest records whatever Compile received so tests can assert on the
// prepared quill and merged resources.
type StubBackend struct {
	// Formats defaults to PDF, SVG, and TXT when empty.
	Formats []render.OutputFormat

	// CompileFn, when set, replaces the default echo behaviour.
	CompileFn func(ctx context.Context, req render.CompileRequest) (render.CompileOutput, error)

	// Warnings rides on every default compilation's output.
	Warnings []render.Diagnostic

	// LastRequest holds the most recent Compile input.
	LastRequest *render.CompileRequest

	// Compilations counts Compile calls.
	Compilations int
}

// Ensure the stub satisfies the backend contract.
var _ render.Backend = (*StubBackend)(nil)

// ID returns the stub backend identifier.
func (b *StubBackend) ID() string {
	return StubBackendID
}

// SupportedFormats returns the configured formats, defaulting to the full
// closed set.
func (b *StubBackend) SupportedFormats() []render.OutputFormat {
	if len(b.Formats) > 0 {
		return append([]render.OutputFormat(nil), b.Formats...)
	}
	return []render.OutputFormat{render.FormatPDF, render.FormatSVG, render.FormatTxt}
}

// RegisterFilters installs an uppercase helper so glue tests can observe
// backend filter wiring.
func (b *StubBackend) RegisterFilters(tr template.TemplateRenderer) error {
	return tr.RegisterFilter("stub_upper", func(input any, _ any) (any, error) {
		s, ok := input.(string)
		if !ok {
			return nil, fmt.Errorf("stub_upper: expected string, got %T", input)
		}
		return strings.ToUpper(s), nil
	})
}

// Compile records the request and produces one artifact echoing the
// composed content, unless CompileFn overrides it.
func (b *StubBackend) Compile(ctx context.Context, req render.CompileRequest) (render.CompileOutput, error) {
	b.Compilations++
	reqCopy := req
	b.LastRequest = &reqCopy

	if b.CompileFn != nil {
		return b.CompileFn(ctx, req)
	}
	if err := ctx.Err(); err != nil {
		return render.CompileOutput{}, err
	}
	return render.CompileOutput{
		Buffers:  [][]byte{[]byte(req.Content)},
		Warnings: b.Warnings,
	}, nil
}
