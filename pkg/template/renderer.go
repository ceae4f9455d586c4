// Package template declares the rendering seam glue composition depends
// on, mirroring the github.com/goliatone/go-template engine contract so
// callers can swap implementations without touching workflow code.
package template

import "io"

// TemplateRenderer composes template content with document data. The
// default implementation lives under internal/template/pongo; backends
// extend it through RegisterFilter.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
