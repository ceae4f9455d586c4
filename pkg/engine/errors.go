package engine

import (
	"fmt"
	"strings"
)

// NotFoundError reports that a selector resolved to no registered quill.
// Workflow construction raises it; GetQuill signals the same condition as
// a false boolean instead, so probing stays side-effect free.
type NotFoundError struct {
	// Selector is the selector string that failed to resolve.
	Selector string

	// Available lists the registered quill names at resolution time.
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("engine: quill %q not registered", e.Selector)
	}
	return fmt.Sprintf("engine: quill %q not registered (available: %s)",
		e.Selector, strings.Join(e.Available, ", "))
}

// SelectorError reports a selector string that does not match the
// NAME or NAME@VERSION grammar.
type SelectorError struct {
	Selector string
	Reason   string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("engine: malformed selector %q: %s", e.Selector, e.Reason)
}

// ResourceKind distinguishes the two dynamic overlays.
type ResourceKind string

const (
	ResourceAsset ResourceKind = "asset"
	ResourceFont  ResourceKind = "font"
)

// CollisionError reports an attempt to add a dynamic asset or font under a
// filename already present in that overlay. The existing entry is left
// unchanged; shadowing a name silently would mask caller bugs until visual
// inspection of the output.
type CollisionError struct {
	Kind     ResourceKind
	Filename string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("engine: dynamic %s %q already exists; each %s filename must be unique",
		e.Kind, e.Filename, e.Kind)
}
