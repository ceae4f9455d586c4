package render

import "fmt"

// BackendError wraps a backend compilation failure, carrying the backend's
// diagnostics untouched. Callers branch with errors.As and recover the
// original error through Unwrap.
type BackendError struct {
	// Backend is the ID of the backend that failed.
	Backend string

	// Err is the backend's own error, unmodified.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("render: backend %q: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError reports a render request for a format the bound
// backend does not produce. Raised before compilation starts.
type UnsupportedFormatError struct {
	Backend string
	Format  OutputFormat
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("render: %s output is not supported by backend %q", e.Format, e.Backend)
}
