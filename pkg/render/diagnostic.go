package render

import "fmt"

// Severity grades a diagnostic. Errors abort compilation; warnings and
// notes travel with a successful result.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Location points into a source file a diagnostic refers to. Line and
// column are 1-indexed.
type Location struct {
	File string
	Line int
	Col  int
}

// Diagnostic is a structured message a backend attaches to a compilation:
// non-fatal ones ride on the RenderResult, fatal ones explain a failure.
type Diagnostic struct {
	Severity Severity

	// Code is an optional backend-specific identifier.
	Code string

	Message string

	// Primary is the main source location, when the backend has one.
	Primary *Location

	// Hint optionally suggests a fix.
	Hint string
}

func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s: %s", d.Severity, d.Message)
	if d.Primary != nil {
		msg = fmt.Sprintf("%s:%d:%d: %s", d.Primary.File, d.Primary.Line, d.Primary.Col, msg)
	}
	return msg
}
