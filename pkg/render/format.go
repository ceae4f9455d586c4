package render

import "fmt"

// OutputFormat is the closed set of artifact formats a backend can
// produce. Adding a format means adding an enum value and a row in each
// switch below; there is no inference from content.
type OutputFormat int

const (
	// FormatPDF produces Portable Document Format output.
	FormatPDF OutputFormat = iota
	// FormatSVG produces Scalable Vector Graphics output, potentially one
	// artifact per page.
	FormatSVG
	// FormatTxt produces plain text output.
	FormatTxt
)

// String returns the lowercase format name used in selectors and CLIs.
func (f OutputFormat) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatSVG:
		return "svg"
	case FormatTxt:
		return "txt"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// MIMEType returns the content type assigned to artifacts of this format.
func (f OutputFormat) MIMEType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml"
	case FormatTxt:
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// Valid reports whether f is a member of the closed set.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatPDF, FormatSVG, FormatTxt:
		return true
	default:
		return false
	}
}

// ParseFormat maps a format name ("pdf", "svg", "txt") to its enum value.
func ParseFormat(name string) (OutputFormat, error) {
	switch name {
	case "pdf":
		return FormatPDF, nil
	case "svg":
		return FormatSVG, nil
	case "txt":
		return FormatTxt, nil
	default:
		return 0, fmt.Errorf("render: unknown output format %q", name)
	}
}
