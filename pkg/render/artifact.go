package render

// Artifact is one produced output: a binary payload tagged with the MIME
// type derived from the requested format.
type Artifact struct {
	// Bytes is the binary payload.
	Bytes []byte

	// MIMEType is assigned from the OutputFormat table, never sniffed from
	// content.
	MIMEType string
}

// RenderResult is the output contract of a render call: the ordered
// artifacts the backend produced, the format that was requested, and any
// non-fatal diagnostics the backend raised. The format is carried from the
// request, not re-derived, so a backend that produces zero artifacts still
// reports what was asked for.
type RenderResult struct {
	Artifacts    []Artifact
	OutputFormat OutputFormat
	Warnings     []Diagnostic
}

// NewRenderResult wraps raw backend buffers into MIME-tagged artifacts.
func NewRenderResult(buffers [][]byte, format OutputFormat) RenderResult {
	artifacts := make([]Artifact, 0, len(buffers))
	for _, buf := range buffers {
		artifacts = append(artifacts, Artifact{
			Bytes:    buf,
			MIMEType: format.MIMEType(),
		})
	}
	return RenderResult{
		Artifacts:    artifacts,
		OutputFormat: format,
	}
}
