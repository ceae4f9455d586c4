// Package render defines the backend-facing rendering contract: the closed
// OutputFormat set with its MIME table, the Artifact/RenderResult output
// shape, the Backend interface, and a registry for backend discovery.
package render
