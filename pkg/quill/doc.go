// Package quill exposes the public contracts for template packages: the
// immutable Quill type, semantic versions, and the loader Source/Options
// surface. The filesystem loader implementation lives under internal/quill
// to keep manifest parsing details hidden from consumers.
package quill
