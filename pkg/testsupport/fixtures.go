// Package testsupport bundles fixture builders, golden-file helpers, and a
// stub backend so contract tests across the module stay concise.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgquill "github.com/goliatone/go-quillmark/pkg/quill"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// NewQuill builds a minimal valid quill targeting the stub backend. The
// template greets by title so composition output is easy to assert on.
func NewQuill(t *testing.T, name, version string) pkgquill.Quill {
	t.Helper()

	v, err := pkgquill.ParseVersion(version)
	if err != nil {
		t.Fatalf("parse version: %v", err)
	}
	q, err := pkgquill.New(pkgquill.Config{
		Name:     name,
		Version:  v,
		Backend:  StubBackendID,
		Template: []byte("= {{ title }}\n{{ body }}"),
		Assets: map[string][]byte{
			"logo.png": []byte("static-logo"),
		},
		Fonts: map[string][]byte{
			"base.ttf": []byte("static-font"),
		},
	})
	if err != nil {
		t.Fatalf("new quill: %v", err)
	}
	return q
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set.
// Returns true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
