package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quillmark/pkg/document"
)

func TestParse_FrontMatterAndBody(t *testing.T) {
	doc, err := document.Parse("---\ntitle: My Document\nauthor: Alice\ncount: 3\n---\n# Introduction\n\nHello.\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[string]any{
		"title":  "My Document",
		"author": "Alice",
		"count":  3,
	}
	if diff := cmp.Diff(want, doc.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := doc.Body(); got != "# Introduction\n\nHello.\n" {
		t.Fatalf("body mismatch: %q", got)
	}
}

func TestParse_NoFrontMatter(t *testing.T) {
	doc, err := document.Parse("# Just a heading\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Fields()) != 0 {
		t.Fatalf("expected no fields, got %v", doc.Fields())
	}
	if doc.Body() != "# Just a heading\n" {
		t.Fatalf("body mismatch: %q", doc.Body())
	}
}

func TestParse_UnterminatedFrontMatter(t *testing.T) {
	if _, err := document.Parse("---\ntitle: broken\n# body"); err == nil {
		t.Fatal("expected error for unterminated front matter")
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := document.Parse("---\ntitle: [unclosed\n---\nbody"); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParse_ReservedBodyField(t *testing.T) {
	if _, err := document.Parse("---\nbody: nope\n---\ncontent"); err == nil {
		t.Fatal("expected error for reserved body field")
	}
}

func TestParse_FrontMatterAtEndOfDocument(t *testing.T) {
	doc, err := document.Parse("---\ntitle: only meta\n---")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Body() != "" {
		t.Fatalf("expected empty body, got %q", doc.Body())
	}
	title, _ := doc.Field("title")
	if title != "only meta" {
		t.Fatalf("title mismatch: %v", title)
	}
}

func TestQuillTag(t *testing.T) {
	doc := document.MustParse("---\nQUILL: resume_template@2.1\ntitle: CV\n---\nbody")

	tag, ok := doc.QuillTag()
	if !ok {
		t.Fatal("expected quill tag")
	}
	if tag != "resume_template@2.1" {
		t.Fatalf("tag mismatch: %q", tag)
	}

	plain := document.MustParse("---\ntitle: CV\n---\nbody")
	if _, ok := plain.QuillTag(); ok {
		t.Fatal("unexpected quill tag")
	}
}

func TestFields_ReturnsCopy(t *testing.T) {
	doc := document.MustParse("---\ntitle: original\n---\nbody")

	fields := doc.Fields()
	fields["title"] = "mutated"

	value, _ := doc.Field("title")
	if value != "original" {
		t.Fatalf("fields copy leaked mutation: %v", value)
	}
}
