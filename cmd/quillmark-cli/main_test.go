package main

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/quill"
)

func testQuill(t *testing.T) quill.Quill {
	t.Helper()
	return quill.MustNew(quill.Config{
		Name:     "letter",
		Version:  quill.MustParseVersion("1.0.0"),
		Backend:  "typst",
		Template: []byte("= {{ title }}\n{{ body }}"),
		Assets:   map[string][]byte{"logo.png": []byte("logo")},
	})
}

func TestJoinOrNone(t *testing.T) {
	if got := joinOrNone(nil); got != "(none)" {
		t.Fatalf("empty list: %q", got)
	}
	if got := joinOrNone([]string{"a.png", "b.ttf"}); got != "a.png, b.ttf" {
		t.Fatalf("joined list: %q", got)
	}
}

func TestDescribeQuill(t *testing.T) {
	out := describeQuill(testQuill(t))

	for _, want := range []string{"letter", "1.0.0", "typst", "logo.png", "(none)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("description %q missing %q", out, want)
		}
	}
}

func TestRenderTextAction(t *testing.T) {
	doc := document.MustParse("---\ntitle: Hello\n---\nDear reader.")

	out, err := renderText(context.Background(), testQuill(t), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "= Hello\nDear reader." {
		t.Fatalf("rendered output: %q", out)
	}
}
