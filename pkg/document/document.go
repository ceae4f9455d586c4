package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BodyField is the reserved field name under which the document body is
// exposed to glue templates. Front matter may not declare it.
const BodyField = "body"

// QuillTagField is the front-matter key naming the quill (optionally with
// a version selector) the document should render against.
const QuillTagField = "QUILL"

const frontMatterFence = "---"

// ParsedDocument is the structured form of a markdown input: a front-matter
// field map plus the body content after the closing fence. Immutable once
// parsed.
type ParsedDocument struct {
	fields map[string]any
	body   string
}

// Parse splits markdown into YAML front matter and body. A document without
// a front-matter block parses successfully with empty fields. Malformed
// YAML or an unterminated block is an error.
func Parse(markdown string) (ParsedDocument, error) {
	block, body, err := splitFrontMatter(markdown)
	if err != nil {
		return ParsedDocument{}, err
	}

	fields := make(map[string]any)
	if block != "" {
		if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
			return ParsedDocument{}, fmt.Errorf("document: parse front matter: %w", err)
		}
		if _, reserved := fields[BodyField]; reserved {
			return ParsedDocument{}, fmt.Errorf("document: front matter may not declare reserved field %q", BodyField)
		}
	}

	return ParsedDocument{fields: fields, body: body}, nil
}

// MustParse panics on parse failure. Useful for fixtures and tests.
func MustParse(markdown string) ParsedDocument {
	doc, err := Parse(markdown)
	if err != nil {
		panic(err)
	}
	return doc
}

// Field returns the front-matter value for name, or false when absent.
func (d ParsedDocument) Field(name string) (any, bool) {
	value, ok := d.fields[name]
	return value, ok
}

// Fields returns a copy of the front-matter map.
func (d ParsedDocument) Fields() map[string]any {
	out := make(map[string]any, len(d.fields))
	for key, value := range d.fields {
		out[key] = value
	}
	return out
}

// Body returns the document content after front-matter extraction.
func (d ParsedDocument) Body() string {
	return d.body
}

// QuillTag returns the QUILL front-matter directive ("name" or
// "name@selector"), or false when the document does not carry one.
func (d ParsedDocument) QuillTag() (string, bool) {
	raw, ok := d.fields[QuillTagField]
	if !ok {
		return "", false
	}
	tag, ok := raw.(string)
	if !ok || strings.TrimSpace(tag) == "" {
		return "", false
	}
	return strings.TrimSpace(tag), true
}

// splitFrontMatter separates the leading fenced YAML block from the body.
// The opening fence must be the first line; the closing fence may be
// followed by the body or end the document.
func splitFrontMatter(markdown string) (block, body string, err error) {
	normalized := strings.ReplaceAll(markdown, "\r\n", "\n")

	if !strings.HasPrefix(normalized, frontMatterFence+"\n") && normalized != frontMatterFence {
		return "", normalized, nil
	}

	rest := strings.TrimPrefix(normalized, frontMatterFence)
	rest = strings.TrimPrefix(rest, "\n")

	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		// Opening fence immediately followed by the closing fence.
		if rest == frontMatterFence || strings.HasPrefix(rest, frontMatterFence+"\n") {
			return "", strings.TrimPrefix(strings.TrimPrefix(rest, frontMatterFence), "\n"), nil
		}
		return "", "", fmt.Errorf("document: unterminated front matter block")
	}

	block = rest[:end]
	body = rest[end+len("\n"+frontMatterFence):]
	if body != "" && !strings.HasPrefix(body, "\n") {
		return "", "", fmt.Errorf("document: malformed closing front matter fence")
	}
	body = strings.TrimPrefix(body, "\n")
	return block, body, nil
}
