// quillmark-cli inspects quill template directories, previews glue
// composition for a markdown document, and renders to plain text through
// the built-in text backend. Use -interactive to pick a quill and action
// via prompts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-quillmark/internal/template/pongo"
	"github.com/goliatone/go-quillmark/pkg/document"
	"github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/render"
	"github.com/goliatone/go-quillmark/pkg/template"

	quillmark "github.com/goliatone/go-quillmark"
)

const (
	actionInfo   = "info"
	actionFields = "fields"
	actionGlue   = "glue"
	actionRender = "render"
)

func main() {
	quillDir := flag.String("quill", "", "quill template directory")
	input := flag.String("input", "", "markdown document to parse (required for fields/glue)")
	action := flag.String("action", actionGlue, "info, fields, glue, or render")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "pick quill and action via prompts")
	flag.Parse()

	ctx := context.Background()

	if *interactive {
		dir, act, err := promptSelection(*quillDir)
		if err != nil {
			log.Fatalf("interactive selection: %v", err)
		}
		*quillDir = dir
		*action = act
	}

	if *quillDir == "" {
		log.Fatalf("quill directory is required (use -quill or -interactive)")
	}

	q, err := quillmark.Load(ctx, *quillDir)
	if err != nil {
		log.Fatalf("load quill: %v", err)
	}

	var result string
	switch *action {
	case actionInfo:
		result = describeQuill(q)
	case actionFields:
		doc := mustParse(*input)
		result = describeFields(doc)
	case actionGlue:
		doc := mustParse(*input)
		result, err = composeGlue(q, doc)
		if err != nil {
			log.Fatalf("compose glue: %v", err)
		}
	case actionRender:
		doc := mustParse(*input)
		result, err = renderText(ctx, q, doc)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
	default:
		log.Fatalf("unknown action %q", *action)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(result), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(result)
}

func mustParse(path string) document.ParsedDocument {
	if path == "" {
		log.Fatalf("input document is required for this action")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	doc, err := quillmark.Parse(string(raw))
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}
	return doc
}

func describeQuill(q quill.Quill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name:    %s\n", q.Name())
	fmt.Fprintf(&b, "version: %s\n", q.Version())
	fmt.Fprintf(&b, "backend: %s\n", q.Backend())
	fmt.Fprintf(&b, "assets:  %s\n", joinOrNone(q.AssetNames()))
	fmt.Fprintf(&b, "fonts:   %s", joinOrNone(q.FontNames()))
	return b.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func describeFields(doc document.ParsedDocument) string {
	fields := doc.Fields()
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %v\n", key, fields[key])
	}
	fmt.Fprintf(&b, "%s: %d bytes", document.BodyField, len(doc.Body()))
	return b.String()
}

// composeGlue previews what a workflow would hand to the backend, using
// the same template engine workflows default to.
func composeGlue(q quill.Quill, doc document.ParsedDocument) (string, error) {
	tmpl, err := pongo.New()
	if err != nil {
		return "", err
	}
	data := doc.Fields()
	data[document.BodyField] = doc.Body()
	return tmpl.RenderString(string(q.Template()), data)
}

// renderText runs the full pipeline with a plain-text backend standing in
// for the one the manifest names, so output can be previewed without a
// typesetter installed.
func renderText(ctx context.Context, q quill.Quill, doc document.ParsedDocument) (string, error) {
	eng := quillmark.New(quillmark.WithBackend(&textBackend{id: q.Backend()}))
	eng.RegisterQuill(q)

	w, err := eng.WorkflowFromQuill(q)
	if err != nil {
		return "", err
	}
	result, err := w.Render(ctx, doc, quillmark.FormatTxt)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, artifact := range result.Artifacts {
		b.Write(artifact.Bytes)
	}
	return b.String(), nil
}

// textBackend emits the composed glue source as the artifact, registered
// under whatever backend ID the loaded quill declares.
type textBackend struct {
	id string
}

func (b *textBackend) ID() string { return b.id }

func (b *textBackend) SupportedFormats() []render.OutputFormat {
	return []render.OutputFormat{render.FormatTxt}
}

func (b *textBackend) RegisterFilters(template.TemplateRenderer) error { return nil }

func (b *textBackend) Compile(_ context.Context, req render.CompileRequest) (render.CompileOutput, error) {
	return render.CompileOutput{Buffers: [][]byte{[]byte(req.Content)}}, nil
}

// promptSelection lists quill directories under root (or the working
// directory) and asks for one plus the action to run.
func promptSelection(root string) (string, string, error) {
	if root == "" {
		root = "."
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", "", err
	}
	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := filepath.Join(root, entry.Name(), "Quill.yaml")
		if _, err := os.Stat(manifest); err == nil {
			candidates = append(candidates, filepath.Join(root, entry.Name()))
		}
	}
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("no quill directories under %s", root)
	}

	var dir string
	if err := survey.AskOne(&survey.Select{
		Message: "Quill directory:",
		Options: candidates,
	}, &dir); err != nil {
		return "", "", err
	}

	var action string
	if err := survey.AskOne(&survey.Select{
		Message: "Action:",
		Options: []string{actionInfo, actionFields, actionGlue, actionRender},
	}, &action); err != nil {
		return "", "", err
	}

	return dir, action, nil
}
