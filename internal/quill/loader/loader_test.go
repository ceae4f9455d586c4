package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quillmark/internal/quill/loader"
	pkgquill "github.com/goliatone/go-quillmark/pkg/quill"
	"github.com/goliatone/go-quillmark/pkg/testsupport"
)

const validManifest = `Quill:
  name: taro
  version: "1.2"
  backend: typst
  template: glue.typ
  description: invoice template
  author: Ada
`

func validTree() fstest.MapFS {
	return fstest.MapFS{
		"quills/taro/Quill.yaml":              {Data: []byte(validManifest)},
		"quills/taro/glue.typ":                {Data: []byte("= {{ title }}\n{{ body }}")},
		"quills/taro/assets/logo.png":         {Data: []byte("logo-bytes")},
		"quills/taro/assets/img/cover.jpg":    {Data: []byte("cover-bytes")},
		"quills/taro/fonts/ibm-plex/bold.ttf": {Data: []byte("font-bytes")},
	}
}

func newFSLoader(fsys fstest.MapFS) pkgquill.Loader {
	return loader.New(pkgquill.NewLoaderOptions(pkgquill.WithFileSystem(fsys)))
}

func TestLoad_FromFS(t *testing.T) {
	l := newFSLoader(validTree())

	q, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS("quills/taro"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if q.Name() != "taro" {
		t.Fatalf("name: %q", q.Name())
	}
	if got := q.Version().String(); got != "1.2.0" {
		t.Fatalf("version: %q", got)
	}
	if q.Backend() != "typst" {
		t.Fatalf("backend: %q", q.Backend())
	}
	if got := string(q.Template()); got != "= {{ title }}\n{{ body }}" {
		t.Fatalf("template: %q", got)
	}

	wantAssets := []string{"img/cover.jpg", "logo.png"}
	if diff := cmp.Diff(wantAssets, q.AssetNames()); diff != "" {
		t.Fatalf("asset names mismatch (-want +got):\n%s", diff)
	}
	if data, ok := q.Asset("img/cover.jpg"); !ok || string(data) != "cover-bytes" {
		t.Fatalf("nested asset: %q (present=%v)", data, ok)
	}

	wantFonts := []string{"ibm-plex/bold.ttf"}
	if diff := cmp.Diff(wantFonts, q.FontNames()); diff != "" {
		t.Fatalf("font names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ManifestMetadataInline(t *testing.T) {
	l := newFSLoader(validTree())

	q, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS("quills/taro"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got, ok := q.Metadata("description"); !ok || got != "invoice template" {
		t.Fatalf("description metadata: %v (present=%v)", got, ok)
	}
	if got, ok := q.Metadata("author"); !ok || got != "Ada" {
		t.Fatalf("author metadata: %v (present=%v)", got, ok)
	}
	// Reserved manifest keys never leak into metadata.
	if _, ok := q.Metadata("name"); ok {
		t.Fatal("manifest name leaked into metadata")
	}
}

func TestLoad_NoResourceDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"Quill.yaml": {Data: []byte(validManifest)},
		"glue.typ":   {Data: []byte("{{ body }}")},
	}
	l := newFSLoader(fsys)

	q, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS(""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(q.AssetNames()) != 0 || len(q.FontNames()) != 0 {
		t.Fatalf("expected no bundled resources, got assets=%v fonts=%v",
			q.AssetNames(), q.FontNames())
	}
}

func TestLoad_ManifestErrors(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		wantMsg  string
	}{
		{
			name:     "missing name",
			manifest: "Quill:\n  version: \"1.0.0\"\n  backend: typst\n  template: glue.typ\n",
			wantMsg:  "Quill.name",
		},
		{
			name:     "missing version",
			manifest: "Quill:\n  name: taro\n  backend: typst\n  template: glue.typ\n",
			wantMsg:  "Quill.version",
		},
		{
			name:     "missing template",
			manifest: "Quill:\n  name: taro\n  version: \"1.0.0\"\n  backend: typst\n",
			wantMsg:  "Quill.template",
		},
		{
			name:     "malformed version",
			manifest: "Quill:\n  name: taro\n  version: \"not-a-version\"\n  backend: typst\n  template: glue.typ\n",
			wantMsg:  "not-a-version",
		},
		{
			name:     "malformed yaml",
			manifest: "Quill: [unclosed",
			wantMsg:  "parse manifest",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"Quill.yaml": {Data: []byte(tc.manifest)},
				"glue.typ":   {Data: []byte("{{ body }}")},
			}
			l := newFSLoader(fsys)

			_, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS(""))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	l := newFSLoader(fstest.MapFS{
		"glue.typ": {Data: []byte("{{ body }}")},
	})

	if _, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS("")); err == nil {
		t.Fatal("expected error for missing Quill.yaml")
	}
}

func TestLoad_MissingTemplateFile(t *testing.T) {
	l := newFSLoader(fstest.MapFS{
		"Quill.yaml": {Data: []byte(validManifest)},
	})

	_, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS(""))
	if err == nil {
		t.Fatal("expected error for missing template file")
	}
	if !strings.Contains(err.Error(), "glue.typ") {
		t.Fatalf("error %q does not name the template file", err)
	}
}

func TestLoad_FSSourceRequiresFileSystem(t *testing.T) {
	l := loader.New(pkgquill.NewLoaderOptions())

	if _, err := l.Load(testsupport.Context(), pkgquill.SourceFromFS("quills/taro")); err == nil {
		t.Fatal("expected error when no filesystem is configured")
	}
}

func TestLoad_FromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Quill.yaml", validManifest)
	writeFile(t, dir, "glue.typ", "{{ body }}")
	writeFile(t, dir, "assets/logo.png", "logo-bytes")

	l := loader.New(pkgquill.NewLoaderOptions())
	q, err := l.Load(testsupport.Context(), pkgquill.SourceFromDir(dir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if q.Name() != "taro" {
		t.Fatalf("name: %q", q.Name())
	}
	if data, ok := q.Asset("logo.png"); !ok || string(data) != "logo-bytes" {
		t.Fatalf("asset: %q (present=%v)", data, ok)
	}
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := loader.New(pkgquill.NewLoaderOptions())
	if _, err := l.Load(testsupport.Context(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
