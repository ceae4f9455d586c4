// Package loader reads quill template directories into immutable Quill
// values. A quill directory contains a Quill.yaml manifest, the glue
// template file the manifest names, and optional assets/ and fonts/
// subdirectories whose files become the static resource maps.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	pkgquill "github.com/goliatone/go-quillmark/pkg/quill"
)

// ManifestFile is the required metadata file at the root of every quill
// directory.
const ManifestFile = "Quill.yaml"

const (
	assetsDir = "assets"
	fontsDir  = "fonts"
)

// Loader implements pkgquill.Loader over disk directories and fs.FS roots.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgquill.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgquill.LoaderOptions) pkgquill.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the template directory identified by src and assembles a
// Quill from its manifest, template file, and bundled resources.
func (l *Loader) Load(ctx context.Context, src pkgquill.Source) (pkgquill.Quill, error) {
	if src == nil {
		return pkgquill.Quill{}, errors.New("quill loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgquill.Quill{}, err
	}

	var (
		root fs.FS
		err  error
	)
	switch src.Kind() {
	case pkgquill.SourceKindDir:
		root = os.DirFS(src.Location())
	case pkgquill.SourceKindFS:
		if l.fs == nil {
			return pkgquill.Quill{}, errors.New("quill loader: fs source requires WithFileSystem")
		}
		root, err = fs.Sub(l.fs, src.Location())
		if err != nil {
			return pkgquill.Quill{}, fmt.Errorf("quill loader: resolve fs root %q: %w", src.Location(), err)
		}
	default:
		return pkgquill.Quill{}, fmt.Errorf("quill loader: unsupported source kind %q", src.Kind())
	}

	return loadTree(root, src.Location())
}

type manifest struct {
	Quill struct {
		Name     string         `yaml:"name"`
		Version  string         `yaml:"version"`
		Backend  string         `yaml:"backend"`
		Template string         `yaml:"template"`
		Metadata map[string]any `yaml:",inline"`
	} `yaml:"Quill"`
}

func loadTree(root fs.FS, location string) (pkgquill.Quill, error) {
	raw, err := fs.ReadFile(root, ManifestFile)
	if err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: read manifest: %w", location, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: parse manifest: %w", location, err)
	}

	meta := m.Quill
	if meta.Name == "" {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: manifest is missing Quill.name", location)
	}
	if meta.Version == "" {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: manifest is missing Quill.version", location)
	}
	if meta.Template == "" {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: manifest is missing Quill.template", location)
	}

	version, err := pkgquill.ParseVersion(meta.Version)
	if err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: %w", location, err)
	}

	template, err := fs.ReadFile(root, path.Clean(meta.Template))
	if err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: read template %q: %w", location, meta.Template, err)
	}

	assets, err := readDir(root, assetsDir)
	if err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: %w", location, err)
	}
	fonts, err := readDir(root, fontsDir)
	if err != nil {
		return pkgquill.Quill{}, fmt.Errorf("quill loader: %s: %w", location, err)
	}

	return pkgquill.New(pkgquill.Config{
		Name:     meta.Name,
		Version:  version,
		Backend:  meta.Backend,
		Template: template,
		Assets:   assets,
		Fonts:    fonts,
		Metadata: meta.Metadata,
	})
}

// readDir collects every regular file under dir, keyed by its path relative
// to dir. A missing directory is not an error; quills may bundle nothing.
func readDir(root fs.FS, dir string) (map[string][]byte, error) {
	if _, err := fs.Stat(root, dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	files := make(map[string][]byte)
	err := fs.WalkDir(root, dir, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(root, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		rel, err := relPath(dir, p)
		if err != nil {
			return err
		}
		files[rel] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func relPath(dir, p string) (string, error) {
	if p == dir {
		return "", fmt.Errorf("unexpected directory entry %q", p)
	}
	prefix := dir + "/"
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return "", fmt.Errorf("entry %q escapes %q", p, dir)
	}
	return p[len(prefix):], nil
}
