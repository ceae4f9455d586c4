package quill

import (
	"errors"
	"fmt"
	"sort"
)

// Config collects the inputs needed to build a Quill. The loader fills this
// from a template directory; tests and embedders can populate it directly.
type Config struct {
	// Name identifies the template family. Required.
	Name string

	// Version is the semantic version declared by the template metadata.
	Version Version

	// Backend names the rendering backend this template targets. Required.
	Backend string

	// Template holds the glue template source composed with document fields
	// at render time.
	Template []byte

	// Assets maps filename → bytes for template-bundled static assets.
	Assets map[string][]byte

	// Fonts maps filename → bytes for template-bundled fonts.
	Fonts map[string][]byte

	// Metadata carries the remaining manifest fields (description, tags,
	// backend-specific settings) untouched.
	Metadata map[string]any
}

// Quill is an immutable, loaded template package. Once constructed it is
// safe to share across goroutines and workflows; every accessor that hands
// out bytes or maps returns a defensive copy.
type Quill struct {
	name     string
	version  Version
	backend  string
	template []byte
	assets   map[string][]byte
	fonts    map[string][]byte
	metadata map[string]any
}

// New validates the configuration and constructs a Quill.
func New(cfg Config) (Quill, error) {
	if cfg.Name == "" {
		return Quill{}, errors.New("quill: name is required")
	}
	if cfg.Backend == "" {
		return Quill{}, fmt.Errorf("quill: %q does not specify a backend", cfg.Name)
	}
	if len(cfg.Template) == 0 {
		return Quill{}, fmt.Errorf("quill: %q has an empty template", cfg.Name)
	}

	return Quill{
		name:     cfg.Name,
		version:  cfg.Version,
		backend:  cfg.Backend,
		template: append([]byte(nil), cfg.Template...),
		assets:   cloneFileMap(cfg.Assets),
		fonts:    cloneFileMap(cfg.Fonts),
		metadata: cloneMetadata(cfg.Metadata),
	}, nil
}

// MustNew panics if the configuration is invalid. Useful for fixtures.
func MustNew(cfg Config) Quill {
	q, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return q
}

// Name returns the template family identifier.
func (q Quill) Name() string { return q.name }

// Version returns the declared semantic version.
func (q Quill) Version() Version { return q.version }

// Backend returns the rendering backend ID the template targets.
func (q Quill) Backend() string { return q.backend }

// Template returns a copy of the glue template source.
func (q Quill) Template() []byte {
	return append([]byte(nil), q.template...)
}

// Asset returns the named static asset's bytes, or false when absent.
func (q Quill) Asset(name string) ([]byte, bool) {
	data, ok := q.assets[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// Font returns the named static font's bytes, or false when absent.
func (q Quill) Font(name string) ([]byte, bool) {
	data, ok := q.fonts[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// AssetNames lists the static asset filenames in sorted order.
func (q Quill) AssetNames() []string {
	return sortedKeys(q.assets)
}

// FontNames lists the static font filenames in sorted order.
func (q Quill) FontNames() []string {
	return sortedKeys(q.fonts)
}

// Assets returns a copy of the static asset map.
func (q Quill) Assets() map[string][]byte {
	return cloneFileMap(q.assets)
}

// Fonts returns a copy of the static font map.
func (q Quill) Fonts() map[string][]byte {
	return cloneFileMap(q.fonts)
}

// Metadata returns the manifest field for key, or false when absent.
func (q Quill) Metadata(key string) (any, bool) {
	value, ok := q.metadata[key]
	return value, ok
}

// MetadataKeys lists the manifest metadata keys in sorted order.
func (q Quill) MetadataKeys() []string {
	keys := make([]string, 0, len(q.metadata))
	for key := range q.metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// WithOverlay returns a derived Quill whose asset and font maps are the
// union of the static maps and the supplied overlays. Overlay entries win
// on name clashes: they represent more recent caller intent than the
// template-bundled files.
func (q Quill) WithOverlay(assets, fonts map[string][]byte) Quill {
	merged := q
	merged.assets = mergeFileMaps(q.assets, assets)
	merged.fonts = mergeFileMaps(q.fonts, fonts)
	return merged
}

func mergeFileMaps(static, overlay map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(static)+len(overlay))
	for name, data := range static {
		out[name] = append([]byte(nil), data...)
	}
	for name, data := range overlay {
		out[name] = append([]byte(nil), data...)
	}
	return out
}

func cloneFileMap(in map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(in))
	for name, data := range in {
		out[name] = append([]byte(nil), data...)
	}
	return out
}

func cloneMetadata(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func sortedKeys(in map[string][]byte) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
