package quill_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-quillmark/pkg/quill"
)

func validConfig() quill.Config {
	return quill.Config{
		Name:     "letter",
		Version:  quill.MustParseVersion("1.0.0"),
		Backend:  "stub",
		Template: []byte("= {{ title }}"),
		Assets: map[string][]byte{
			"logo.png": []byte("logo-bytes"),
		},
		Fonts: map[string][]byte{
			"base.ttf": []byte("font-bytes"),
		},
		Metadata: map[string]any{"description": "a letter"},
	}
}

func TestNew_RequiresNameBackendTemplate(t *testing.T) {
	cfg := validConfig()
	cfg.Name = ""
	if _, err := quill.New(cfg); err == nil {
		t.Fatal("expected error for missing name")
	}

	cfg = validConfig()
	cfg.Backend = ""
	if _, err := quill.New(cfg); err == nil {
		t.Fatal("expected error for missing backend")
	}

	cfg = validConfig()
	cfg.Template = nil
	if _, err := quill.New(cfg); err == nil {
		t.Fatal("expected error for empty template")
	}
}

func TestQuill_AccessorsCopyBytes(t *testing.T) {
	cfg := validConfig()
	q, err := quill.New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// Mutating the source config after construction must not leak in.
	cfg.Assets["logo.png"][0] = 'X'
	got, ok := q.Asset("logo.png")
	if !ok {
		t.Fatal("asset missing")
	}
	if string(got) != "logo-bytes" {
		t.Fatalf("asset bytes leaked config mutation: %q", got)
	}

	// Mutating an accessor result must not change the quill.
	got[0] = 'Y'
	again, _ := q.Asset("logo.png")
	if string(again) != "logo-bytes" {
		t.Fatalf("asset bytes leaked accessor mutation: %q", again)
	}

	tpl := q.Template()
	tpl[0] = 'Z'
	if string(q.Template()) != "= {{ title }}" {
		t.Fatal("template bytes leaked accessor mutation")
	}
}

func TestQuill_MetadataAndNames(t *testing.T) {
	q := quill.MustNew(validConfig())

	if diff := cmp.Diff([]string{"logo.png"}, q.AssetNames()); diff != "" {
		t.Fatalf("asset names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"base.ttf"}, q.FontNames()); diff != "" {
		t.Fatalf("font names mismatch (-want +got):\n%s", diff)
	}

	desc, ok := q.Metadata("description")
	if !ok || desc != "a letter" {
		t.Fatalf("metadata description: got %v (present=%v)", desc, ok)
	}
	if _, ok := q.Metadata("missing"); ok {
		t.Fatal("unexpected metadata key")
	}
}

func TestWithOverlay_DynamicEntriesWin(t *testing.T) {
	q := quill.MustNew(validConfig())

	merged := q.WithOverlay(
		map[string][]byte{
			"logo.png":  []byte("dynamic-logo"),
			"chart.svg": []byte("chart-bytes"),
		},
		map[string][]byte{"extra.otf": []byte("extra-font")},
	)

	wantAssets := map[string][]byte{
		"logo.png":  []byte("dynamic-logo"),
		"chart.svg": []byte("chart-bytes"),
	}
	if diff := cmp.Diff(wantAssets, merged.Assets()); diff != "" {
		t.Fatalf("merged assets mismatch (-want +got):\n%s", diff)
	}

	wantFonts := map[string][]byte{
		"base.ttf":  []byte("font-bytes"),
		"extra.otf": []byte("extra-font"),
	}
	if diff := cmp.Diff(wantFonts, merged.Fonts()); diff != "" {
		t.Fatalf("merged fonts mismatch (-want +got):\n%s", diff)
	}

	// The original quill stays untouched.
	static, _ := q.Asset("logo.png")
	if string(static) != "logo-bytes" {
		t.Fatalf("overlay mutated the source quill: %q", static)
	}
}
