package quill_test

import (
	"testing"

	"github.com/goliatone/go-quillmark/pkg/quill"
)

func TestParseVersion_NormalisesPartialForms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"1", "1.0.0"},
		{"0.0.1", "0.0.1"},
	}

	for _, tc := range cases {
		v, err := quill.ParseVersion(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got := v.String(); got != tc.want {
			t.Fatalf("parse %q: got %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseVersion_RejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.2.3.4", "1.2.3-beta", "1.2.3+build"} {
		if _, err := quill.ParseVersion(raw); err == nil {
			t.Fatalf("parse %q: expected error", raw)
		}
	}
}

func TestVersion_Ordering(t *testing.T) {
	lo := quill.MustParseVersion("1.2.3")
	hi := quill.MustParseVersion("2.0.0")

	if !lo.Less(hi) {
		t.Fatalf("expected %s < %s", lo, hi)
	}
	if hi.Less(lo) {
		t.Fatalf("expected %s not < %s", hi, lo)
	}
	if got := lo.Compare(hi); got != -1 {
		t.Fatalf("Compare: got %d, want -1", got)
	}
	if !lo.Equal(quill.NewVersion(1, 2, 3)) {
		t.Fatalf("expected %s to equal 1.2.3", lo)
	}

	patch := quill.MustParseVersion("1.2.4")
	if !lo.Less(patch) {
		t.Fatalf("expected patch component to order %s before %s", lo, patch)
	}
}
