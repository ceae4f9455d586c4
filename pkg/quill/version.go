package quill

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is an immutable major.minor.patch triple. The zero value is
// 0.0.0 and compares accordingly.
type Version struct {
	major uint64
	minor uint64
	patch uint64
}

// ParseVersion accepts "1", "1.2", and "1.2.3" forms, normalising missing
// segments to zero. Pre-release and build metadata are rejected so that
// registry ordering stays a pure triple comparison.
func ParseVersion(raw string) (Version, error) {
	parsed, err := semver.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("quill: parse version %q: %w", raw, err)
	}
	if parsed.Prerelease() != "" || parsed.Metadata() != "" {
		return Version{}, fmt.Errorf("quill: version %q: pre-release and build metadata are not supported", raw)
	}
	return Version{
		major: parsed.Major(),
		minor: parsed.Minor(),
		patch: parsed.Patch(),
	}, nil
}

// MustParseVersion panics on failure. Useful for fixtures and tests.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// NewVersion builds a Version from explicit components.
func NewVersion(major, minor, patch uint64) Version {
	return Version{major: major, minor: minor, patch: patch}
}

// Major returns the major component.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor component.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch component.
func (v Version) Patch() uint64 { return v.patch }

// String renders the canonical "major.minor.patch" form regardless of how
// the version was originally written.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Compare returns -1, 0, or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	if c := compareUint(v.major, other.major); c != 0 {
		return c
	}
	if c := compareUint(v.minor, other.minor); c != 0 {
		return c
	}
	return compareUint(v.patch, other.patch)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports component-wise equality.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
