package engine

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-quillmark/pkg/quill"
)

// SpecKind enumerates the version-spec halves of the selector grammar.
type SpecKind int

const (
	// SpecLatest selects the highest registered version. Used for bare
	// names and the explicit "@latest" form.
	SpecLatest SpecKind = iota
	// SpecMajor selects the highest registered version within one major
	// line ("name@2").
	SpecMajor
	// SpecExact selects one version with no fallback ("name@1.2.0";
	// "name@1.2" normalises to a zero patch).
	SpecExact
)

// Selector is a parsed quill reference: a name plus a version spec.
type Selector struct {
	Name  string
	Kind  SpecKind
	Major uint64
	Exact quill.Version
}

const latestSpec = "latest"

// ParseSelector parses "NAME" or "NAME@VERSION_SPEC". A malformed selector
// is an error, distinct from the absence a well-formed selector may
// resolve to.
func ParseSelector(raw string) (Selector, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Selector{}, &SelectorError{Selector: raw, Reason: "empty selector"}
	}

	name, spec, tagged := strings.Cut(trimmed, "@")
	if name == "" {
		return Selector{}, &SelectorError{Selector: raw, Reason: "missing quill name"}
	}
	if strings.Contains(spec, "@") {
		return Selector{}, &SelectorError{Selector: raw, Reason: "multiple '@' separators"}
	}

	if !tagged || spec == latestSpec {
		return Selector{Name: name, Kind: SpecLatest}, nil
	}
	if spec == "" {
		return Selector{}, &SelectorError{Selector: raw, Reason: "empty version spec after '@'"}
	}

	if !strings.Contains(spec, ".") {
		major, err := strconv.ParseUint(spec, 10, 64)
		if err != nil {
			return Selector{}, &SelectorError{Selector: raw, Reason: "version spec must be 'latest', a major number, or a full version"}
		}
		return Selector{Name: name, Kind: SpecMajor, Major: major}, nil
	}

	version, err := quill.ParseVersion(spec)
	if err != nil {
		return Selector{}, &SelectorError{Selector: raw, Reason: "invalid version spec"}
	}
	return Selector{Name: name, Kind: SpecExact, Exact: version}, nil
}

// String renders the canonical selector form.
func (s Selector) String() string {
	switch s.Kind {
	case SpecMajor:
		return s.Name + "@" + strconv.FormatUint(s.Major, 10)
	case SpecExact:
		return s.Name + "@" + s.Exact.String()
	default:
		return s.Name
	}
}
