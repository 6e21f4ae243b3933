package manifest

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// VersionManifest is the parsed version manifest
type VersionManifest struct {
	Path         string
	Requirements []types.VersionRequirement
	Warnings     []string
}

var versionKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadVersions opens and parses the version manifest at path
func LoadVersions(path string, opts ParseOptions) (*VersionManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestUnreadable, "cannot open version manifest %s", path).
			WithDetail("path", path)
	}
	defer f.Close()

	m, err := ParseVersions(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestUnreadable, "cannot read version manifest %s", path).
			WithDetail("path", path)
	}
	m.Path = path
	return m, nil
}

// ParseVersions parses KEY=value lines. An "export " prefix and quotes
// around the value are accepted.
func ParseVersions(r io.Reader, opts ParseOptions) (*VersionManifest, error) {
	entries, err := scanEntries(r, "=")
	if err != nil {
		return nil, err
	}

	m := &VersionManifest{}
	reqs := newOrdered[types.VersionRequirement]()

	for _, e := range entries {
		key := strings.TrimSpace(strings.TrimPrefix(e.key, "export "))
		if !e.hasValue {
			m.Warnings = append(m.Warnings, warnf(e.line, "skipping %q: expected KEY=version", e.key))
			continue
		}
		if !versionKeyPattern.MatchString(key) {
			m.Warnings = append(m.Warnings, warnf(e.line, "skipping %q: invalid key", key))
			continue
		}
		value := Expand(unquote(e.value), opts.Lookup)
		if value == "" {
			m.Warnings = append(m.Warnings, warnf(e.line, "skipping %s: empty version", key))
			continue
		}

		tool := ToolName(key)
		reqs.set(tool, types.VersionRequirement{
			Tool:     tool,
			Key:      key,
			Required: value,
			Line:     e.line,
		})
	}

	m.Requirements = reqs.items
	return m, nil
}

// ToolName derives the executable name from a manifest key:
// NODE_VERSION is node, GOLANGCI_LINT_VERSION is golangci-lint
func ToolName(key string) string {
	name := strings.ToLower(key)
	name = strings.TrimSuffix(name, "_version")
	return strings.ReplaceAll(name, "_", "-")
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return v[1 : len(v)-1]
		}
	}
	return v
}
