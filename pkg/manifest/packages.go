package manifest

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// ParseOptions are the explicit inputs of both parsers
type ParseOptions struct {
	// Lookup resolves variable references; nil disables expansion
	Lookup LookupFunc
	// DefaultTarget is used for packages without a target override.
	// It is expanded like any other value.
	DefaultTarget string
}

// PackageManifest is the parsed package manifest
type PackageManifest struct {
	Path     string
	Packages []types.PackageDeclaration
	Warnings []string
}

// LoadPackages opens and parses the package manifest at path
func LoadPackages(path string, opts ParseOptions) (*PackageManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestUnreadable, "cannot open package manifest %s", path).
			WithDetail("path", path)
	}
	defer f.Close()

	m, err := ParsePackages(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestUnreadable, "cannot read package manifest %s", path).
			WithDetail("path", path)
	}
	m.Path = path
	return m, nil
}

// ParsePackages parses "name" and "name:target" lines
func ParsePackages(r io.Reader, opts ParseOptions) (*PackageManifest, error) {
	entries, err := scanEntries(r, ":")
	if err != nil {
		return nil, err
	}

	m := &PackageManifest{}
	decls := newOrdered[types.PackageDeclaration]()
	defaultTarget := Expand(opts.DefaultTarget, opts.Lookup)

	for _, e := range entries {
		if reason := invalidPackageName(e.key); reason != "" {
			m.Warnings = append(m.Warnings, warnf(e.line, "skipping package %q: %s", e.key, reason))
			continue
		}
		if e.hasValue && e.value == "" {
			m.Warnings = append(m.Warnings, warnf(e.line, "skipping package %q: empty target after ':'", e.key))
			continue
		}

		target := defaultTarget
		if e.hasValue {
			target = Expand(e.value, opts.Lookup)
		}
		decls.set(e.key, types.PackageDeclaration{
			Name:       e.key,
			TargetPath: target,
			Line:       e.line,
		})
	}

	m.Packages = decls.items
	return m, nil
}

func invalidPackageName(name string) string {
	switch {
	case name == "":
		return "empty name"
	case strings.ContainsAny(name, " \t"):
		return "name contains whitespace"
	case strings.Contains(name, "/"):
		return "name contains '/'"
	case name == "." || name == "..":
		return "name is not a directory"
	}
	return ""
}
