package manifest

import (
	"os"
	"regexp"
	"strings"
)

// LookupFunc resolves an environment variable
type LookupFunc func(name string) (string, bool)

// OSLookup resolves variables against the process environment
func OSLookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapLookup resolves variables against a fixed map
func MapLookup(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

var variablePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Expand replaces $NAME, ${NAME} and a leading ~ using lookup.
// References that lookup cannot resolve are kept verbatim.
func Expand(value string, lookup LookupFunc) string {
	if lookup == nil {
		return value
	}

	if value == "~" || strings.HasPrefix(value, "~/") {
		if home, ok := lookup("HOME"); ok && home != "" {
			value = home + value[1:]
		}
	}

	return variablePattern.ReplaceAllStringFunc(value, func(ref string) string {
		m := variablePattern.FindStringSubmatch(ref)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if v, ok := lookup(name); ok {
			return v
		}
		return ref
	})
}

// HasUnresolved reports whether value still contains a variable reference
// or an unexpanded ~
func HasUnresolved(value string) bool {
	return variablePattern.MatchString(value) || value == "~" || strings.HasPrefix(value, "~/")
}
