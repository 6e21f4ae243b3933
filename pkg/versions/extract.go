package versions

import "regexp"

// A dotted numeric run, optionally glued to a letter tag as in "go1.24.1"
// or "v20.1.0". Requiring at least one dot keeps build numbers, years and
// architecture names ("x86_64") out.
var versionPattern = regexp.MustCompile(`[A-Za-z]*\d+(?:\.\d+)+`)

// ExtractVersion returns the first dotted numeric run found in tool output
func ExtractVersion(output string) (string, bool) {
	match := versionPattern.FindString(output)
	if match == "" {
		return "", false
	}
	return match, true
}
