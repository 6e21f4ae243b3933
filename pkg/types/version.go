package types

// VersionKind tags a VersionCheckResult
type VersionKind int

const (
	VersionCompliant VersionKind = iota
	VersionNonCompliant
	VersionNotInstalled
)

func (k VersionKind) String() string {
	switch k {
	case VersionCompliant:
		return "compliant"
	case VersionNonCompliant:
		return "non-compliant"
	case VersionNotInstalled:
		return "not-installed"
	default:
		return "unknown"
	}
}

// VersionCheckResult is the outcome of checking one VersionRequirement.
// It is derived from live tool queries on every run and never cached.
type VersionCheckResult struct {
	Kind      VersionKind
	Installed string
	Required  string
}
