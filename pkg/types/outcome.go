package types

// Check categories, in the order the engine plans them
const (
	CategoryManifest    = "manifest"
	CategorySymlinks    = "symlinks"
	CategoryVersions    = "versions"
	CategoryBuild       = "build"
	CategoryPermissions = "permissions"
	CategoryLinks       = "links"
	CategoryLint        = "lint"
)

// Categories lists all check categories in plan order
var Categories = []string{
	CategoryManifest,
	CategorySymlinks,
	CategoryVersions,
	CategoryBuild,
	CategoryPermissions,
	CategoryLinks,
	CategoryLint,
}

// CheckOutcome is the result of running one planned check
type CheckOutcome struct {
	// Name identifies the check within its category (package or tool name, path)
	Name string
	// Category groups outcomes in the report
	Category string
	Severity Severity
	// Detail is a one-line description of what was observed
	Detail string
	// Remediation is an optional one-line hint for non-pass outcomes
	Remediation string
	// Items are optional sub-lines, e.g. the exact paths of pending link changes
	Items []string
}

// Pass builds a passing outcome
func Pass(category, name, detail string) CheckOutcome {
	return CheckOutcome{Name: name, Category: category, Severity: SeverityPass, Detail: detail}
}

// Warn builds a warning outcome
func Warn(category, name, detail, remediation string) CheckOutcome {
	return CheckOutcome{Name: name, Category: category, Severity: SeverityWarn, Detail: detail, Remediation: remediation}
}

// Fail builds a failing outcome
func Fail(category, name, detail, remediation string) CheckOutcome {
	return CheckOutcome{Name: name, Category: category, Severity: SeverityFail, Detail: detail, Remediation: remediation}
}

// WithItems returns a copy of the outcome carrying the given sub-lines
func (o CheckOutcome) WithItems(items []string) CheckOutcome {
	o.Items = append([]string(nil), items...)
	return o
}

// Report is the aggregated result of one run
type Report struct {
	// Outcomes in check declaration order
	Outcomes []CheckOutcome
	Passed   int
	Warned   int
	Failed   int
	// Remediations are the non-pass outcomes, in declaration order
	Remediations []CheckOutcome
	ExitCode     ExitCode
}
