// Package report folds check outcomes into a Report and its exit code.
package report

import "github.com/arthur-debert/dotdoctor/pkg/types"

// Aggregate counts outcomes per severity, collects the non-pass outcomes
// in declaration order and derives the exit code: 2 when anything
// failed, 1 when anything warned, 0 otherwise.
func Aggregate(outcomes []types.CheckOutcome) types.Report {
	r := types.Report{
		Outcomes: append([]types.CheckOutcome(nil), outcomes...),
	}

	worst := types.SeverityPass
	for _, o := range outcomes {
		switch o.Severity {
		case types.SeverityPass:
			r.Passed++
		case types.SeverityWarn:
			r.Warned++
		default:
			r.Failed++
		}
		if o.Severity != types.SeverityPass {
			r.Remediations = append(r.Remediations, o)
		}
		worst = worst.Worse(o.Severity)
	}

	r.ExitCode = ExitCodeFor(worst)
	return r
}

// ExitCodeFor maps the worst severity of a run to the process exit code
func ExitCodeFor(worst types.Severity) types.ExitCode {
	switch {
	case worst >= types.SeverityFail:
		return types.ExitFailures
	case worst == types.SeverityWarn:
		return types.ExitWarnings
	default:
		return types.ExitOK
	}
}

// ByCategory groups outcomes by category. Categories appear in the order
// of their first outcome.
func ByCategory(outcomes []types.CheckOutcome) (order []string, groups map[string][]types.CheckOutcome) {
	groups = make(map[string][]types.CheckOutcome)
	for _, o := range outcomes {
		if _, seen := groups[o.Category]; !seen {
			order = append(order, o.Category)
		}
		groups[o.Category] = append(groups[o.Category], o)
	}
	return order, groups
}
