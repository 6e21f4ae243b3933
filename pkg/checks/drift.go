package checks

import (
	"context"

	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// DriftClassifier is implemented by drift.Classifier
type DriftClassifier interface {
	Classify(ctx context.Context, pkg types.PackageDeclaration) (types.DriftState, error)
	RestowCommand(pkg types.PackageDeclaration) string
}

// DriftCheck reports the symlink drift of one package
type DriftCheck struct {
	Classifier DriftClassifier
	Package    types.PackageDeclaration
}

func (c *DriftCheck) Name() string     { return c.Package.Name }
func (c *DriftCheck) Category() string { return types.CategorySymlinks }

func (c *DriftCheck) Run(ctx context.Context) types.CheckOutcome {
	state, err := c.Classifier.Classify(ctx, c.Package)
	if err != nil {
		remediation := ""
		if runner.IsUnavailable(err) {
			remediation = "install stow"
		}
		return failure(c.Category(), c.Name(), err, remediation)
	}

	switch state.Kind {
	case types.DriftInSync:
		return types.Pass(c.Category(), c.Name(), "in sync")
	case types.DriftWouldChange:
		items := make([]string, len(state.Links))
		for i, op := range state.Links {
			items[i] = op.Action.String() + " " + op.Path
		}
		detail := plural(len(state.Links), "link") + " would change"
		return types.Warn(c.Category(), c.Name(), detail, c.Classifier.RestowCommand(c.Package)).
			WithItems(items)
	default:
		return types.Fail(c.Category(), c.Name(), state.Reason,
			"create the package directory or remove "+c.Package.Name+" from the package manifest")
	}
}
