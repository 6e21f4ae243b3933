package checks

import (
	"context"
	"fmt"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// VersionChecker is implemented by versions.Checker
type VersionChecker interface {
	Check(ctx context.Context, req types.VersionRequirement) (types.VersionCheckResult, error)
}

// ToolCheck verifies one minimum tool version
type ToolCheck struct {
	Checker     VersionChecker
	Requirement types.VersionRequirement
}

func (c *ToolCheck) Name() string     { return c.Requirement.Tool }
func (c *ToolCheck) Category() string { return types.CategoryVersions }

func (c *ToolCheck) Run(ctx context.Context) types.CheckOutcome {
	req := c.Requirement
	result, err := c.Checker.Check(ctx, req)
	if err != nil {
		remediation := ""
		if errors.IsErrorCode(err, errors.ErrMalformedVersion) {
			remediation = fmt.Sprintf("fix %s in the version manifest", req.Key)
		}
		return failure(c.Category(), c.Name(), err, remediation)
	}

	switch result.Kind {
	case types.VersionCompliant:
		return types.Pass(c.Category(), c.Name(), fmt.Sprintf("%s (requires >= %s)", result.Installed, req.Required))
	case types.VersionNonCompliant:
		return types.Fail(c.Category(), c.Name(),
			fmt.Sprintf("installed %s, requires >= %s", result.Installed, req.Required),
			fmt.Sprintf("upgrade %s to >= %s", req.Tool, req.Required))
	default:
		return types.Fail(c.Category(), c.Name(), "not installed",
			fmt.Sprintf("install %s >= %s", req.Tool, req.Required))
	}
}
