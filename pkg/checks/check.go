package checks

import (
	"context"
	"fmt"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// Check is one unit of the plan
type Check interface {
	Name() string
	Category() string
	Run(ctx context.Context) types.CheckOutcome
}

// failure converts an error into a failing outcome. Timeouts are
// reported with the "timed out" wording whatever the check.
func failure(category, name string, err error, remediation string) types.CheckOutcome {
	detail := errors.Message(err)
	if runner.IsTimeout(err) {
		detail = "timed out: " + detail
	}
	return types.Fail(category, name, detail, remediation)
}

// plural renders "1 link" or "3 links"
func plural(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
