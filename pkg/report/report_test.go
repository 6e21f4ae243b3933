package report

import (
	"testing"

	"github.com/arthur-debert/dotdoctor/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	pass := types.Pass(types.CategorySymlinks, "git", "in sync")
	warn := types.Warn(types.CategoryPermissions, "~/.ssh", "mode 0755, expected 0700", "chmod 700 ~/.ssh")
	fail := types.Fail(types.CategoryVersions, "node", "installed v20.1.0, requires >= 24.1.0", "upgrade node to >= 24.1.0")

	tests := []struct {
		name     string
		outcomes []types.CheckOutcome
		exit     types.ExitCode
		counts   [3]int
	}{
		{name: "empty", outcomes: nil, exit: types.ExitOK},
		{name: "all pass", outcomes: []types.CheckOutcome{pass, pass}, exit: types.ExitOK, counts: [3]int{2, 0, 0}},
		{name: "warnings only", outcomes: []types.CheckOutcome{pass, warn}, exit: types.ExitWarnings, counts: [3]int{1, 1, 0}},
		{name: "fail dominates", outcomes: []types.CheckOutcome{warn, fail, pass}, exit: types.ExitFailures, counts: [3]int{1, 1, 1}},
		{name: "fail alone", outcomes: []types.CheckOutcome{fail}, exit: types.ExitFailures, counts: [3]int{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Aggregate(tt.outcomes)

			assert.Equal(t, tt.exit, r.ExitCode)
			assert.Equal(t, tt.counts, [3]int{r.Passed, r.Warned, r.Failed})
			assert.Equal(t, len(tt.outcomes), len(r.Outcomes))
			assert.Equal(t, r.Warned+r.Failed, len(r.Remediations))
		})
	}
}

func TestAggregate_RemediationsKeepDeclarationOrder(t *testing.T) {
	outcomes := []types.CheckOutcome{
		types.Fail(types.CategorySymlinks, "zsh", "missing", ""),
		types.Pass(types.CategorySymlinks, "git", "in sync"),
		types.Warn(types.CategoryLinks, "documentation", "1 broken link", ""),
		types.Fail(types.CategoryVersions, "go", "not installed", ""),
	}

	r := Aggregate(outcomes)

	var names []string
	for _, o := range r.Remediations {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"zsh", "documentation", "go"}, names)
}

func TestAggregate_DoesNotAliasInput(t *testing.T) {
	outcomes := []types.CheckOutcome{types.Pass(types.CategoryBuild, "dist", "up to date")}
	r := Aggregate(outcomes)
	outcomes[0].Name = "changed"

	assert.Equal(t, "dist", r.Outcomes[0].Name)
}

func TestByCategory(t *testing.T) {
	outcomes := []types.CheckOutcome{
		types.Pass(types.CategorySymlinks, "git", ""),
		types.Pass(types.CategoryVersions, "go", ""),
		types.Warn(types.CategorySymlinks, "ssh", "", ""),
	}

	order, groups := ByCategory(outcomes)
	assert.Equal(t, []string{types.CategorySymlinks, types.CategoryVersions}, order)
	assert.Len(t, groups[types.CategorySymlinks], 2)
	assert.Len(t, groups[types.CategoryVersions], 1)
}
