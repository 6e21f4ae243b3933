package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityOrdering(t *testing.T) {
	assert.Equal(t, SeverityFail, SeverityPass.Worse(SeverityFail))
	assert.Equal(t, SeverityFail, SeverityFail.Worse(SeverityWarn))
	assert.Equal(t, SeverityWarn, SeverityWarn.Worse(SeverityPass))
	assert.Equal(t, "warn", SeverityWarn.String())
}

func TestOutcomeConstructors(t *testing.T) {
	o := Warn(CategorySymlinks, "ssh", "1 link change pending", "stow --restow ssh")
	assert.Equal(t, SeverityWarn, o.Severity)
	assert.Equal(t, "ssh", o.Name)

	items := []string{"link ~/.ssh/config"}
	withItems := o.WithItems(items)
	items[0] = "mutated"
	assert.Equal(t, []string{"link ~/.ssh/config"}, withItems.Items)
	assert.Nil(t, o.Items)
}

func TestDriftStateConstructors(t *testing.T) {
	assert.Equal(t, DriftInSync, InSync().Kind)
	assert.Empty(t, InSync().Links)

	state := WouldChange([]LinkOp{{Action: LinkActionLink, Path: "~/.ssh/config"}})
	assert.Equal(t, DriftWouldChange, state.Kind)
	assert.Len(t, state.Links, 1)

	assert.Equal(t, "source directory not found", Missing("source directory not found").Reason)
}
