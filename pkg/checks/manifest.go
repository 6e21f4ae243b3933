package checks

import (
	"context"
	"fmt"

	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// ManifestCheck surfaces the lines a manifest parser skipped
type ManifestCheck struct {
	// File is the manifest name shown in the report
	File     string
	Entries  int
	Warnings []string
}

func (c *ManifestCheck) Name() string     { return c.File }
func (c *ManifestCheck) Category() string { return types.CategoryManifest }

func (c *ManifestCheck) Run(ctx context.Context) types.CheckOutcome {
	if len(c.Warnings) == 0 {
		return types.Pass(c.Category(), c.Name(), plural(c.Entries, "declaration")+" parsed")
	}
	detail := fmt.Sprintf("%s skipped, %s parsed", plural(len(c.Warnings), "line"), plural(c.Entries, "declaration"))
	return types.Warn(c.Category(), c.Name(), detail, "fix or remove the skipped lines").
		WithItems(c.Warnings)
}
