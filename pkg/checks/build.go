package checks

import (
	"context"

	"github.com/arthur-debert/dotdoctor/pkg/paths"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// BuildCheck compares the newest change under Source with the newest
// change under Output. Both are resolved against Root.
type BuildCheck struct {
	Root     string
	Source   string
	Output   string
	Required bool
	// Home renders paths with a ~ prefix
	Home string
}

func (c *BuildCheck) Name() string     { return c.Output }
func (c *BuildCheck) Category() string { return types.CategoryBuild }

func (c *BuildCheck) Run(ctx context.Context) types.CheckOutcome {
	source := paths.ResolveAgainst(c.Root, c.Source)
	output := paths.ResolveAgainst(c.Root, c.Output)
	cat, name := c.Category(), c.Name()

	srcTime, srcFile, srcExists, err := newest(source)
	if err != nil {
		return failure(cat, name, err, "")
	}
	if !srcExists {
		return types.Warn(cat, name, "source "+paths.Display(source, c.Home)+" does not exist",
			"set build.source to an existing path")
	}

	outTime, _, outExists, err := newest(output)
	if err != nil {
		return failure(cat, name, err, "")
	}
	if !outExists {
		detail := "output " + paths.Display(output, c.Home) + " does not exist"
		if c.Required {
			return types.Fail(cat, name, detail, "run the build")
		}
		return types.Warn(cat, name, detail, "run the build")
	}

	if srcTime.After(outTime) {
		return types.Warn(cat, name, "stale build, source changed after output",
			"rebuild "+paths.Display(output, c.Home)).
			WithItems([]string{"newest source: " + paths.Display(srcFile, c.Home)})
	}

	return types.Pass(cat, name, "up to date")
}
