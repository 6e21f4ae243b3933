package checks

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotdoctor/pkg/paths"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// PermissionCheck audits the permission bits of one sensitive path.
// It never fails: a mismatch is a warning and an absent path passes.
type PermissionCheck struct {
	// Path as configured, e.g. ~/.ssh
	Path string
	Mode fs.FileMode
	// Root resolves relative paths
	Root string
}

func (c *PermissionCheck) Name() string     { return c.Path }
func (c *PermissionCheck) Category() string { return types.CategoryPermissions }

func (c *PermissionCheck) Run(ctx context.Context) types.CheckOutcome {
	cat, name := c.Category(), c.Name()
	path := paths.ResolveAgainst(c.Root, c.Path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Pass(cat, name, "absent, nothing to audit")
		}
		return types.Warn(cat, name, "cannot stat: "+err.Error(), "")
	}

	got := info.Mode().Perm()
	want := c.Mode.Perm()
	if got != want {
		return types.Warn(cat, name,
			fmt.Sprintf("mode %04o, expected %04o", uint32(got), uint32(want)),
			fmt.Sprintf("chmod %o %s", uint32(want), c.Path))
	}

	return types.Pass(cat, name, fmt.Sprintf("mode %04o", uint32(got)))
}
