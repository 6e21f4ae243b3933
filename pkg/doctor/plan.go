package doctor

import (
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/checks"
	"github.com/arthur-debert/dotdoctor/pkg/config"
	"github.com/arthur-debert/dotdoctor/pkg/drift"
	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/manifest"
	"github.com/arthur-debert/dotdoctor/pkg/paths"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
	"github.com/arthur-debert/dotdoctor/pkg/versions"
)

// PlanOptions are the inputs of Plan
type PlanOptions struct {
	Config *config.Config
	Runner runner.Runner
	// Lookup expands manifest variables. Defaults to the process environment.
	Lookup manifest.LookupFunc
	// Home renders paths with a ~ prefix. Defaults to the user's home.
	Home string
	// Only restricts the plan to these categories. Empty plans everything.
	Only []string
}

// ParseCategories splits a comma-separated category list and rejects
// unknown names
func ParseCategories(list []string) ([]string, error) {
	var categories []string
	for _, item := range list {
		for _, name := range strings.Split(item, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if !isCategory(name) {
				return nil, errors.Newf(errors.ErrInvalidInput, "unknown category %q (valid: %s)",
					name, strings.Join(types.Categories, ", "))
			}
			categories = append(categories, name)
		}
	}
	return categories, nil
}

func isCategory(name string) bool {
	for _, c := range types.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Plan builds the ordered list of checks. It fails only when a manifest
// needed by the selected categories cannot be opened.
func Plan(opts PlanOptions) ([]checks.Check, error) {
	logger := logging.GetLogger("doctor")
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = manifest.OSLookup
	}
	home := opts.Home
	if home == "" {
		home = paths.HomeDir()
	}
	only, err := ParseCategories(opts.Only)
	if err != nil {
		return nil, err
	}
	selected := func(category string) bool {
		if len(only) == 0 {
			return true
		}
		for _, c := range only {
			if c == category {
				return true
			}
		}
		return false
	}

	root := cfg.Paths.Root
	parseOpts := manifest.ParseOptions{Lookup: lookup, DefaultTarget: cfg.Paths.Target}

	var packages *manifest.PackageManifest
	if selected(types.CategoryManifest) || selected(types.CategorySymlinks) {
		packages, err = manifest.LoadPackages(paths.ResolveAgainst(root, cfg.Paths.PackageManifest), parseOpts)
		if err != nil {
			return nil, err
		}
	}

	var requirements *manifest.VersionManifest
	if selected(types.CategoryManifest) || selected(types.CategoryVersions) {
		requirements, err = manifest.LoadVersions(paths.ResolveAgainst(root, cfg.Paths.VersionManifest), parseOpts)
		if err != nil {
			return nil, err
		}
	}

	var plan []checks.Check

	if selected(types.CategoryManifest) {
		plan = append(plan,
			&checks.ManifestCheck{
				File:     paths.Display(packages.Path, home),
				Entries:  len(packages.Packages),
				Warnings: packages.Warnings,
			},
			&checks.ManifestCheck{
				File:     paths.Display(requirements.Path, home),
				Entries:  len(requirements.Requirements),
				Warnings: requirements.Warnings,
			},
		)
	}

	if selected(types.CategorySymlinks) {
		classifier := drift.NewClassifier(opts.Runner, drift.Options{
			Root:    root,
			Command: cfg.Symlink.Command,
			Args:    cfg.Symlink.Args,
			Home:    home,
		})
		for _, pkg := range packages.Packages {
			plan = append(plan, &checks.DriftCheck{Classifier: classifier, Package: pkg})
		}
	}

	if selected(types.CategoryVersions) {
		overrides := make(map[string]versions.Invocation, len(cfg.Tools))
		for _, name := range cfg.ToolNames() {
			tool := cfg.Tools[name]
			overrides[name] = versions.Invocation{Command: tool.Command, Args: tool.Args}
		}
		checker := versions.NewChecker(opts.Runner, overrides)
		for _, req := range requirements.Requirements {
			plan = append(plan, &checks.ToolCheck{Checker: checker, Requirement: req})
		}
	}

	if selected(types.CategoryBuild) && cfg.Build.Enabled() {
		plan = append(plan, &checks.BuildCheck{
			Root:     root,
			Source:   cfg.Build.Source,
			Output:   cfg.Build.Output,
			Required: cfg.Build.Required,
			Home:     home,
		})
	}

	if selected(types.CategoryPermissions) {
		for _, perm := range cfg.Permissions {
			mode, err := perm.FileMode()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "permissions mode %q for %s", perm.Mode, perm.Path)
			}
			plan = append(plan, &checks.PermissionCheck{Path: perm.Path, Mode: mode, Root: root})
		}
	}

	if selected(types.CategoryLinks) && len(cfg.Links.Documents) > 0 {
		plan = append(plan, &checks.LinkCheck{Root: root, Documents: cfg.Links.Documents})
	}

	if selected(types.CategoryLint) && cfg.Lint.Command != "" && len(cfg.Lint.Patterns) > 0 {
		plan = append(plan, &checks.LintCheck{
			Runner:   opts.Runner,
			Root:     root,
			Command:  cfg.Lint.Command,
			Args:     cfg.Lint.Args,
			Patterns: cfg.Lint.Patterns,
		})
	}

	logger.Debug().Int("checks", len(plan)).Strs("only", only).Msg("Plan built")
	return plan, nil
}
