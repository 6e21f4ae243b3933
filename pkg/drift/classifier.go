package drift

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/manifest"
	"github.com/arthur-debert/dotdoctor/pkg/paths"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

const (
	// DefaultCommand is the symlink manager
	DefaultCommand = "stow"

	// simulateFlag keeps stow from touching the filesystem
	simulateFlag = "--no"

	missingPackageMarker = "does not contain package"
)

// DefaultArgs are passed to stow before --dir and --target
var DefaultArgs = []string{simulateFlag, "--verbose=1"}

// Options configures a Classifier
type Options struct {
	// Root is the stow directory holding one subdirectory per package
	Root string
	// Command defaults to DefaultCommand
	Command string
	// Args defaults to DefaultArgs. Simulation mode is always enforced.
	Args []string
	// Home renders paths under it with a ~ prefix. Empty disables it.
	Home string
}

// Classifier determines the DriftState of packages
type Classifier struct {
	runner runner.Runner
	opts   Options
}

// NewClassifier returns a Classifier running stow through r
func NewClassifier(r runner.Runner, opts Options) *Classifier {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.Args == nil {
		opts.Args = DefaultArgs
	}
	opts.Args = ensureSimulation(opts.Args)
	return &Classifier{runner: r, opts: opts}
}

func ensureSimulation(args []string) []string {
	for _, arg := range args {
		if arg == simulateFlag || arg == "-n" || arg == "--simulate" {
			return append([]string(nil), args...)
		}
	}
	return append([]string{simulateFlag}, args...)
}

// Args returns the full stow argument list used to simulate pkg
func (c *Classifier) Args(pkg types.PackageDeclaration) []string {
	args := append([]string(nil), c.opts.Args...)
	return append(args, "--dir", c.opts.Root, "--target", pkg.TargetPath, pkg.Name)
}

// RestowCommand returns the command that would bring pkg in sync
func (c *Classifier) RestowCommand(pkg types.PackageDeclaration) string {
	return strings.Join([]string{
		c.opts.Command, "--restow",
		"--dir", paths.Display(c.opts.Root, c.opts.Home),
		"--target", paths.Display(pkg.TargetPath, c.opts.Home),
		pkg.Name,
	}, " ")
}

type sourceState int

const (
	sourcePresent sourceState = iota
	sourceAbsent
	sourceEmpty
)

// Classify simulates stowing pkg and classifies the result
func (c *Classifier) Classify(ctx context.Context, pkg types.PackageDeclaration) (types.DriftState, error) {
	logger := logging.GetLogger("drift").With().Str("package", pkg.Name).Logger()

	if pkg.TargetPath == "" || manifest.HasUnresolved(pkg.TargetPath) {
		return types.DriftState{}, errors.Newf(errors.ErrConfigValid,
			"target %q of package %s contains an unresolved variable", pkg.TargetPath, pkg.Name).
			WithDetail("package", pkg.Name)
	}

	sourceDir := filepath.Join(c.opts.Root, pkg.Name)
	source, err := inspectSource(sourceDir)
	if err != nil {
		return types.DriftState{}, err
	}

	result, runErr := c.runner.Run(ctx, c.opts.Root, c.opts.Command, c.Args(pkg)...)
	logger.Debug().
		Int("exitCode", result.ExitCode).
		Err(runErr).
		Msg("Simulated stow")

	switch source {
	case sourceAbsent:
		return types.Missing("source directory " + paths.Display(sourceDir, c.opts.Home) + " does not exist"), nil
	case sourceEmpty:
		return types.Missing("source directory is empty"), nil
	}

	if runErr != nil {
		return types.DriftState{}, runErr
	}

	if !result.Success() && strings.Contains(result.Output, missingPackageMarker) {
		return types.Missing(firstLine(result.Output)), nil
	}

	ops := ExtractLinkOps(result.Output)
	if len(ops) > 0 {
		for i := range ops {
			ops[i].Path = c.displayTarget(pkg, ops[i].Path)
		}
		logger.Trace().Int("links", len(ops)).Msg("Package would change")
		return types.WouldChange(ops), nil
	}

	if result.Success() {
		return types.InSync(), nil
	}

	detail := firstLine(result.Output)
	if detail == "" {
		detail = "no output"
	}
	return types.DriftState{}, errors.Newf(errors.ErrSubprocessFailed,
		"%s exited with status %d: %s", c.opts.Command, result.ExitCode, detail).
		WithDetail("package", pkg.Name)
}

// displayTarget renders a link path reported by stow. Relative paths are
// relative to the package target; ~ paths are already home-based.
func (c *Classifier) displayTarget(pkg types.PackageDeclaration, path string) string {
	path = c.expandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(pkg.TargetPath, path)
	}
	return paths.Display(path, c.opts.Home)
}

func inspectSource(dir string) (sourceState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return sourceAbsent, nil
		}
		info, statErr := os.Stat(dir)
		if statErr == nil && !info.IsDir() {
			return sourceAbsent, nil
		}
		return sourcePresent, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}
	if len(entries) == 0 {
		return sourceEmpty, nil
	}
	return sourcePresent, nil
}

func (c *Classifier) expandHome(path string) string {
	if c.opts.Home == "" || !strings.HasPrefix(path, "~") {
		return paths.ExpandHome(path)
	}
	if path == "~" {
		return c.opts.Home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(c.opts.Home, path[2:])
	}
	return path
}
