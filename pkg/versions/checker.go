package versions

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// Invocation is how a tool is asked for its version
type Invocation struct {
	Command string
	Args    []string
}

// defaultInvocations covers tools whose version flag is not --version
var defaultInvocations = map[string]Invocation{
	"go":    {Command: "go", Args: []string{"version"}},
	"java":  {Command: "java", Args: []string{"-version"}},
	"tmux":  {Command: "tmux", Args: []string{"-V"}},
	"ssh":   {Command: "ssh", Args: []string{"-V"}},
	"lua":   {Command: "lua", Args: []string{"-v"}},
	"nvim":  {Command: "nvim", Args: []string{"--version"}},
	"rustc": {Command: "rustc", Args: []string{"--version"}},
}

// Checker compares installed tool versions against requirements
type Checker struct {
	runner      runner.Runner
	invocations map[string]Invocation
}

// NewChecker creates a Checker. overrides replace the built-in invocation
// for the tools they name.
func NewChecker(r runner.Runner, overrides map[string]Invocation) *Checker {
	invocations := make(map[string]Invocation, len(defaultInvocations)+len(overrides))
	for tool, inv := range defaultInvocations {
		invocations[tool] = inv
	}
	for tool, inv := range overrides {
		invocations[tool] = inv
	}
	return &Checker{runner: r, invocations: invocations}
}

// InvocationFor returns the command used to query a tool's version
func (c *Checker) InvocationFor(tool string) Invocation {
	inv, ok := c.invocations[tool]
	if !ok {
		inv = Invocation{Command: tool}
	}
	if inv.Command == "" {
		inv.Command = tool
	}
	if inv.Args == nil {
		inv.Args = []string{"--version"}
	}
	return inv
}

// Check queries the installed version of req.Tool and compares it with
// req.Required. A tool that cannot be found or whose output holds no
// version is NotInstalled. The returned error is reserved for failures of
// the check itself: a malformed requirement or a timed-out query.
func (c *Checker) Check(ctx context.Context, req types.VersionRequirement) (types.VersionCheckResult, error) {
	logger := logging.GetLogger("versions").With().Str("tool", req.Tool).Logger()
	notInstalled := types.VersionCheckResult{Kind: types.VersionNotInstalled, Required: req.Required}

	if _, err := Segments(req.Required); err != nil {
		return notInstalled, errors.Wrapf(err, errors.ErrMalformedVersion,
			"required version %q for %s is malformed", req.Required, req.Tool)
	}

	inv := c.InvocationFor(req.Tool)
	if _, err := c.runner.LookPath(inv.Command); err != nil {
		logger.Debug().Str("command", inv.Command).Msg("Tool not on search path")
		return notInstalled, nil
	}

	res, err := c.runner.Run(ctx, "", inv.Command, inv.Args...)
	if err != nil {
		if runner.IsUnavailable(err) {
			return notInstalled, nil
		}
		return notInstalled, err
	}

	installed, ok := ExtractVersion(res.Output)
	if !ok {
		logger.Debug().
			Str("output", firstLine(res.Output)).
			Int("exitCode", res.ExitCode).
			Msg("No version found in tool output")
		return notInstalled, nil
	}

	ord, err := Compare(installed, req.Required)
	if err != nil {
		// unparsable installed version: cannot verify, treat as missing
		logger.Debug().Err(err).Str("installed", installed).Msg("Installed version is malformed")
		return notInstalled, nil
	}

	logger.Debug().
		Str("installed", installed).
		Str("required", req.Required).
		Str("ordering", ord.String()).
		Msg("Compared tool version")

	result := types.VersionCheckResult{Installed: installed, Required: req.Required}
	if ord == Less {
		result.Kind = types.VersionNonCompliant
	} else {
		result.Kind = types.VersionCompliant
	}
	return result, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
