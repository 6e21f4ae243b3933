package checks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

const (
	// DefaultLinter lints shell scripts
	DefaultLinter = "shellcheck"
)

// DefaultLintArgs make shellcheck print one issue per line
var DefaultLintArgs = []string{"--format=gcc"}

// gcc-style "file:line:col: message"
var issuePattern = regexp.MustCompile(`^[^:\s][^:]*:\d+:\d+:`)

// LintCheck runs a linter once over every file matching Patterns
type LintCheck struct {
	Runner   runner.Runner
	Root     string
	Command  string
	Args     []string
	Patterns []string
}

func (c *LintCheck) Name() string {
	if c.Command == "" {
		return DefaultLinter
	}
	return c.Command
}

func (c *LintCheck) Category() string { return types.CategoryLint }

func (c *LintCheck) Run(ctx context.Context) types.CheckOutcome {
	cat, name := c.Category(), c.Name()

	files, err := MatchFiles(c.Root, c.Patterns)
	if err != nil {
		return types.Warn(cat, name, errors.Message(err), "fix lint.patterns")
	}
	if len(files) == 0 {
		return types.Pass(cat, name, "no files to lint")
	}

	if _, err := c.Runner.LookPath(name); err != nil {
		return types.Warn(cat, name, name+" is not installed", "install "+name)
	}

	args := c.Args
	if args == nil {
		args = DefaultLintArgs
	}
	args = append(append([]string(nil), args...), files...)

	result, err := c.Runner.Run(ctx, c.Root, name, args...)
	if err != nil {
		if runner.IsTimeout(err) {
			return failure(cat, name, err, "")
		}
		if runner.IsUnavailable(err) {
			return types.Warn(cat, name, name+" is not installed", "install "+name)
		}
		return types.Warn(cat, name, errors.Message(err), "")
	}

	if result.Success() {
		return types.Pass(cat, name, plural(len(files), "file")+" clean")
	}

	issues := ParseIssues(result.Output)
	if len(issues) == 0 {
		detail := fmt.Sprintf("%s exited with status %d", name, result.ExitCode)
		if line := firstOutputLine(result.Output); line != "" {
			detail += ": " + line
		}
		return types.Warn(cat, name, detail, "")
	}

	detail := fmt.Sprintf("%s in %s", plural(len(issues), "issue"), plural(len(files), "file"))
	return types.Warn(cat, name, detail, "fix the reported issues").WithItems(issues)
}

// ParseIssues returns the gcc-format issue lines of linter output
func ParseIssues(output string) []string {
	var issues []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if issuePattern.MatchString(line) {
			issues = append(issues, line)
		}
	}
	return issues
}

func firstOutputLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
