package dotdoctor

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotdoctor/internal/version"
	"github.com/arthur-debert/dotdoctor/pkg/config"
	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/testutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		name    string
		groupID string
	}{
		{"check", "core"},
		{"genconfig", "misc"},
		{"version", "misc"},
		{"topics", "misc"},
		{"completion", "misc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := findCommand(cmd, tt.name)
			require.NotNil(t, sub, "%s command should exist", tt.name)
			assert.Equal(t, tt.groupID, sub.GroupID)
		})
	}

	for _, flag := range []string{"verbose", "root", "config", "only", "format", "timeout", "concurrency"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestCheck_CleanRun(t *testing.T) {
	root := testutil.NewFixture(t).Root

	for _, args := range [][]string{
		{"--root", root, "--only", "permissions", "--format", "text"},
		{"check", "--root", root, "--only", "permissions", "--format", "text"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "permissions\n")
		assert.Contains(t, out, "✓ ~/.ssh  absent, nothing to audit")
		assert.Contains(t, out, "2 passed, 0 warnings, 0 failed")
		assert.Equal(t, 0, ExitCode(err, &bytes.Buffer{}))
	}
}

func TestCheck_WarningsExitOne(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.MkdirHome(".ssh", 0755)
	root := fx.Root

	out, err := execute(t, "--root", root, "--only", "permissions", "--format", "text")
	require.Error(t, err)

	assert.Contains(t, out, "! ~/.ssh  mode 0755, expected 0700")
	assert.Contains(t, out, "→ chmod 700 ~/.ssh")
	assert.Contains(t, out, "to fix\n  1. ~/.ssh  chmod 700 ~/.ssh\n")
	assert.Contains(t, out, "1 passed, 1 warnings, 0 failed")

	var stderr bytes.Buffer
	assert.Equal(t, 1, ExitCode(err, &stderr))
	assert.Empty(t, stderr.String())
}

func TestCheck_FatalErrors(t *testing.T) {
	root := testutil.NewFixture(t).Root

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing manifest", []string{"--root", root, "--only", "manifest"}, errors.ErrManifestUnreadable},
		{"unknown category", []string{"--root", root, "--only", "bogus"}, errors.ErrInvalidInput},
		{"unknown format", []string{"--root", root, "--format", "html"}, errors.ErrInvalidInput},
		{"bad timeout", []string{"--root", root, "--timeout", "soon"}, errors.ErrConfigValid},
		{"missing config file", []string{"--root", root, "--config", filepath.Join(root, "nope.toml")}, errors.ErrConfigLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Empty(t, out, "no report on a fatal error")

			var stderr bytes.Buffer
			assert.Equal(t, 2, ExitCode(err, &stderr))
			assert.Regexp(t, `^dotdoctor: [^\n]+\n$`, stderr.String())
		})
	}
}

func TestGenConfig(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.WriteFile(".dotdoctor.toml", "[lint]\ncommand = \"shfmt\"\nargs = [\"-d\"]\n")
	root := fx.Root

	out, err := execute(t, "genconfig", "--root", root, "--timeout", "9s")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "9s", cfg.Engine.Timeout)
	assert.Equal(t, "shfmt", cfg.Lint.Command)
	assert.Equal(t, root, cfg.Paths.Root)
}

func TestVersionCmd(t *testing.T) {
	testutil.NewFixture(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dotdoctor version "+version.Version)
	assert.Contains(t, out, "commit: "+version.Commit)
}

func TestHelpTopics(t *testing.T) {
	testutil.NewFixture(t)

	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"configuration", "drift", "exit-codes", "manifests"} {
		assert.Contains(t, out, topic)
	}
	assert.Contains(t, out, "--only")

	out, err = execute(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "exit-codes")

	out, err = execute(t, "help", "exit-codes")
	require.NoError(t, err)
	assert.Contains(t, out, "Exit codes")
}

func TestCompletionCmd(t *testing.T) {
	testutil.NewFixture(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "dotdoctor")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, ExitCode(nil, &stderr))
	assert.Equal(t, 2, ExitCode(&ExitError{Code: 2}, &stderr))
	assert.Empty(t, stderr.String())

	assert.Equal(t, 2, ExitCode(errors.New(errors.ErrManifestUnreadable, "cannot open packages.conf"), &stderr))
	assert.Equal(t, "dotdoctor: cannot open packages.conf\n", stderr.String())
}
