package drift

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
	"github.com/arthur-debert/dotdoctor/pkg/runner/runnertest"
	"github.com/arthur-debert/dotdoctor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simulationBanner = "WARNING: in simulation mode so not modifying filesystem.\n"

type fixture struct {
	root   string
	home   string
	fake   *runnertest.Fake
	engine *Classifier
}

func newFixture(t *testing.T, packages ...string) *fixture {
	t.Helper()
	f := &fixture{
		root: t.TempDir(),
		home: t.TempDir(),
		fake: runnertest.NewFake(),
	}
	f.fake.Installed["stow"] = true
	for _, name := range packages {
		dir := filepath.Join(f.root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".placeholder"), []byte("x"), 0644))
	}
	f.engine = NewClassifier(f.fake, Options{Root: f.root, Home: f.home})
	return f
}

func (f *fixture) pkg(name string) types.PackageDeclaration {
	return types.PackageDeclaration{Name: name, TargetPath: f.home, Line: 1}
}

func (f *fixture) line(name string) string {
	return "stow " + strings.Join(f.engine.Args(f.pkg(name)), " ")
}

func (f *fixture) respond(name, output string, exitCode int) {
	f.fake.On(f.line(name), runnertest.Response{Output: output, ExitCode: exitCode})
}

func TestClassify(t *testing.T) {
	t.Run("in sync", func(t *testing.T) {
		f := newFixture(t, "git")
		f.respond("git", simulationBanner, 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("git"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftInSync, state.Kind)
		assert.Empty(t, state.Links)
	})

	t.Run("would change", func(t *testing.T) {
		f := newFixture(t, "ssh")
		f.respond("ssh", "LINK: .ssh/config => ../dotfiles/ssh/.ssh/config\n"+simulationBanner, 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("ssh"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftWouldChange, state.Kind)
		assert.Equal(t, []types.LinkOp{{Action: types.LinkActionLink, Path: "~/.ssh/config"}}, state.Links)
	})

	t.Run("would create link with a home path", func(t *testing.T) {
		f := newFixture(t, "ssh")
		f.respond("ssh", "would create link ~/.ssh/config\n", 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("ssh"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftWouldChange, state.Kind)
		assert.Equal(t, []types.LinkOp{{Action: types.LinkActionLink, Path: "~/.ssh/config"}}, state.Links)
	})

	t.Run("would remove link with an absolute path", func(t *testing.T) {
		f := newFixture(t, "zsh")
		f.respond("zsh", "would remove link "+filepath.Join(f.home, ".zshrc")+"\n", 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("zsh"))
		require.NoError(t, err)
		assert.Equal(t, []types.LinkOp{{Action: types.LinkActionUnlink, Path: "~/.zshrc"}}, state.Links)
	})

	t.Run("missing source directory still runs stow once", func(t *testing.T) {
		f := newFixture(t)
		f.respond("ghost", "stow: ERROR: The stow directory "+f.root+" does not contain package ghost\n", 2)

		state, err := f.engine.Classify(context.Background(), f.pkg("ghost"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftMissing, state.Kind)
		assert.Contains(t, state.Reason, "does not exist")
		assert.Len(t, f.fake.Calls(), 1)
	})

	t.Run("missing source wins over link output", func(t *testing.T) {
		f := newFixture(t)
		f.respond("ghost", "LINK: .ghostrc => ../dotfiles/ghost/.ghostrc\n", 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("ghost"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftMissing, state.Kind)
		assert.Empty(t, state.Links)
	})

	t.Run("empty source directory", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, os.Mkdir(filepath.Join(f.root, "empty"), 0755))
		f.respond("empty", simulationBanner, 0)

		state, err := f.engine.Classify(context.Background(), f.pkg("empty"))
		require.NoError(t, err)
		assert.Equal(t, types.Missing("source directory is empty"), state)
	})

	t.Run("stow reports missing package", func(t *testing.T) {
		f := newFixture(t, "zsh")
		f.respond("zsh", "stow: ERROR: The stow directory x does not contain package zsh\n", 2)

		state, err := f.engine.Classify(context.Background(), f.pkg("zsh"))
		require.NoError(t, err)
		assert.Equal(t, types.DriftMissing, state.Kind)
		assert.Contains(t, state.Reason, "does not contain package zsh")
	})

	t.Run("conflict is a subprocess failure", func(t *testing.T) {
		f := newFixture(t, "zsh")
		f.respond("zsh", "WARNING! stowing zsh would cause conflicts:\n"+
			"  * existing target is neither a link nor a directory: .zshrc\n"+
			"All operations aborted.\n", 1)

		_, err := f.engine.Classify(context.Background(), f.pkg("zsh"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubprocessFailed))
		assert.Contains(t, err.Error(), "WARNING! stowing zsh would cause conflicts:")
	})

	t.Run("unresolved target does not run stow", func(t *testing.T) {
		f := newFixture(t, "nvim")
		pkg := types.PackageDeclaration{Name: "nvim", TargetPath: "$XDG_CONFIG_HOME/nvim"}

		_, err := f.engine.Classify(context.Background(), pkg)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Empty(t, f.fake.Calls())
	})

	t.Run("stow not installed", func(t *testing.T) {
		f := newFixture(t, "git")
		f.fake.Installed["stow"] = false

		_, err := f.engine.Classify(context.Background(), f.pkg("git"))
		require.Error(t, err)
		assert.True(t, runner.IsUnavailable(err))
	})

	t.Run("timeout", func(t *testing.T) {
		f := newFixture(t, "git")
		f.fake.Block[f.line("git")] = true

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := f.engine.Classify(ctx, f.pkg("git"))
		require.Error(t, err)
		assert.True(t, runner.IsTimeout(err))
	})
}

func TestClassify_Idempotent(t *testing.T) {
	f := newFixture(t, "ssh")
	f.respond("ssh", "LINK: .ssh/config => ../dotfiles/ssh/.ssh/config\n", 0)

	first, err := f.engine.Classify(context.Background(), f.pkg("ssh"))
	require.NoError(t, err)
	second, err := f.engine.Classify(context.Background(), f.pkg("ssh"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewClassifier_EnforcesSimulation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "defaults", args: nil, want: []string{"--no", "--verbose=1"}},
		{name: "missing flag is added", args: []string{"--verbose=2"}, want: []string{"--no", "--verbose=2"}},
		{name: "short flag kept", args: []string{"-n", "-v"}, want: []string{"-n", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(runnertest.NewFake(), Options{Root: "/dots", Args: tt.args})
			pkg := types.PackageDeclaration{Name: "git", TargetPath: "/home/dev"}

			want := append(append([]string(nil), tt.want...), "--dir", "/dots", "--target", "/home/dev", "git")
			assert.Equal(t, want, c.Args(pkg))
		})
	}
}

func TestRestowCommand(t *testing.T) {
	c := NewClassifier(runnertest.NewFake(), Options{Root: "/home/dev/dotfiles", Home: "/home/dev"})
	pkg := types.PackageDeclaration{Name: "ssh", TargetPath: "/home/dev"}

	assert.Equal(t, "stow --restow --dir ~/dotfiles --target ~ ssh", c.RestowCommand(pkg))
}
