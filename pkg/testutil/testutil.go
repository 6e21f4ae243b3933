package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Fixture is an isolated dotfiles root and home directory
type Fixture struct {
	t    *testing.T
	Root string
	Home string
}

// NewFixture creates the directories and isolates the environment for
// the lifetime of t
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	fx := &Fixture{t: t, Root: t.TempDir(), Home: t.TempDir()}

	t.Setenv("HOME", fx.Home)
	t.Setenv("DOTDOCTOR_CONFIG_DIR", filepath.Join(fx.Home, ".config", "dotdoctor"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(fx.Home, ".local", "state"))
	t.Setenv("DOTFILES_ROOT", "")
	t.Setenv("NO_COLOR", "1")
	return fx
}

// WriteFile creates rel under the root with its parent directories
func (fx *Fixture) WriteFile(rel, content string) string {
	fx.t.Helper()
	return writeFile(fx.t, filepath.Join(fx.Root, rel), content)
}

// WriteHomeFile creates rel under the home directory
func (fx *Fixture) WriteHomeFile(rel, content string) string {
	fx.t.Helper()
	return writeFile(fx.t, filepath.Join(fx.Home, rel), content)
}

// MkdirHome creates rel under the home directory with exactly mode,
// whatever the umask
func (fx *Fixture) MkdirHome(rel string, mode os.FileMode) string {
	fx.t.Helper()
	path := filepath.Join(fx.Home, rel)
	require.NoError(fx.t, os.MkdirAll(path, 0755))
	require.NoError(fx.t, os.Chmod(path, mode))
	return path
}

// Touch sets the modification time of rel under the root relative to now
func (fx *Fixture) Touch(rel string, age time.Duration) {
	fx.t.Helper()
	when := time.Now().Add(-age)
	require.NoError(fx.t, os.Chtimes(filepath.Join(fx.Root, rel), when, when))
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
