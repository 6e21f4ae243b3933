package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixture_IsolatesEnvironment(t *testing.T) {
	fx := NewFixture(t)

	assert.Equal(t, fx.Home, os.Getenv("HOME"))
	assert.Equal(t, filepath.Join(fx.Home, ".config", "dotdoctor"), os.Getenv("DOTDOCTOR_CONFIG_DIR"))
	assert.NotEqual(t, fx.Root, fx.Home)
}

func TestFixture_Files(t *testing.T) {
	fx := NewFixture(t)

	path := fx.WriteFile("git/.gitconfig", "[user]\n")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[user]\n", string(content))

	home := fx.WriteHomeFile(".zshrc", "export A=1\n")
	assert.Equal(t, filepath.Join(fx.Home, ".zshrc"), home)

	dir := fx.MkdirHome(".ssh", 0700)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	fx.Touch("git/.gitconfig", time.Hour)
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Before(time.Now().Add(-30*time.Minute)))
}
