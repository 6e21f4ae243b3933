package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotdoctor/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvConfigDir overrides the XDG config directory for dotdoctor
	EnvConfigDir = "DOTDOCTOR_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "dotdoctor"

	// RepoConfigFile is the per-repository configuration file
	RepoConfigFile = ".dotdoctor.toml"

	// UserConfigFile is the configuration file under the config directory
	UserConfigFile = "config.toml"
)

// Paths provides centralized path management for dotdoctor
type Paths interface {
	DotfilesRoot() string
	UsedFallback() bool
	PackagePath(name string) string
	Resolve(path string) string
	ConfigDir() string
	UserConfigPath() string
	RepoConfigPath() string
}

type paths struct {
	dotfilesRoot string
	xdgConfig    string
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it is determined from DOTFILES_ROOT, the
// enclosing git repository, or the current directory, in that order.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = ExpandHome(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.xdgConfig = UserConfigDir()

	return p, nil
}

// UserConfigDir returns the directory holding the user configuration file
func UserConfigDir() string {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		return ExpandHome(configDir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// findDotfilesRoot returns the resolved root and whether the current
// working directory was used as a fallback
func findDotfilesRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrFileAccess, "git root is empty")
	}
	return gitRoot, nil
}

// DotfilesRoot returns the root directory for dotfiles
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// PackagePath returns the source directory of a package
func (p *paths) PackagePath(name string) string {
	return filepath.Join(p.dotfilesRoot, name)
}

// Resolve expands ~ and makes a relative path absolute against the dotfiles root
func (p *paths) Resolve(path string) string {
	return ResolveAgainst(p.dotfilesRoot, path)
}

// ConfigDir returns the XDG config directory for dotdoctor
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// UserConfigPath returns the user-level configuration file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// RepoConfigPath returns the repository-level configuration file
func (p *paths) RepoConfigPath() string {
	return filepath.Join(p.dotfilesRoot, RepoConfigFile)
}

// ResolveAgainst expands ~ in path and joins it to base when relative
func ResolveAgainst(base, path string) string {
	if path == "" {
		return base
	}
	expanded := ExpandHome(path)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded)
	}
	return filepath.Join(base, expanded)
}

// HomeDir returns the user's home directory, or "" if it cannot be determined
func HomeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return os.Getenv(EnvHome)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir := HomeDir()
	if homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not the current user's home
	return path
}

// Display returns path in the ~ form when it lies under home
func Display(path, home string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	prefix := strings.TrimSuffix(home, string(filepath.Separator)) + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return "~/" + filepath.ToSlash(strings.TrimPrefix(path, prefix))
	}
	return path
}
