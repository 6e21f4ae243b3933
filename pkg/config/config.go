package config

import (
	"io/fs"
	"sort"
	"strconv"
	"time"
)

// Config is the effective dotdoctor configuration
type Config struct {
	Paths       Paths           `koanf:"paths" toml:"paths"`
	Engine      Engine          `koanf:"engine" toml:"engine"`
	Symlink     Symlink         `koanf:"symlink" toml:"symlink"`
	Tools       map[string]Tool `koanf:"tools" toml:"tools,omitempty"`
	Build       Build           `koanf:"build" toml:"build"`
	Permissions []Permission    `koanf:"permissions" toml:"permissions"`
	Links       Links           `koanf:"links" toml:"links"`
	Lint        Lint            `koanf:"lint" toml:"lint"`
}

// Paths locates the dotfiles repository and its manifests.
// Relative manifest paths are resolved against Root.
type Paths struct {
	Root            string `koanf:"root" toml:"root"`
	Target          string `koanf:"target" toml:"target"`
	PackageManifest string `koanf:"package_manifest" toml:"package_manifest"`
	VersionManifest string `koanf:"version_manifest" toml:"version_manifest"`
}

// Engine controls how the check plan is executed
type Engine struct {
	Concurrency int    `koanf:"concurrency" toml:"concurrency"`
	Timeout     string `koanf:"timeout" toml:"timeout"`
}

// TimeoutDuration parses Timeout. Validate guarantees it parses.
func (e Engine) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Symlink holds the stow invocation used for simulation
type Symlink struct {
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
}

// Tool overrides how a tool reports its version
type Tool struct {
	Command string   `koanf:"command" toml:"command,omitempty"`
	Args    []string `koanf:"args" toml:"args,omitempty"`
}

// Build describes a generated artifact that must be newer than its source
type Build struct {
	Source   string `koanf:"source" toml:"source"`
	Output   string `koanf:"output" toml:"output"`
	Required bool   `koanf:"required" toml:"required"`
}

// Enabled reports whether a build check is configured
func (b Build) Enabled() bool {
	return b.Source != "" || b.Output != ""
}

// Permission is an expected mode for a sensitive path
type Permission struct {
	Path string `koanf:"path" toml:"path"`
	Mode string `koanf:"mode" toml:"mode"`
}

// FileMode parses Mode as an octal permission
func (p Permission) FileMode() (fs.FileMode, error) {
	v, err := strconv.ParseUint(p.Mode, 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(v), nil
}

// Links lists the markdown documents whose relative links are validated
type Links struct {
	Documents []string `koanf:"documents" toml:"documents"`
}

// Lint holds the script linter invocation
type Lint struct {
	Command  string   `koanf:"command" toml:"command"`
	Args     []string `koanf:"args" toml:"args"`
	Patterns []string `koanf:"patterns" toml:"patterns"`
}

// DefaultTimeout is used when no engine timeout is configured
const DefaultTimeout = 5 * time.Second

// ToolNames returns the configured tool override names in sorted order
func (c *Config) ToolNames() []string {
	names := make([]string, 0, len(c.Tools))
	for name := range c.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
