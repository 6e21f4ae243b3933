package config

import (
	"time"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
)

// Validate rejects values no check could run with
func Validate(cfg *Config) error {
	if cfg.Engine.Concurrency < 0 {
		return errors.Newf(errors.ErrConfigValid, "engine.concurrency must not be negative, got %d", cfg.Engine.Concurrency)
	}

	d, err := time.ParseDuration(cfg.Engine.Timeout)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "engine.timeout %q is not a duration", cfg.Engine.Timeout)
	}
	if d <= 0 {
		return errors.Newf(errors.ErrConfigValid, "engine.timeout must be positive, got %s", cfg.Engine.Timeout)
	}

	if cfg.Symlink.Command == "" {
		return errors.New(errors.ErrConfigValid, "symlink.command must not be empty")
	}

	for i, perm := range cfg.Permissions {
		if perm.Path == "" {
			return errors.Newf(errors.ErrConfigValid, "permissions[%d].path must not be empty", i)
		}
		mode, err := perm.FileMode()
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "permissions[%d].mode %q is not an octal mode", i, perm.Mode).
				WithDetail("path", perm.Path)
		}
		if mode > 0o777 {
			return errors.Newf(errors.ErrConfigValid, "permissions[%d].mode %q is out of range", i, perm.Mode).
				WithDetail("path", perm.Path)
		}
	}

	for name, tool := range cfg.Tools {
		if tool.Command == "" && len(tool.Args) == 0 {
			return errors.Newf(errors.ErrConfigValid, "tools.%s sets neither command nor args", name)
		}
	}

	return nil
}
