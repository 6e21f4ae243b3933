package config

import (
	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# dotdoctor effective configuration.
# Generated by "dotdoctor genconfig". Save as .dotdoctor.toml in the
# dotfiles root or as $XDG_CONFIG_HOME/dotdoctor/config.toml.

`

// GenerateConfigContent renders cfg as TOML
func GenerateConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return generatedHeader + string(data), nil
}
