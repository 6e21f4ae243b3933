package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates sections: DOTDOCTOR_ENGINE__TIMEOUT=10s sets engine.timeout.
const EnvPrefix = "DOTDOCTOR_"

// LoadOptions selects the layers merged on top of the embedded defaults
type LoadOptions struct {
	// Root is the dotfiles root from the command line. Empty means
	// paths.root from the environment or user config, then discovery.
	Root string
	// ConfigFile replaces <root>/.dotdoctor.toml. It must exist.
	ConfigFile string
	// SkipUserConfig ignores $XDG_CONFIG_HOME/dotdoctor/config.toml
	SkipUserConfig bool
	// Overrides are flattened keys ("engine.timeout") applied last
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Layers, lowest to highest:
// embedded defaults, user config, repository config, environment,
// overrides. The result is validated.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := filepath.Join(paths.UserConfigDir(), paths.UserConfigFile)
		if err := loadOptionalFile(k, userPath); err != nil {
			return nil, err
		}
	}

	// 3. Repository config, located once the root is known
	root := opts.Root
	if root == "" {
		root = os.Getenv(EnvPrefix + "PATHS__ROOT")
	}
	if root == "" {
		root = k.String("paths.root")
	}
	p, err := paths.New(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve dotfiles root")
	}
	if p.UsedFallback() {
		logger.Info().Str("root", p.DotfilesRoot()).Msg("No git repository or DOTFILES_ROOT, using current directory")
	}

	if opts.ConfigFile != "" {
		configPath := paths.ExpandHome(opts.ConfigFile)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	} else if err := loadOptionalFile(k, p.RepoConfigPath()); err != nil {
		return nil, err
	}

	// 4. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Overrides, with the resolved root always winning
	overrides := map[string]interface{}{"paths.root": p.DotfilesRoot()}
	for key, val := range opts.Overrides {
		if key != "paths.root" {
			overrides[key] = val
		}
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if cfg.Paths.Target == "" {
		cfg.Paths.Target = paths.HomeDir()
	} else {
		cfg.Paths.Target = paths.ResolveAgainst(cfg.Paths.Root, cfg.Paths.Target)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Paths.Root).
		Str("target", cfg.Paths.Target).
		Int("concurrency", cfg.Engine.Concurrency).
		Str("timeout", cfg.Engine.Timeout).
		Msg("Configuration loaded")

	return cfg, nil
}

// Default returns the embedded defaults without any other layer
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return &Config{}
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return &Config{}
	}
	return cfg
}

func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
