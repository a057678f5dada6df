package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/templater/pkg/errors"
	"github.com/arthur-debert/templater/pkg/logging"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. TEMPLATER_SUGGEST__MAX_DISTANCE
	EnvPrefix = "TEMPLATER_"

	// RootConfigFile is read from the source root when present
	RootConfigFile = ".templater.toml"

	userConfigRelPath = "templater/config.toml"
)

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// SourceRoot is searched for RootConfigFile; empty skips that layer
	SourceRoot string

	// ConfigFile is an explicit config file that must exist when set
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("jobs", "walk.ignore")
	Overrides map[string]interface{}
}

// UserConfigPath returns the location of the per-user config file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, userConfigRelPath)
}

// Default returns the embedded defaults alone, ignoring files and environment
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := decode(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Load resolves the configuration from every layer, lowest priority first
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, then 3. source root config, when present
	optional := []string{UserConfigPath()}
	if opts.SourceRoot != "" {
		optional = append(optional, filepath.Join(opts.SourceRoot, RootConfigFile))
	}
	for _, path := range optional {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded config file")
	}

	// 5. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 6. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	logger.Trace().Interface("config", cfg).Msg("Resolved configuration")
	return cfg, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return errors.Newf(errors.ErrConfigParse, "jobs must be at least 1, got %d", c.Jobs).
			WithDetail("key", "jobs")
	}
	if c.Suggest.MaxDistance < 0 {
		return errors.Newf(errors.ErrConfigParse, "suggest.max_distance must not be negative, got %d", c.Suggest.MaxDistance).
			WithDetail("key", "suggest.max_distance")
	}
	if c.Output.FileMode == 0 || c.Output.DirMode == 0 {
		return errors.New(errors.ErrConfigParse, "output modes must not be zero").
			WithDetail("key", "output")
	}
	return nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps TEMPLATER_SUGGEST__MAX_DISTANCE to suggest.max_distance
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
