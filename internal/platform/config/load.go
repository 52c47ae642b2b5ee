package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envConfigDir     = envPrefix + "CONFIG_DIR"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located. It
// takes precedence over APP_CONFIG_DIR.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one step of the load hierarchy.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  0. Built-in defaults
//  1. Base config ({configDir}/base.yaml), optional
//  2. Profile config ({configDir}/{profile}.yaml), required
//  3. Environment variables (APP_ prefix)
//
// configDir is WithConfigDir, else $APP_CONFIG_DIR, else "configs" relative to
// the working directory. The base file may be absent because the defaults
// cover every key; this lets the CLI run from any directory with only a
// profile file.
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT           -> server.port
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_CLOCK_FIXED_NOW       -> clock.fixed_now
//	APP_BATCH_MAX_ITEMS       -> batch.max_items
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(envConfigDir)}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	layers := []layer{
		{name: "defaults", load: loadDefaults},
		{name: "base config", load: yamlLayer(filepath.Join(o.configDir, "base.yaml"), true)},
		{name: "profile config", load: yamlLayer(filepath.Join(o.configDir, profile+".yaml"), false)},
		{name: "env vars", load: loadEnv},
	}
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadDefaults sets every known key so env matching has a complete key set.
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string, optional bool) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		err := k.Load(file.Provider(path), yaml.Parser())
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

// loadEnv applies APP_ variables. A reverse lookup built from the keys loaded
// so far maps APP_SERVER_READ_TIMEOUT to "server.read_timeout" rather than
// the ambiguous "server.read.timeout".
func loadEnv(k *koanf.Koanf) error {
	lookup := buildEnvLookup(k.Keys())

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			if key == envConfigDir {
				return "", nil
			}
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := lookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	default:
		return nil
	}
}

// buildEnvLookup maps env-style keys ("server_read_timeout") to koanf keys
// ("server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
