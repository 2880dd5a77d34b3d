package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option adjusts how Load finds its files.
type Option func(*loader)

// WithConfigDir points Load at dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

type loader struct {
	dir string
	k   *koanf.Koanf
}

// Load builds the Config for profile. Later layers win:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// An env var is matched against the keys already known, so that
// APP_BOARD_SSE_KEEPALIVE lands on board.sse_keepalive and
// APP_CLIENT_RETRY_MAX_ATTEMPTS on client.retry.max_attempts. Unknown names
// fall back to splitting every underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	if err := loadDefaults(l.k); err != nil {
		return nil, err
	}
	for _, name := range []string{"base", profile} {
		if err := l.yaml(name); err != nil {
			return nil, err
		}
	}
	if err := l.env(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (l *loader) yaml(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", name, path, err)
	}
	return nil
}

func (l *loader) env() error {
	known := make(map[string]string)
	for _, key := range l.k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	err := l.k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// checkProfile rejects profiles that would resolve outside the config dir.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), !filepath.IsLocal(profile):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}
