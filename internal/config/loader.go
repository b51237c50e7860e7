package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A ./.env file, when present, is loaded into the environment first and never
// overrides variables that are already set.
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	prefixSet := false
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if prefixSet, err = yamlHasProxyPrefix(path); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if _, ok := os.LookupEnv("CATALOG_PROXY_PREFIX"); ok {
		prefixSet = true
	}
	if !prefixSet {
		cfg.Catalog.ProxyPrefix = DefaultProxyPrefix
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// yamlHasProxyPrefix reports whether catalog.proxy_prefix is present in the
// file, so an explicit empty value survives default filling.
func yamlHasProxyPrefix(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var raw struct {
		Catalog struct {
			ProxyPrefix *string `yaml:"proxy_prefix"`
		} `yaml:"catalog"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false, err
	}

	return raw.Catalog.ProxyPrefix != nil, nil
}
