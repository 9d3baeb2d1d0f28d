package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
)

// EnvPrefix scopes the environment variables read by Load.
const EnvPrefix = "AIFEED_"

// Config is the process-level configuration: where the feed registry and site
// settings live and how the process logs and serves.
type Config struct {
	SourcesPath string `koanf:"sources_path"`
	SitePath    string `koanf:"site_path"`
	HTTPPort    string `koanf:"http_port"`
	LogLevel    string `koanf:"log_level"`
	LogFile     string `koanf:"log_file"`
	AppEnv      AppEnv `koanf:"app_env"`
}

// DefaultFiles are tried in order when no explicit config file is given.
var DefaultFiles = []string{
	"aifeed.yaml",
	"aifeed.yml",
	"aifeed.json",
	"aifeed.toml",
}

// Load reads configFile (or the first existing DefaultFiles entry when empty),
// then AIFEED_* environment variables, then applies defaults.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if configFile == "" {
		configFile, _ = lo.Find(DefaultFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if configFile != "" {
		parser, err := ParserFor(configFile)
		if err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("log_level") {
		k.Set("log_level", "info")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error", optionally with an offset such as "info+2").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, oops.With("log_level", c.LogLevel).Wrap(err)
	}
	return level, nil
}

// ParserFor picks the koanf parser matching the extension of path.
func ParserFor(path string) (koanf.Parser, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.With("extension", ext).Wrap(errors.ErrUnsupportedFormat)
	}
}
