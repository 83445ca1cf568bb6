package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/gnana997/lucidex/pkg/builder"
	"github.com/gnana997/lucidex/pkg/util"
)

// defaultConfigPath is where commands look for project settings.
var defaultConfigPath = filepath.Join(".lucidex", "config.yaml")

// ProjectConfig holds the contents of .lucidex/config.yaml.
type ProjectConfig struct {
	Version     string    `yaml:"version"`
	Framework   string    `yaml:"framework"`
	TokensDir   string    `yaml:"tokens_dir"`
	CatalogPath string    `yaml:"catalog_path"`
	Log         LogConfig `yaml:"log"`
	LogFile     string    `yaml:"log_file"`
	Watch       bool      `yaml:"watch"`
}

// LogConfig selects the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate checks the enumerated fields. Empty values mean "default".
func (c *ProjectConfig) Validate() error {
	frameworks := make([]interface{}, len(builder.Frameworks))
	for i, f := range builder.Frameworks {
		frameworks[i] = string(f)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Framework, validation.In(frameworks...)),
		validation.Field(&c.Log),
	)
}

// Validate checks the log level and format names.
func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.Format, validation.In(string(util.FormatJSON), string(util.FormatText))),
	)
}

// loadProjectConfig reads the config file at path with ${VAR} expansion.
// A missing file yields an empty config. An explicit path that does not
// exist is an error.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// loggerConfig maps the log section onto util.LoggerConfig. Text is the
// default format for a terminal.
func (c *ProjectConfig) loggerConfig() util.LoggerConfig {
	lc := util.DefaultLoggerConfig()
	if c.Log.Level != "" {
		lc.Level = util.ParseLogLevel(c.Log.Level)
	}
	if c.Log.Format != "" {
		lc.Format = util.LogFormat(c.Log.Format)
	}
	return lc
}

// firstNonEmpty returns the first non-empty value: flag overrides config.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
