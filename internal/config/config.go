// Package config resolves where puzzle inputs live and how loudly the CLI logs.
//
// Values are layered: defaults, then an optional YAML file, then environment
// variables (optionally seeded from a .env file). Flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvInputDir = "ADVENT_INPUT_DIR"
	EnvLogLevel = "ADVENT_LOG_LEVEL"
)

// ErrLogLevel indicates a log level zerolog does not know.
var ErrLogLevel = errors.New("config: invalid log level")

// Config holds CLI settings.
type Config struct {
	InputDir string `yaml:"input_dir"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		InputDir: "input",
		LogLevel: "info",
	}
}

// Load starts from Default and overlays the YAML file at path, if path is
// not empty. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDotEnv copies variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from ADVENT_INPUT_DIR and ADVENT_LOG_LEVEL when set.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvInputDir); ok && v != "" {
		c.InputDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate checks that LogLevel parses as a zerolog level.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		return fmt.Errorf("%w: empty", ErrLogLevel)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrLogLevel, c.LogLevel)
	}
	return nil
}

// InputPath is the conventional input file for day: <InputDir>/inputNN.txt.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("input%02d.txt", day))
}
