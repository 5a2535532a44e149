package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is read from a YAML file. Missing keys keep their defaults.
type Config struct {
	// Year is used when a command names only a day. Zero means the latest
	// registered year.
	Year int `yaml:"year"`

	InputDir    string `yaml:"input_dir"`
	SessionFile string `yaml:"session_file"`
	BaseURL     string `yaml:"base_url"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:    "inputs",
		SessionFile: "~/keys/aoc.session",
		BaseURL:     "https://adventofcode.com",
		LogLevel:    "info",
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.InputDir = expandHome(cfg.InputDir)
	cfg.SessionFile = expandHome(cfg.SessionFile)
	return cfg, nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
