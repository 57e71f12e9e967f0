package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is the optional settings file. Flags given on the command line
// override it.
type Config struct {
	Enable   bool     `yaml:"enable"`
	Format   string   `yaml:"format"`
	Verbose  bool     `yaml:"verbose"`
	Surfaces []string `yaml:"surfaces"`
}

// LoadConfig reads path. A missing file yields an empty config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found", "path", path)
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	// Refuse world-writable config files. Permission bits mean nothing on Windows.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0002 != 0 {
		return Config{}, fmt.Errorf("config %s is world-writable", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Format != "" {
		if err := validateFormat(cfg.Format); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
	}
}
