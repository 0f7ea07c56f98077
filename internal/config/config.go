package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Direction labels used in the config file.
const (
	DirectionNovelAIToPixAI = "novelai-to-pixai"
	DirectionPixAIToNovelAI = "pixai-to-novelai"
)

type Config struct {
	// DefaultDirection is the conversion direction the TUI starts in.
	DefaultDirection string `yaml:"default_direction"`
	// CopyNegative appends the negative prompt when copying a result
	// to the clipboard.
	CopyNegative bool `yaml:"copy_negative"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultDirection: DirectionNovelAIToPixAI,
		CopyNegative:     true,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptport"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultDirection != DirectionNovelAIToPixAI && cfg.DefaultDirection != DirectionPixAIToNovelAI {
		return nil, fmt.Errorf("unknown default_direction %q", cfg.DefaultDirection)
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
