package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the project config lives relative to the
// working directory.
const DefaultPath = "initiation.yaml"

type ProjectConfig struct {
	Project string        `yaml:"project"`
	Version int           `yaml:"version"`
	Host    HostConfig    `yaml:"host"`
	Storage StorageConfig `yaml:"storage"`
}

// HostConfig carries the host-side secret. The PIN is a soft gate for
// a trusted operator, compared in the clear.
type HostConfig struct {
	PIN string `yaml:"pin"`
}

type StorageConfig struct {
	DSN string `yaml:"dsn"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Host.PIN) == "" {
		return fmt.Errorf("host pin is required")
	}
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return fmt.Errorf("storage dsn is required")
	}
	if !strings.HasPrefix(cfg.Storage.DSN, "bolt://") && !strings.HasPrefix(cfg.Storage.DSN, "sqlite://") {
		return fmt.Errorf("unsupported storage dsn scheme: %s", cfg.Storage.DSN)
	}
	return nil
}
