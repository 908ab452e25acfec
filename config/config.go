// Package config loads the declarative startup configuration that seeds the
// server identity, listen address, tool availability, and telemetry settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	projectConfigName = "textutils.yaml"
	homeConfigDir     = ".textutils"
	homeConfigName    = "config.yaml"

	// DefaultServerName and DefaultServerVersion identify the server in
	// initialize responses when no config overrides them.
	DefaultServerName    = "textutils"
	DefaultServerVersion = "0.1.0"
)

// Config is the full startup configuration.
type Config struct {
	Server    ServerSettings    `yaml:"server"`
	Tools     ToolSettings      `yaml:"tools"`
	Telemetry TelemetrySettings `yaml:"telemetry"`
}

// ServerSettings configures the server identity and HTTP listener.
type ServerSettings struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	CORSOrigin   string `yaml:"cors_origin"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// ToolSettings controls which built-in tools are exposed.
type ToolSettings struct {
	Disabled []string `yaml:"disabled"`
}

// TelemetrySettings configures the optional OpenTelemetry export.
type TelemetrySettings struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerSettings{
			Name:         DefaultServerName,
			Version:      DefaultServerVersion,
			Host:         "0.0.0.0",
			Port:         8080,
			CORSOrigin:   "*",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// DiscoverPath resolves the config file location with first-match semantics:
// an explicit path (which must exist), then ./textutils.yaml, then
// ~/.textutils/config.yaml. The boolean reports whether a file was found.
func DiscoverPath(explicitPath string) (string, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("resolve working directory: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("resolve user home: %w", err)
	}
	return DiscoverPathFrom(explicitPath, cwd, homeDir)
}

// DiscoverPathFrom is a testable variant of DiscoverPath.
func DiscoverPathFrom(explicitPath, cwd, homeDir string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if clean := strings.TrimSpace(explicitPath); clean != "" {
		candidates = append(candidates, filepath.Clean(clean))
	} else {
		candidates = append(candidates, filepath.Join(cwd, projectConfigName))
		candidates = append(candidates, filepath.Join(homeDir, homeConfigDir, homeConfigName))
	}

	for i, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			// An explicit path that does not exist is an error.
			if i == 0 && strings.TrimSpace(explicitPath) != "" {
				return "", false, fmt.Errorf("config file %q not found", candidate)
			}
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("checking config path %q: %w", candidate, err)
		}
	}
	return "", false, nil
}

// Load reads a config file and merges it onto the defaults. String values
// support ${VAR} environment expansion.
func Load(path string) (Config, error) {
	// #nosec G304 -- path resolved from explicit local config discovery.
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	cfg.expandEnv()
	return cfg, nil
}

func (c *Config) expandEnv() {
	c.Server.Name = os.ExpandEnv(c.Server.Name)
	c.Server.Version = os.ExpandEnv(c.Server.Version)
	c.Server.Host = os.ExpandEnv(c.Server.Host)
	c.Server.CORSOrigin = os.ExpandEnv(c.Server.CORSOrigin)
	c.Telemetry.OTLPEndpoint = os.ExpandEnv(c.Telemetry.OTLPEndpoint)
	for i, name := range c.Tools.Disabled {
		c.Tools.Disabled[i] = os.ExpandEnv(name)
	}
}

// DisabledSet returns the disabled tool names as a lookup set.
func (c Config) DisabledSet() map[string]bool {
	if len(c.Tools.Disabled) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.Tools.Disabled))
	for _, name := range c.Tools.Disabled {
		set[strings.TrimSpace(name)] = true
	}
	return set
}
