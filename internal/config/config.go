// Package config handles global quill configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvToken is the environment variable that overrides the configured token.
const EnvToken = "QUILL_TOKEN"

// Config represents the global quill configuration.
type Config struct {
	// Token is the integration token used to authenticate with the service.
	// QUILL_TOKEN takes priority when set.
	Token string `toml:"token"`

	// BaseURL overrides the service endpoint (for proxies and tests).
	BaseURL string `toml:"base_url"`

	// DefaultDatabase is the database id used when -d/--database is omitted.
	DefaultDatabase string `toml:"default_database"`

	// Databases maps short names to database ids, so commands can say
	// "tasks" instead of a raw id.
	Databases map[string]string `toml:"databases"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// ResolveToken returns the token to use, preferring the environment.
func (c *Config) ResolveToken() string {
	if env := os.Getenv(EnvToken); env != "" {
		return env
	}
	return c.Token
}

// ResolveDatabase maps a name or id to a database id. A name present in the
// Databases map wins; anything else is assumed to be a raw id. An empty
// argument falls back to the default database.
func (c *Config) ResolveDatabase(nameOrID string) (string, error) {
	if nameOrID == "" {
		if c.DefaultDatabase == "" {
			return "", fmt.Errorf("no database specified and no default_database configured")
		}
		nameOrID = c.DefaultDatabase
	}
	if c.Databases != nil {
		if id, ok := c.Databases[nameOrID]; ok {
			return id, nil
		}
	}
	return nameOrID, nil
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// Save writes the configuration back to a specific path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// DefaultPath returns the default config file path.
// Checks ~/.config/quill/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "quill", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "quill", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# quill configuration

# Integration token for the workspace service.
# The QUILL_TOKEN environment variable takes priority over this value.
# token = "secret_..."

# Database used when -d/--database is omitted.
# default_database = "tasks"

# Short names for database ids.
# [databases]
# tasks = "d9824bdc-8445-4327-be8b-5b47500af6ce"
# notes = "6c353f89-e11c-4fcb-b1c0-2b85c642b7e9"

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
