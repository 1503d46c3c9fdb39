package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrConfigNotFound is returned by LoadFromPath when the file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	List    ListSettings `toml:"list"`
	Keys    KeyBindings  `toml:"keys"`
}

// ListSettings represents list-related configuration
type ListSettings struct {
	MaxHeight   int    `toml:"max_height"` // 0 means fill the terminal
	Scrollbar   bool   `toml:"scrollbar"`
	Query       bool   `toml:"query"`
	Size        string `toml:"size"` // small, medium or large
	Placeholder string `toml:"placeholder"`
}

// KeyBindings lists the keys for each list action, in bubbletea key notation
type KeyBindings struct {
	Cancel         []string `toml:"cancel"`
	Confirm        []string `toml:"confirm"`
	SelectPrevious []string `toml:"select_previous"`
	SelectNext     []string `toml:"select_next"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "searchlist", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that cannot be represented by the types alone
func (c *Config) Validate() error {
	if c.List.MaxHeight < 0 {
		return fmt.Errorf("list.max_height must not be negative, got %d", c.List.MaxHeight)
	}
	switch c.List.Size {
	case "", "small", "medium", "large":
	default:
		return fmt.Errorf("list.size must be small, medium or large, got %q", c.List.Size)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		List: ListSettings{
			Scrollbar:   true,
			Query:       true,
			Size:        "medium",
			Placeholder: "Search...",
		},
		Keys: KeyBindings{
			Cancel:         []string{"esc"},
			Confirm:        []string{"enter"},
			SelectPrevious: []string{"up"},
			SelectNext:     []string{"down"},
		},
	}
}
