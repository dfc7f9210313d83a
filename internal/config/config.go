package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"couchnav/internal/domain"
	"couchnav/internal/eventbus"
	"couchnav/internal/ui/scroll"
)

// Config represents the application configuration
type Config struct {
	Version int                 `toml:"version"`
	Catalog string              `toml:"catalog,omitempty"` // empty uses the built-in catalog
	UI      UISettings          `toml:"ui"`
	Timers  Timers              `toml:"timers"`
	Keys    map[string][]string `toml:"keys"` // remote key -> terminal keys
	Log     LogSettings         `toml:"log"`
}

// UISettings represents page and scrolling configuration
type UISettings struct {
	ExtraBottom      int     `toml:"extra_bottom"`
	SaveIntervalMS   int     `toml:"save_interval_ms"`
	AnimateRestore   bool    `toml:"animate_restore"`
	SpringFPS        int     `toml:"spring_fps"`
	SpringFrequency  float64 `toml:"spring_frequency"`
	SpringDamping    float64 `toml:"spring_damping"`
	CatalogLatencyMS int     `toml:"catalog_latency_ms"`
}

// Timers configures the page timers
type Timers struct {
	AutoplayMS     int `toml:"autoplay_ms"`
	ControlsHideMS int `toml:"controls_hide_ms"`
}

// LogSettings configures the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Debug bool   `toml:"debug"`
}

// SaveInterval is the minimum gap between routine snapshot saves
func (u UISettings) SaveInterval() time.Duration {
	return time.Duration(u.SaveIntervalMS) * time.Millisecond
}

// CatalogLatency is the simulated catalog fetch delay
func (u UISettings) CatalogLatency() time.Duration {
	return time.Duration(u.CatalogLatencyMS) * time.Millisecond
}

// Spring returns the scroll spring, filling unset fields from the default
func (u UISettings) Spring() scroll.Spring {
	s := scroll.DefaultSpring()
	if u.SpringFPS > 0 {
		s.FPS = u.SpringFPS
	}
	if u.SpringFrequency > 0 {
		s.Frequency = u.SpringFrequency
	}
	if u.SpringDamping > 0 {
		s.Damping = u.SpringDamping
	}
	return s
}

// Autoplay is the carousel rotation interval
func (t Timers) Autoplay() time.Duration {
	return time.Duration(t.AutoplayMS) * time.Millisecond
}

// ControlsHide is the player controls auto-hide delay
func (t Timers) ControlsHide() time.Duration {
	return time.Duration(t.ControlsHideMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath is $XDG_CONFIG_HOME/couchnav/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "couchnav", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration from file, or the defaults when there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, fs.ErrNotExist) {
		cs.publish(domain.ConfigLoadedEvent{Path: cs.filePath, Default: true})
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(domain.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path. Fields the file
// leaves out keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = make(map[string][]string)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

func (cs *configService) publish(event domain.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	spring := scroll.DefaultSpring()
	return &Config{
		Version: 1,
		UI: UISettings{
			ExtraBottom:      2,
			SaveIntervalMS:   250,
			AnimateRestore:   false,
			SpringFPS:        spring.FPS,
			SpringFrequency:  spring.Frequency,
			SpringDamping:    spring.Damping,
			CatalogLatencyMS: 400,
		},
		Timers: Timers{
			AutoplayMS:     5000,
			ControlsHideMS: 3000,
		},
		Keys: map[string][]string{},
		Log: LogSettings{
			Path: "couchnav.log",
		},
	}
}
