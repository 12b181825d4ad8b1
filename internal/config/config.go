// Package config provides Viper-based configuration loading for the armory
// simulator.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File redirects log output away from stderr, which the terminal
	// frontend owns. Empty keeps stderr.
	File string `mapstructure:"file"`
}

// ContentConfig locates the static weapon content.
type ContentConfig struct {
	// WeaponsDir holds one YAML file per weapon type.
	WeaponsDir string `mapstructure:"weapons_dir"`
	// ScriptsDir is the root that weapon script paths are resolved against.
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// SlotConfig grants one weapon at spawn. An empty Weapon leaves the slot empty.
type SlotConfig struct {
	Weapon  string `mapstructure:"weapon"`
	Reserve int    `mapstructure:"reserve"`
	Loaded  bool   `mapstructure:"loaded"`
}

// LoadoutConfig is the starting loadout of the simulated player.
type LoadoutConfig struct {
	Primary1  SlotConfig `mapstructure:"primary1"`
	Primary2  SlotConfig `mapstructure:"primary2"`
	Secondary SlotConfig `mapstructure:"secondary"`
}

// DriverConfig controls the fixed-rate input loop.
type DriverConfig struct {
	// TickInterval is the wall-clock period between input ticks.
	TickInterval time.Duration `mapstructure:"tick_interval"`
	// Frontend selects the input source: "tui" or "replay".
	Frontend string `mapstructure:"frontend"`
	// Replay is the replay script path, required when Frontend is "replay".
	Replay string `mapstructure:"replay"`
}

// ScriptingConfig bounds Lua weapon behaviors.
type ScriptingConfig struct {
	// InstructionLimit is the per-hook opcode budget; 0 uses the package default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// TelemetryConfig controls OpenTelemetry trace export.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the OTLP/HTTP collector host:port.
	Endpoint    string `mapstructure:"endpoint"`
	Insecure    bool   `mapstructure:"insecure"`
	ServiceName string `mapstructure:"service_name"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Content   ContentConfig   `mapstructure:"content"`
	Loadout   LoadoutConfig   `mapstructure:"loadout"`
	Driver    DriverConfig    `mapstructure:"driver"`
	Scripting ScriptingConfig `mapstructure:"scripting"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	for _, err := range []error{
		validateLogging(c.Logging),
		validateContent(c.Content),
		validateLoadout(c.Loadout),
		validateDriver(c.Driver),
		validateScripting(c.Scripting),
		validateTelemetry(c.Telemetry),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.WeaponsDir == "" {
		return errors.New("content.weapons_dir must not be empty")
	}
	return nil
}

func validateLoadout(l LoadoutConfig) error {
	slots := []struct {
		name string
		slot SlotConfig
	}{
		{"primary1", l.Primary1},
		{"primary2", l.Primary2},
		{"secondary", l.Secondary},
	}
	var errs []string
	for _, s := range slots {
		if s.slot.Reserve < 0 {
			errs = append(errs, fmt.Sprintf("loadout.%s.reserve must be >= 0, got %d", s.name, s.slot.Reserve))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDriver(d DriverConfig) error {
	var errs []string
	if d.TickInterval <= 0 {
		errs = append(errs, fmt.Sprintf("driver.tick_interval must be > 0, got %s", d.TickInterval))
	}
	switch d.Frontend {
	case "tui":
	case "replay":
		if d.Replay == "" {
			errs = append(errs, "driver.replay must not be empty when driver.frontend is replay")
		}
	default:
		errs = append(errs, fmt.Sprintf("driver.frontend must be one of [tui, replay], got %q", d.Frontend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateScripting(s ScriptingConfig) error {
	if s.InstructionLimit < 0 {
		return fmt.Errorf("scripting.instruction_limit must be >= 0, got %d", s.InstructionLimit)
	}
	return nil
}

func validateTelemetry(t TelemetryConfig) error {
	if !t.Enabled {
		return nil
	}
	var errs []string
	if t.Endpoint == "" {
		errs = append(errs, "telemetry.endpoint must not be empty when telemetry is enabled")
	}
	if t.ServiceName == "" {
		errs = append(errs, "telemetry.service_name must not be empty when telemetry is enabled")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARMORY_ prefix
	v.SetEnvPrefix("ARMORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewViper returns a Viper instance carrying only the defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")

	v.SetDefault("content.weapons_dir", "content/weapons")
	v.SetDefault("content.scripts_dir", "content/scripts/weapons")

	v.SetDefault("loadout.primary1.weapon", "")
	v.SetDefault("loadout.primary1.reserve", 0)
	v.SetDefault("loadout.primary1.loaded", true)
	v.SetDefault("loadout.primary2.weapon", "")
	v.SetDefault("loadout.primary2.reserve", 0)
	v.SetDefault("loadout.primary2.loaded", true)
	v.SetDefault("loadout.secondary.weapon", "")
	v.SetDefault("loadout.secondary.reserve", 0)
	v.SetDefault("loadout.secondary.loaded", true)

	v.SetDefault("driver.tick_interval", "16ms")
	v.SetDefault("driver.frontend", "tui")
	v.SetDefault("driver.replay", "")

	v.SetDefault("scripting.instruction_limit", 0)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4318")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", "armory")
}
