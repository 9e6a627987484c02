// Package config loads and saves the capitalflow TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/capitalflow/internal/plan"

	"github.com/BurntSushi/toml"
)

// Config holds all capitalflow configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	Clipboard  ClipboardConfig  `toml:"clipboard"`
	Logging    LoggingConfig    `toml:"logging"`
}

// DefaultsConfig holds the values the form opens with.
type DefaultsConfig struct {
	TargetNiche  string `toml:"target_niche"`
	Goal         string `toml:"goal"`
	Monetization string `toml:"monetization"`
	Budget       string `toml:"budget"`
	SkillFocus   string `toml:"skill_focus"`
	TimePerWeek  int    `toml:"time_per_week"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Mode       string `toml:"mode"` // auto, system, osc52
	ShowErrors bool   `toml:"show_errors"`
}

// LoggingConfig controls the developer log file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	d := plan.Default()
	return Config{
		Defaults: DefaultsConfig{
			TargetNiche:  d.TargetNiche,
			Goal:         d.Goal,
			Monetization: d.Monetization,
			Budget:       string(d.Budget),
			SkillFocus:   string(d.SkillFocus),
			TimePerWeek:  d.TimePerWeek,
		},
		Appearance: AppearanceConfig{
			Theme: "terminal-green",
		},
		Clipboard: ClipboardConfig{
			Mode:       "auto",
			ShowErrors: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Input converts the configured defaults into a plan record.
func (d DefaultsConfig) Input() (plan.Input, error) {
	budget, err := plan.ParseBudget(d.Budget)
	if err != nil {
		return plan.Input{}, fmt.Errorf("defaults.budget: %w", err)
	}
	skill, err := plan.ParseSkillFocus(d.SkillFocus)
	if err != nil {
		return plan.Input{}, fmt.Errorf("defaults.skill_focus: %w", err)
	}
	return plan.Input{
		TargetNiche:  d.TargetNiche,
		Goal:         d.Goal,
		Monetization: d.Monetization,
		Budget:       budget,
		SkillFocus:   skill,
		TimePerWeek:  d.TimePerWeek,
	}, nil
}

// SetInput stores in as the form defaults.
func (d *DefaultsConfig) SetInput(in plan.Input) {
	d.TargetNiche = in.TargetNiche
	d.Goal = in.Goal
	d.Monetization = in.Monetization
	d.Budget = string(in.Budget)
	d.SkillFocus = string(in.SkillFocus)
	d.TimePerWeek = in.TimePerWeek
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "capitalflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "capitalflow")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the XDG-compliant cache directory, home of the log file.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "capitalflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "capitalflow")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetClipboardMode returns the clipboard mode from env var or config, in that order.
func GetClipboardMode(cfg Config) string {
	if mode := os.Getenv("CAPITALFLOW_CLIPBOARD"); mode != "" {
		return mode
	}
	return cfg.Clipboard.Mode
}

// GetLogLevel returns the log level from env var or config, in that order.
func GetLogLevel(cfg Config) string {
	if level := os.Getenv("CAPITALFLOW_LOG_LEVEL"); level != "" {
		return level
	}
	return cfg.Logging.Level
}

// LogPath returns the configured log file, defaulting to the cache dir.
func LogPath(cfg Config) string {
	if cfg.Logging.File != "" {
		return cfg.Logging.File
	}
	return filepath.Join(CacheDir(), "capitalflow.log")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
