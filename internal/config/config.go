// Package config provides configuration management for tomodoro.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tomodoro application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Theme         ThemeConfig        `mapstructure:"theme"`
	Welcome       WelcomeConfig      `mapstructure:"welcome"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	WorkMinutes  int      `mapstructure:"work_minutes"`
	BreakMinutes int      `mapstructure:"break_minutes"`
	TickInterval Duration `mapstructure:"tick_interval"`
}

// ThemeConfig holds display colors. Values are anything lipgloss
// accepts: hex strings or ANSI palette indexes.
type ThemeConfig struct {
	ColorWork   string `mapstructure:"color_work"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorBorder string `mapstructure:"color_border"`
	ColorTitle  string `mapstructure:"color_title"`
	ColorPrompt string `mapstructure:"color_prompt"`
}

// WelcomeConfig holds the startup animation settings.
type WelcomeConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	CharDelay Duration `mapstructure:"char_delay"`
	HoldDelay Duration `mapstructure:"hold_delay"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultThemeConfig returns the default colors: red work digits, green
// break digits, gray borders.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:   "#E06C75",
		ColorBreak:  "#98C379",
		ColorBorder: "#5C6370",
		ColorTitle:  "#FFFFFF",
		ColorPrompt: "#ABB2BF",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:  25,
			BreakMinutes: 5,
			TickInterval: Duration(500 * time.Millisecond),
		},
		Theme: DefaultThemeConfig(),
		Welcome: WelcomeConfig{
			Enabled:   true,
			CharDelay: Duration(250 * time.Millisecond),
			HoldDelay: Duration(time.Second),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.tomodoro",
		},
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := ResolveDataDir(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir

	return &cfg, nil
}

// ResolveDataDir expands the default "~/.tomodoro" data directory to
// an absolute path under the user's home. Go performs no tilde
// expansion, so the literal default must never reach the filesystem.
// Explicit paths pass through unchanged.
func ResolveDataDir(dir string) (string, error) {
	if dir == "~/.tomodoro" || dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, ".tomodoro"), nil
	}
	return dir, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("timer.work_minutes", cfg.Timer.WorkMinutes)
	viper.Set("timer.break_minutes", cfg.Timer.BreakMinutes)
	viper.Set("timer.tick_interval", cfg.Timer.TickInterval.String())
	viper.Set("theme.color_work", cfg.Theme.ColorWork)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_border", cfg.Theme.ColorBorder)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_prompt", cfg.Theme.ColorPrompt)
	viper.Set("welcome.enabled", cfg.Welcome.Enabled)
	viper.Set("welcome.char_delay", cfg.Welcome.CharDelay.String())
	viper.Set("welcome.hold_delay", cfg.Welcome.HoldDelay.String())
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomodoro", "config.toml"), nil
}

// GetDBPath returns the path to the interval history database.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomodoro.db")
}

// GetLogPath returns the path to the session log file. The fullscreen
// UI owns the terminal, so logs go to a file instead of stderr.
func GetLogPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomodoro.log")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("timer.work_minutes", 25)
	viper.SetDefault("timer.break_minutes", 5)
	viper.SetDefault("timer.tick_interval", "500ms")
	viper.SetDefault("welcome.enabled", true)
	viper.SetDefault("welcome.char_delay", "250ms")
	viper.SetDefault("welcome.hold_delay", "1s")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("storage.data_dir", "~/.tomodoro")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_work", defaults.ColorWork)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_border", defaults.ColorBorder)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_prompt", defaults.ColorPrompt)
}
