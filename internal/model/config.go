package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LogConfig holds logging preferences. An empty File sends log output to
// listo.log inside the data directory.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// Config is the top-level application configuration.
type Config struct {
	// DataDir is where the task database and log file live.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// SweepIntervalSec is how often (in seconds) the background sweep
	// evicts expired tasks.
	SweepIntervalSec int `mapstructure:"sweep_interval_sec" yaml:"sweep_interval_sec"`

	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/listo/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "listo", "config.yaml")
}

// defaultDataDir returns ~/.local/share/listo, falling back to the working
// directory when the home directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "listo-data")
	}
	return filepath.Join(home, ".local", "share", "listo")
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		DataDir:          defaultDataDir(),
		SweepIntervalSec: 60,
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("sweep_interval_sec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("display.theme", "default")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.SweepIntervalSec <= 0 {
		cfg.SweepIntervalSec = 60
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("data_dir", cfg.DataDir)
	v.Set("sweep_interval_sec", cfg.SweepIntervalSec)
	v.Set("log", cfg.Log)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
