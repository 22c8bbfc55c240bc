// Package config manages configuration for the arnlink CLI.
// It uses Viper for unified configuration management from the config file
// and environment variables. Configuration is entirely optional: the CLI
// works with built-in defaults when no file exists.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/arnlink/arnlink/internal/constants"
)

// Output format values accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the CLI preferences loaded from ~/.arnlink/config.yaml and
// ARNLINK_* environment variables. Environment variables take precedence.
type Config struct {
	// Output is the default output format for subcommands that support more
	// than plain text.
	Output string `mapstructure:"output" yaml:"output" validate:"omitempty,oneof=text json yaml"`
	// LogLevel is the slog level name (DEBUG, INFO, WARN, ERROR).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogJSON switches diagnostic logging to JSON lines.
	LogJSON bool `mapstructure:"log_json" yaml:"log_json"`
}

var validate = validator.New()

// Load loads the configuration using Viper. A missing config file is not an
// error; defaults and environment variables still apply.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadConfigFile(v); err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("error getting current user: %w", err)
	}
	return filepath.Join(constants.ConfigDirPath(currentUser.HomeDir), constants.ConfigFileName), nil
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_json", false)
}

func loadConfigFile(v *viper.Viper) error {
	currentUser, err := user.Current()
	if err != nil {
		return fmt.Errorf("error getting current user: %w", err)
	}

	configFile := filepath.Join(constants.ConfigDirPath(currentUser.HomeDir), constants.ConfigFileName)
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		// Configuration is optional; defaults and env vars still apply.
		return nil
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	return v.ReadInConfig()
}

func bindEnvVars(v *viper.Viper) {
	envVars := []string{
		"OUTPUT",
		"LOG_LEVEL",
		"LOG_JSON",
	}

	for _, envVar := range envVars {
		configKey := strings.ToLower(envVar)
		_ = v.BindEnv(configKey, constants.EnvPrefix+"_"+envVar)
	}
}
