// Package config resolves the session directory and persists the user's
// default editor variant. Configuration lives in a small YAML file under the
// user's config home, managed through viper; the file's absence is normal
// and falls back to built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vimtools/vsm/internal/errors"
	"github.com/vimtools/vsm/internal/variant"
)

// SessionDirEnv is the environment variable that overrides the session
// directory location.
const SessionDirEnv = "VIM_SESSIONS"

// Config represents the complete vsm configuration.
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// EditorConfig controls which vim variant opens sessions.
type EditorConfig struct {
	// DefaultVariant is the variant used when no --variant flag is given.
	// Must be one of: vim, nvim, neovide, gvim.
	DefaultVariant string `mapstructure:"default_variant"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info").
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			DefaultVariant: string(variant.Default()),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("editor.default_variant", defaults.Editor.DefaultVariant)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// readErr remembers the outcome of reading the config file during Init so
// Load can distinguish "no file" (fine) from "broken file" (ConfigError).
var readErr error

// Init configures viper and reads the config file if one exists. A missing
// file is not an error; any other read failure is reported by Load.
// cfgFile, when non-empty, overrides the default search location.
func Init(cfgFile string) {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(ConfigDir())
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VSM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr = viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(readErr, &notFound) {
		readErr = nil
	}
}

// Load returns the current configuration. It fails with a ConfigError when
// the config file exists but is unreadable, unparsable, or names an unknown
// variant; a missing file yields the defaults.
func Load() (*Config, error) {
	if readErr != nil {
		return nil, errors.NewConfigError("failed to read config file", readErr).
			WithPath(viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("invalid configuration", err).
			WithPath(viper.ConfigFileUsed())
	}

	if _, err := variant.Parse(cfg.Editor.DefaultVariant); err != nil {
		return nil, errors.NewConfigError("invalid editor.default_variant", err).
			WithPath(viper.ConfigFileUsed())
	}

	return &cfg, nil
}

// DefaultVariant returns the configured default variant. The name was
// validated during Load, so parsing cannot fail here.
func (c *Config) DefaultVariant() variant.Variant {
	v, err := variant.Parse(c.Editor.DefaultVariant)
	if err != nil {
		return variant.Default()
	}
	return v
}

// ConfigDir returns the path to the user's vsm config directory.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vsm")
	}
	// Fall back to ~/.config/vsm
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vsm"
	}
	return filepath.Join(home, ".config", "vsm")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// SessionDir resolves the session directory: the VIM_SESSIONS environment
// variable when set and non-empty, otherwise a fixed default under the
// user's config home. No existence check happens here; callers decide how a
// missing directory is reported per action.
func SessionDir() string {
	if dir := os.Getenv(SessionDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "vim_sessions")
	}
	return filepath.Join(home, ".config", "vim_sessions")
}

// SaveDefaultVariant persists v as the default variant, creating the config
// directory as needed and overwriting any prior file content.
func SaveDefaultVariant(v variant.Variant) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return errors.NewConfigError("failed to create config directory", err).
			WithPath(ConfigDir())
	}

	viper.Set("editor.default_variant", string(v))

	if err := viper.WriteConfigAs(ConfigFile()); err != nil {
		return errors.NewConfigError("failed to write config file", err).
			WithPath(ConfigFile())
	}
	return nil
}
