// Package config resolves VAROS runtime settings from flags, the environment
// and an optional .env file. Precedence: flag > environment > .env > default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. VAROS_LOG_LEVEL.
const EnvPrefix = "VAROS"

// Keys shared by flags, environment variables and viper.
const (
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyTheme    = "theme"
	KeyPlain    = "plain"
)

// Config holds the ambient settings of one run. None of them change shell
// semantics; they only affect logging and styling.
type Config struct {
	LogLevel string
	LogFile  string
	Theme    string
	Plain    bool
}

// RegisterFlags adds the persistent flags understood by VAROS to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(KeyLogFile, "", "Write logs to file instead of stderr")
	flags.String(KeyTheme, "", "Color theme for prompt and messages (default|plain)")
	flags.Bool(KeyPlain, false, "Disable all styling")
}

// BindFlags binds every registered flag in flags to v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyLogFile, KeyTheme, KeyPlain} {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("flag %s is not registered", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding %s flag: %w", key, err)
		}
	}
	return nil
}

// DefaultDotEnvPath returns ~/.config/varos/.env, or "" if the user config
// directory cannot be determined.
func DefaultDotEnvPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "varos", ".env")
}

// LoadDotEnv loads each existing file into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the .env files, then resolves a Config through v.
func Load(v *viper.Viper, dotEnvPaths ...string) (*Config, error) {
	if err := LoadDotEnv(dotEnvPaths...); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyPlain, false)

	cfg := &Config{
		LogLevel: strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:  v.GetString(KeyLogFile),
		Theme:    v.GetString(KeyTheme),
		Plain:    v.GetBool(KeyPlain),
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return cfg, nil
}
