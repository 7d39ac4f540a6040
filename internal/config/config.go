package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkglist-dev/pkglist/internal/branding"
	"github.com/pkglist-dev/pkglist/internal/logging"
	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyCommand      = "command"
	KeyLogLevel     = "log_level"
	KeyProfilesFile = "profiles_file"
)

// Keys lists every recognized configuration key in display order.
var Keys = []string{KeyCommand, KeyLogLevel, KeyProfilesFile}

// Dir returns the settings directory: $PKGLIST_HOME when set, otherwise
// ~/.pkglist, falling back to ./.pkglist without a home directory.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	base, err := os.UserHomeDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pkglist/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// DefaultProfilesFile returns the profiles file used when profiles_file is unset.
func DefaultProfilesFile() string {
	return filepath.Join(Dir(), "profiles.yaml")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load points viper at the config file and PKGLIST_* environment and
// registers defaults. A missing file is not an error.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	defaults := map[string]string{
		KeyCommand:      branding.DefaultCommand(),
		KeyLogLevel:     "info",
		KeyProfilesFile: DefaultProfilesFile(),
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		logging.Default().Warn("ignoring unreadable config file", "path", FilePath(), "err", err)
	}
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	return slices.Contains(Keys, key)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Command returns the external listing command split into words. Quoting
// follows POSIX shell rules so paths with spaces can be configured.
func Command() ([]string, error) {
	raw := viper.GetString(KeyCommand)
	words, err := shell.Fields(raw, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("parsing %s setting %q: %w", KeyCommand, raw, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s setting is empty", KeyCommand)
	}
	return words, nil
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// ProfilesFile returns the path of the flag profiles file.
func ProfilesFile() string {
	return viper.GetString(KeyProfilesFile)
}

// Set stores value under key and rewrites the config file. log_level values
// are checked before anything is written.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return &UnknownKeyError{Key: key}
	}
	if key == KeyLogLevel {
		if _, err := logging.ParseLevel(value); err != nil {
			return err
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file %s: %w", FilePath(), err)
	}
	return nil
}

// UnknownKeyError is returned for a key outside Keys.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key %q (known keys: %s)", e.Key, strings.Join(Keys, ", "))
}
