// Package config loads application configuration: where the database lives
// and how chatty the process should be. Values come from an optional YAML
// file and TOMATOTASK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sadopc/tomatotask/internal/store"
)

type Config struct {
	DBPath   string
	LogLevel string
}

// Load reads cfgFile if given, otherwise looks for
// ~/.config/tomatotask/config.yaml. A missing file is fine; the defaults
// stand.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	defaultDB, err := store.DefaultDBPath()
	if err != nil {
		return Config{}, fmt.Errorf("resolve default db path: %w", err)
	}
	v.SetDefault("db_path", defaultDB)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tomatotask"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("TOMATOTASK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		DBPath:   v.GetString("db_path"),
		LogLevel: v.GetString("log_level"),
	}, nil
}
