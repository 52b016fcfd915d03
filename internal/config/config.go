// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDBPath is where the local store lives unless configured otherwise.
const DefaultDBPath = "$HOME/.local/share/financas/financas.db"

// SetDefaults registers the configuration defaults on the given viper
// instance. Keys mirror the config file layout:
//
//	database:
//	  path: ~/.local/share/financas/financas.db
//	logging:
//	  level: info
//	  format: console
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDBPath)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// DBPath resolves the configured database path with ~ and environment
// variables expanded.
func DBPath(v *viper.Viper) string {
	path := v.GetString("database.path")
	if path == "" {
		path = DefaultDBPath
	}
	return ExpandPath(path)
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
