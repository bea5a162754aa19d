package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	ConfigDirName  = ".aws-assume-role"
	ConfigFileName = "config.json"
)

// homeEnvVars are probed in order. The same binary runs under Unix shells,
// native Windows shells, and Windows POSIX-emulation shells, which populate
// different variables.
var homeEnvVars = []string{"HOME", "USERPROFILE"}

// EnvLookup is os.LookupEnv shaped so tests can substitute a fixed
// environment.
type EnvLookup func(key string) (string, bool)

// ResolveConfigPath returns the configuration file location. It never
// fails: when no home variable is set it falls back to the XDG home
// lookup, then to the current directory.
func ResolveConfigPath(lookup EnvLookup) string {
	return filepath.Join(resolveHome(lookup), ConfigDirName, ConfigFileName)
}

func resolveHome(lookup EnvLookup) string {
	for _, key := range homeEnvVars {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
	}
	if xdg.Home != "" {
		return xdg.Home
	}
	return "."
}
