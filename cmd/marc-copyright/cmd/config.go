package cmd

import (
	"github.com/pulibrary/marc-copyright/internal/config"
	"github.com/pulibrary/marc-copyright/internal/diskcache"
)

// loadConfig returns the configured Config, or the module defaults
// when no --config flag was given.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// resolveCacheDir returns the --cache-dir flag value or the XDG
// cache-home default.
func resolveCacheDir() string {
	if cacheDir != "" {
		return cacheDir
	}
	return diskcache.DefaultDir()
}
