package config

import (
	"fmt"
	"sync"
)

// The process-wide configuration. Initialize installs it once at startup;
// ReloadConfig swaps it when the watcher sees a file change.
var (
	globalConfig *Config
	configMutex  sync.RWMutex
	initOnce     sync.Once
)

// Initialize loads the configuration file, applies CALLISTO_* environment
// overrides, and installs the result process-wide. Only the first call
// loads; later calls are no-ops and return nil.
func Initialize(path string) error {
	var initErr error

	initOnce.Do(func() {
		cfg, err := LoadConfigWithEnvOverrides(path)
		if err != nil {
			initErr = err
			return
		}

		configMutex.Lock()
		globalConfig = cfg
		configMutex.Unlock()
	})

	return initErr
}

// GetConfig returns the installed configuration, or nil before Initialize
// has succeeded. Safe for concurrent use.
func GetConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// ReloadConfig reloads the configuration file and swaps the installed
// instance. The watcher calls this after a debounced file change; when
// loading or validation fails the previous configuration stays active.
func ReloadConfig(path string) error {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return fmt.Errorf("failed to reload configuration: %w", err)
	}

	configMutex.Lock()
	globalConfig = cfg
	configMutex.Unlock()

	return nil
}
