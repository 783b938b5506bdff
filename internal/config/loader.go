package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/zbiljic/vconfig-go"
)

var (
	// Loaded once per process; every command reads the same view.
	cachedConfig *Config
	configMutex  = &sync.Mutex{}
)

// Load returns the effective configuration, reading and migrating the
// nearest config file on first use. A missing file is not an error;
// defaults apply.
func Load() (*Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	config, err := loadCreateMigrate()
	if err != nil {
		return nil, err
	}

	cachedConfig = config
	return config, nil
}

// Save writes the configuration to filename, creating parent
// directories as needed, and refreshes the cache.
func Save(config *Config, filename string) error {
	if config == nil || filename == "" {
		return errNilConfig
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errCreateDir(dir, err)
	}

	if err := vconfig.SaveConfig(config, filename); err != nil {
		return errWriteFile(filename, err)
	}

	cachedConfig = config

	return nil
}

// FindFile returns the first existing config file in search order, or
// os.ErrNotExist.
func FindFile() (string, error) {
	for _, path := range GetSearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", os.ErrNotExist
}

// GetSearchPaths lists candidate config locations, nearest first: the
// working directory (hidden name preferred), ancestor directories up to
// but not including home, then the user locations.
func GetSearchPaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	paths := []string{
		filepath.Join(cwd, ".kommit.json"),
		filepath.Join(cwd, "kommit.json"),
	}

	homeDir := lo.Must(os.UserHomeDir())

	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			break
		}
		dir = parent
		paths = append(paths, filepath.Join(dir, "kommit.json"))
	}

	paths = append(paths,
		filepath.Join(homeDir, ".config", "kommit", "kommit.json"),
		filepath.Join(homeDir, ".kommit.json"),
	)

	return paths
}

// GetPath reports where configuration is currently read from.
func GetPath() (string, bool) {
	path, err := FindFile()
	return path, err == nil
}

// GetDefaultPath is where `config init` writes when no file exists yet.
func GetDefaultPath() string {
	homeDir := lo.Must(os.UserHomeDir())

	return filepath.Join(homeDir, ".config", "kommit", "kommit.json")
}

// ResetCache drops the cached configuration so the next Load re-reads
// the filesystem. Tests use this between HOME swaps.
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()

	cachedConfig = nil
}
