package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Paths contains standard filesystem paths for pmc.
type Paths struct {
	// ConfigFile is the path to the config file (~/.pmc/config.yaml).
	ConfigFile string

	// HomeDir is the pmc home directory (~/.pmc).
	HomeDir string
}

// DefaultPaths returns the default paths for pmc.
func DefaultPaths() (*Paths, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	pmcHome := filepath.Join(homeDir, ".pmc")

	return &Paths{
		ConfigFile: filepath.Join(pmcHome, "config.yaml"),
		HomeDir:    pmcHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If PMC_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("PMC_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if len(path) > 1 && path[0] == '~' && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}
	return homedir.Expand(path)
}
