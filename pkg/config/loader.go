package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Loader reads configuration files. LookupEnv resolves ${VAR} references
// before the .env file next to the config is consulted.
//
// Example usage:
//
//	loader := &config.Loader{LookupEnv: os.LookupEnv}
//	cfg, err := loader.Load("config/storekeeper.yaml")
//	if errors.Is(err, config.ErrConfigNotFound) {
//		log.Fatal("run from the project root or pass --config")
//	}
type Loader struct {
	LookupEnv LookupFunc
}

// NewLoader returns a Loader backed by the process environment.
func NewLoader() *Loader {
	return &Loader{LookupEnv: os.LookupEnv}
}

// Load reads, expands, defaults and validates the config file at path. The
// format is chosen from the file extension.
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	lookup, err := dotenvLookup(filepath.Dir(path), lookup)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return load(f, FormatFor(path), lookup)
}
