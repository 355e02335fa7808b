package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/infra/confloader"
)

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sortbench", "config.yaml")
}

// Load builds the configuration from defaults, a YAML file, SORTBENCH_*
// environment variables and flags, in increasing priority.
//
// An empty path uses DefaultConfigPath if that file exists. An explicit
// path must exist. flags holds only the flags the user set.
func Load(path string, flags map[string]any) (*Config, error) {
	if path == "" {
		if p := DefaultConfigPath(); fileExists(p) {
			path = p
		}
	}

	l := confloader.NewLoader(
		confloader.WithDefaults(defaultsMap()),
		confloader.WithConfigFile(path),
		confloader.WithFlags(flags),
	)

	cfg := &Config{}
	if err := l.Load(cfg); err != nil {
		if errors.Is(err, confloader.ErrUnmarshal) {
			return nil, domain.ErrMalformedNumber.WithDetails(err.Error()).WithCause(err)
		}
		return nil, err
	}
	cfg.sizeSet = l.Exists("bench.size")
	cfg.iterationsSet = l.Exists("bench.iterations")

	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
