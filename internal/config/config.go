// Package config loads bundlefang settings from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sumatoshi-tech/bundlefang/pkg/depgraph"
	"github.com/Sumatoshi-tech/bundlefang/pkg/launcher"
)

// Validation errors.
var (
	errNonPositiveTimeout   = errors.New("depgraph.timeout must be positive")
	errNonPositiveCacheSize = errors.New("depgraph.cache_size must be positive")
	errEmptyPython          = errors.New("python.executable must not be empty")
)

// Config is the root configuration.
type Config struct {
	// SearchRoots are probed for local modules, in priority order. The
	// bundle command always prepends the base directory.
	SearchRoots []string `mapstructure:"search_roots"`

	DepGraph DepGraphConfig `mapstructure:"depgraph"`
	Python   PythonConfig   `mapstructure:"python"`
}

// DepGraphConfig bounds dependency-graph construction.
type DepGraphConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheSize int           `mapstructure:"cache_size"`
}

// PythonConfig selects the interpreter for generated launchers.
type PythonConfig struct {
	Executable string `mapstructure:"executable"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SearchRoots: []string{},
		DepGraph: DepGraphConfig{
			Timeout:   depgraph.PlatformTimeout(),
			CacheSize: depgraph.DefaultCacheSize,
		},
		Python: PythonConfig{
			Executable: launcher.DefaultPython,
		},
	}
}

// Validate checks invariants after unmarshaling.
func (c *Config) Validate() error {
	if c.DepGraph.Timeout <= 0 {
		return fmt.Errorf("%w: %s", errNonPositiveTimeout, c.DepGraph.Timeout)
	}

	if c.DepGraph.CacheSize <= 0 {
		return fmt.Errorf("%w: %d", errNonPositiveCacheSize, c.DepGraph.CacheSize)
	}

	if c.Python.Executable == "" {
		return errEmptyPython
	}

	return nil
}
