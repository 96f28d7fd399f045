package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML configuration file. Flags given on the
// command line override values loaded from the file.
type fileConfig struct {
	Format          string `yaml:"format"`
	MaxErrors       int    `yaml:"maxErrors"`
	CheckReferences bool   `yaml:"checkReferences"`
	Workers         int    `yaml:"workers"`
	Verbose         bool   `yaml:"verbose"`
	LogLevel        string `yaml:"logLevel"`
}

// loadConfig merges the optional YAML file with the command line flags.
func loadConfig(opts *cliOptions) (*fileConfig, error) {
	cfg := &fileConfig{
		Format: "text",
	}

	if opts.configFile != "" {
		data, err := os.ReadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", opts.configFile, err)
		}
	}

	if opts.format != "text" || opts.configFile == "" {
		cfg.Format = opts.format
	}
	if opts.maxErrors != 0 {
		cfg.MaxErrors = opts.maxErrors
	}
	if opts.checkReferences {
		cfg.CheckReferences = true
	}
	if opts.workers != 0 {
		cfg.Workers = opts.workers
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}
