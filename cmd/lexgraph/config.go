// Config loading for the lexgraph CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/IntXgers/lexgraph/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir      = "data_dir"
	cfgKeyBatchSize    = "build.batch_size"
	cfgKeyWorkers      = "build.workers"
	cfgKeyMaxDepth     = "build.max_depth"
	cfgKeyMaxNodes     = "build.max_nodes"
	cfgKeyComplexDepth = "build.complex_depth"
	cfgKeyComplexSize  = "build.complex_size"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# lexgraph CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Corpus build parameters (defaults shown; uncomment to override)
# build:
#   batch_size: 2000
#   workers: 0        # 0 means number of CPUs
#   max_depth: 5
#   max_nodes: 50
#   complex_depth: 3
#   complex_size: 10
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	def := types.DefaultBuildConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBatchSize, def.BatchSize)
	v.SetDefault(cfgKeyWorkers, def.Workers)
	v.SetDefault(cfgKeyMaxDepth, def.MaxDepth)
	v.SetDefault(cfgKeyMaxNodes, def.MaxNodes)
	v.SetDefault(cfgKeyComplexDepth, def.ComplexDepth)
	v.SetDefault(cfgKeyComplexSize, def.ComplexSize)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// buildConfigFrom assembles the build parameters from the loaded config,
// applying the zero-workers convention.
func buildConfigFrom(v *viper.Viper) types.BuildConfig {
	cfg := types.BuildConfig{
		BatchSize:    v.GetInt(cfgKeyBatchSize),
		Workers:      v.GetInt(cfgKeyWorkers),
		MaxDepth:     v.GetInt(cfgKeyMaxDepth),
		MaxNodes:     v.GetInt(cfgKeyMaxNodes),
		ComplexDepth: v.GetInt(cfgKeyComplexDepth),
		ComplexSize:  v.GetInt(cfgKeyComplexSize),
	}
	if cfg.Workers == 0 {
		cfg.Workers = types.DefaultBuildConfig().Workers
	}
	return cfg
}

// ensureConfigDir creates the configuration directory if missing.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes the default config.yaml on first run.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
