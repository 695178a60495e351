package types

import (
	"errors"
	"runtime"
)

// BuildConfig holds the tunable parameters for one corpus build.
type BuildConfig struct {
	BatchSize    int `json:"batch_size" yaml:"batch_size"`       // Documents per commit batch.
	Workers      int `json:"workers" yaml:"workers"`             // Parallel extraction workers.
	MaxDepth     int `json:"max_depth" yaml:"max_depth"`         // BFS depth cap for chain expansion.
	MaxNodes     int `json:"max_nodes" yaml:"max_nodes"`         // Node-count cap for chain expansion.
	ComplexDepth int `json:"complex_depth" yaml:"complex_depth"` // Depth at which a chain is materialized.
	ComplexSize  int `json:"complex_size" yaml:"complex_size"`   // Size at which a chain is materialized.
}

// Build configuration validation errors.
var (
	ErrBatchSizeInvalid    = errors.New("batch size must be positive")
	ErrWorkersInvalid      = errors.New("worker count must be positive")
	ErrMaxDepthInvalid     = errors.New("max depth must be positive")
	ErrMaxNodesInvalid     = errors.New("max nodes must be positive")
	ErrComplexDepthInvalid = errors.New("complex depth must be positive and not exceed max depth")
	ErrComplexSizeInvalid  = errors.New("complex size must be positive and not exceed max nodes")
)

// DefaultBuildConfig returns the standard build parameters. The chain caps
// hold even on fully cyclic corpora; the complexity thresholds decide which
// closures are worth materializing.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		BatchSize:    2000,
		Workers:      runtime.NumCPU(),
		MaxDepth:     5,
		MaxNodes:     50,
		ComplexDepth: 3,
		ComplexSize:  10,
	}
}

// Validate checks that the BuildConfig is well-formed. It returns a sentinel
// error from this package on failure.
func (c BuildConfig) Validate() error {
	if c.BatchSize <= 0 {
		return ErrBatchSizeInvalid
	}
	if c.Workers <= 0 {
		return ErrWorkersInvalid
	}
	if c.MaxDepth <= 0 {
		return ErrMaxDepthInvalid
	}
	if c.MaxNodes <= 0 {
		return ErrMaxNodesInvalid
	}
	if c.ComplexDepth <= 0 || c.ComplexDepth > c.MaxDepth {
		return ErrComplexDepthInvalid
	}
	if c.ComplexSize <= 0 || c.ComplexSize > c.MaxNodes {
		return ErrComplexSizeInvalid
	}
	return nil
}
