// Package main provides the lexgraph CLI: the batch builder and point-lookup
// tool for the legal citation graph stores.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
	os.Exit(exitSuccess)
}

// exitCodeFor distinguishes user errors (bad corpus, bad store, bad flags)
// from system errors (I/O, database).
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, types.ErrUnknownCorpus),
		errors.Is(err, types.ErrStoreUnknown),
		errors.Is(err, types.ErrBatchSizeInvalid),
		errors.Is(err, types.ErrWorkersInvalid),
		errors.Is(err, types.ErrMaxDepthInvalid),
		errors.Is(err, types.ErrMaxNodesInvalid),
		errors.Is(err, types.ErrComplexDepthInvalid),
		errors.Is(err, types.ErrComplexSizeInvalid):
		return exitUserError
	default:
		return exitSysError
	}
}
