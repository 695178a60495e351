// Shared helpers for lexgraph CLI commands.
package main

import (
	"fmt"

	"github.com/IntXgers/lexgraph/internal/sqlite"
)

// openStore resolves the data directory and opens the store for corpusID.
// The caller must close the returned store.
func openStore(corpusID string) (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := sqlite.Open(dataDir, corpusID)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
