// Package sqlite implements the persistent encoding for the citation
// graph: five key-value stores per corpus in one SQLite database file,
// plus the checkpoint table used for resumable builds.
//
// Every store is a two-column table, key TEXT PRIMARY KEY and value TEXT
// holding canonical JSON. Absence of a key is a signal to readers (no
// outbound citations, no inbound citations, not part of a complex chain)
// and must never be replaced by empty-value rows.
package sqlite

import (
	"fmt"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Schema DDL. "primary" is an SQL keyword, so the primary store lives in
// the primary_docs table; store names stay the public vocabulary.
const (
	createPrimary = `CREATE TABLE IF NOT EXISTS primary_docs (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createCitations = `CREATE TABLE IF NOT EXISTS citations (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createReverseCitations = `CREATE TABLE IF NOT EXISTS reverse_citations (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createChains = `CREATE TABLE IF NOT EXISTS chains (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createMetadata = `CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createCheckpoint = `CREATE TABLE IF NOT EXISTS checkpoint (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    value TEXT NOT NULL
);`
)

// schemaDDL lists every statement executed on open.
var schemaDDL = []string{
	createPrimary,
	createCitations,
	createReverseCitations,
	createChains,
	createMetadata,
	createCheckpoint,
}

// storeTables maps public store names to their SQLite tables.
var storeTables = map[string]string{
	types.StorePrimary:          "primary_docs",
	types.StoreCitations:        "citations",
	types.StoreReverseCitations: "reverse_citations",
	types.StoreChains:           "chains",
	types.StoreMetadata:         "metadata",
}

// tableFor resolves a public store name to its table name.
func tableFor(store string) (string, error) {
	table, ok := storeTables[store]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrStoreUnknown, store)
	}
	return table, nil
}
