// Package types defines the document, citation-graph, and enrichment value
// types shared by the lexgraph build pipeline, plus the store-name constants
// and standard errors used across packages.
//
// All persisted types carry stable JSON field names; these names are part of
// the on-disk contract read by downstream consumers and must not change
// between corpora or releases.
package types
