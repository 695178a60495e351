package types

import "errors"

// Standard store names. Every corpus persists the same five stores; content
// is determined by corpus identity, not store name. A missing key is a
// signal (no outbound citations, no inbound citations, not part of a
// complex chain), never an error.
const (
	StorePrimary          = "primary"
	StoreCitations        = "citations"
	StoreReverseCitations = "reverse_citations"
	StoreChains           = "chains"
	StoreMetadata         = "metadata"
)

// MetadataKey is the single key in the metadata store.
const MetadataKey = "corpus_info"

// StandardStoreNames lists all store names for enumeration and validation.
var StandardStoreNames = []string{
	StorePrimary,
	StoreCitations,
	StoreReverseCitations,
	StoreChains,
	StoreMetadata,
}

// Standard errors shared across packages.
var (
	ErrStoreUnknown    = errors.New("unknown store name")
	ErrStoreClosed     = errors.New("store is closed")
	ErrUnknownCorpus   = errors.New("unknown corpus")
	ErrInvalidDocument = errors.New("document id must not be empty")
)
