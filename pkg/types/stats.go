package types

// CorpusStats is the singleton metadata record for one corpus, written once
// at the end of a complete build under the MetadataKey key. Its presence is
// how readers distinguish a complete build from an in-progress or aborted
// one.
type CorpusStats struct {
	CorpusID              string `json:"corpus_id"`
	TotalDocuments        int    `json:"total_documents"`
	DocumentsWithOutbound int    `json:"documents_with_outbound"`
	DocumentsWithInbound  int    `json:"documents_with_inbound"`
	ComplexChainCount     int    `json:"complex_chain_count"`

	// Extraction-quality counters. Builds never fail on unparseable
	// citations; operators audit quality here instead.
	UnknownCitationCount int `json:"unknown_citation_count"`
	SkippedInputLines    int `json:"skipped_input_lines"`

	BuiltAt        string `json:"built_at"` // RFC 3339, from the builder clock.
	BuilderVersion string `json:"builder_version"`
	BuildID        string `json:"build_id"` // UUID v7 identifying the build run.
}
