package types

// Chain is a bounded-depth closure of forward citations rooted at one
// document. A Chain record is persisted only for documents whose closure
// exceeds the corpus complexity threshold; shallow relationships are served
// from the forward/reverse indices directly.
type Chain struct {
	// ChainSections lists the reachable document ids in BFS discovery order,
	// root first. Each id appears exactly once even on cyclic subgraphs.
	ChainSections []string `json:"chain_sections"`

	// ChainDepth is the BFS depth in hops: the level of the deepest section
	// included in ChainSections. The root is at depth 0.
	ChainDepth int `json:"chain_depth"`

	// CompleteChain maps each section id to its full body paragraphs,
	// materialized so downstream consumers read the whole dependency chain
	// in one lookup. Dangling ids have no entry.
	CompleteChain map[string][]string `json:"complete_chain"`
}
