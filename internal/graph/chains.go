package graph

import "github.com/IntXgers/lexgraph/pkg/types"

// ChainDetector computes bounded-depth transitive citation chains. The
// depth and node caps are mandatory: a densely cross-referenced statute
// chapter explodes combinatorially without them, and citation graphs are
// not acyclic, so expansion carries an explicit visited set.
type ChainDetector struct {
	MaxDepth     int // Hard BFS depth cap.
	MaxNodes     int // Hard cap on chain_sections length.
	ComplexDepth int // Depth at or above which a chain is materialized.
	ComplexSize  int // Section count at or above which a chain is materialized.
}

// NewChainDetector builds a detector from the build configuration.
func NewChainDetector(cfg types.BuildConfig) ChainDetector {
	return ChainDetector{
		MaxDepth:     cfg.MaxDepth,
		MaxNodes:     cfg.MaxNodes,
		ComplexDepth: cfg.ComplexDepth,
		ComplexSize:  cfg.ComplexSize,
	}
}

// Detect expands the forward index from rootID breadth-first and reports
// whether the closure is complex enough to materialize. ChainSections is in
// BFS discovery order with the root first; each node appears exactly once
// even on cyclic subgraphs. ChainDepth is the BFS depth in hops of the
// deepest included node; the root is depth 0. CompleteChain is left for the
// caller to fill from the primary store.
func (d ChainDetector) Detect(rootID string, refs map[string][]string) (types.Chain, bool) {
	sections := []string{rootID}
	visited := map[string]struct{}{rootID: {}}
	frontier := []string{rootID}
	depth := 0

	for len(frontier) > 0 && depth < d.MaxDepth && len(sections) < d.MaxNodes {
		var next []string
		for _, id := range frontier {
			for _, target := range refs[id] {
				if _, ok := visited[target]; ok {
					continue
				}
				if len(sections) >= d.MaxNodes {
					break
				}
				visited[target] = struct{}{}
				sections = append(sections, target)
				next = append(next, target)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
		depth++
	}

	chain := types.Chain{
		ChainSections: sections,
		ChainDepth:    depth,
	}
	complex := depth >= d.ComplexDepth || len(sections) >= d.ComplexSize
	return chain, complex
}
