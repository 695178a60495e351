// Package graph assembles the forward and reverse citation indices for one
// corpus build and computes bounded-depth citation chains over them.
package graph

import (
	"sort"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Assembler owns the in-memory citation maps for the duration of one build.
// It is fed from a single goroutine; parallel extraction funnels into it so
// map construction stays deterministic.
//
// Forward index entries are returned to the caller for immediate flushing
// rather than retained; the assembler keeps only the deduplicated target
// lists and the inverted index, which stay small even on full corpora.
type Assembler struct {
	refs    map[string][]string            // source -> deduplicated targets, first-seen order
	reverse map[string]map[string]struct{} // target -> set of citing sources
}

// NewAssembler returns an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{
		refs:    make(map[string][]string),
		reverse: make(map[string]map[string]struct{}),
	}
}

// AddDocument records one document's extracted edges and returns its
// forward index entry, or nil when the document has no outbound citations.
// A nil return means no key is written to the citations store; absence is
// the signal. Self-loops are retained. Edge order and multiplicity are
// preserved in ReferencesDetails; DirectReferences is deduplicated in
// first-seen order.
func (a *Assembler) AddDocument(sourceID string, edges []types.CitationEdge) *types.ForwardIndexEntry {
	if len(edges) == 0 {
		return nil
	}

	var direct []string
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.TargetID]; dup {
			continue
		}
		seen[e.TargetID] = struct{}{}
		direct = append(direct, e.TargetID)

		set, ok := a.reverse[e.TargetID]
		if !ok {
			set = make(map[string]struct{})
			a.reverse[e.TargetID] = set
		}
		set[sourceID] = struct{}{}
	}
	a.refs[sourceID] = direct

	return &types.ForwardIndexEntry{
		DirectReferences:  direct,
		ReferenceCount:    len(edges),
		ReferencesDetails: edges,
	}
}

// LoadForward replays a previously persisted forward entry into the
// assembler's maps. Used on resume so reverse entries and chains cover
// documents committed before the interruption.
func (a *Assembler) LoadForward(sourceID string, entry types.ForwardIndexEntry) {
	a.refs[sourceID] = entry.DirectReferences
	for _, target := range entry.DirectReferences {
		set, ok := a.reverse[target]
		if !ok {
			set = make(map[string]struct{})
			a.reverse[target] = set
		}
		set[sourceID] = struct{}{}
	}
}

// ForwardRefs exposes the deduplicated target lists for chain detection.
// The returned map is owned by the assembler; callers must not mutate it.
func (a *Assembler) ForwardRefs() map[string][]string {
	return a.refs
}

// SourceIDs returns the ids of all documents with outbound citations, in
// lexicographic order.
func (a *Assembler) SourceIDs() []string {
	ids := make([]string, 0, len(a.refs))
	for id := range a.refs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ReverseEntries inverts the forward index. CitedBy lists are sorted
// lexicographically so persisted output is reproducible regardless of
// document processing order.
func (a *Assembler) ReverseEntries() map[string]*types.ReverseIndexEntry {
	out := make(map[string]*types.ReverseIndexEntry, len(a.reverse))
	for target, sources := range a.reverse {
		citedBy := make([]string, 0, len(sources))
		for s := range sources {
			citedBy = append(citedBy, s)
		}
		sort.Strings(citedBy)
		out[target] = &types.ReverseIndexEntry{
			CitedBy:      citedBy,
			CitedByCount: len(citedBy),
		}
	}
	return out
}
