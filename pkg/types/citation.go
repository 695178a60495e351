package types

// RelationshipKind labels what a citation does, not merely that it exists.
type RelationshipKind string

// Recognized relationship kinds. Unknown is the graceful-degradation kind:
// a match whose target could not be normalized keeps its raw text as target
// and is labeled Unknown rather than dropped.
const (
	KindDefines        RelationshipKind = "defines"
	KindCrossReference RelationshipKind = "cross_reference"
	KindCites          RelationshipKind = "cites"
	KindAmends         RelationshipKind = "amends"
	KindSupersedes     RelationshipKind = "supersedes"
	KindUnknown        RelationshipKind = "unknown"
)

// validKinds is the set of recognized relationship kinds.
var validKinds = map[RelationshipKind]bool{
	KindDefines:        true,
	KindCrossReference: true,
	KindCites:          true,
	KindAmends:         true,
	KindSupersedes:     true,
	KindUnknown:        true,
}

// Valid reports whether k is a recognized relationship kind.
func (k RelationshipKind) Valid() bool {
	return validKinds[k]
}

// CitationEdge is one directed citation occurrence source → target. Multiple
// edges between the same pair at different offsets are preserved; each
// carries its own context snippet.
type CitationEdge struct {
	TargetID       string           `json:"target_id"`         // Canonical target id, or raw text when Kind is unknown.
	Kind           RelationshipKind `json:"relationship_kind"` // What the citation does.
	ContextSnippet string           `json:"context_snippet"`   // Bounded text window around the citing text.
	ByteOffset     int              `json:"byte_offset"`       // Match position in the source body text.
}

// ForwardIndexEntry aggregates all outbound citations of one source document.
// Recomputed wholesale on every build.
type ForwardIndexEntry struct {
	DirectReferences  []string       `json:"direct_references"`  // Deduplicated targets, first-seen order.
	ReferenceCount    int            `json:"reference_count"`    // len(ReferencesDetails).
	ReferencesDetails []CitationEdge `json:"references_details"` // Every edge, ascending offset.
}

// ReverseIndexEntry lists every document citing one target. CitedBy is
// sorted lexicographically so rebuilds are reproducible regardless of
// document processing order.
type ReverseIndexEntry struct {
	CitedBy      []string `json:"cited_by"`
	CitedByCount int      `json:"cited_by_count"`
}
