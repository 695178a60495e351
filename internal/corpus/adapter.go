// Package corpus defines the per-corpus citation configuration: the ordered
// pattern table, the relationship vocabulary, and the id normalizers that
// turn raw matched text into a corpus's canonical id format.
//
// Adapters are pure data plus pure functions. Extraction over the same text
// with the same adapter is deterministic, which the rebuild idempotence
// guarantee depends on.
package corpus

import (
	"errors"
	"regexp"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Normalizer converts a regexp match (full match plus submatches, as
// returned by FindStringSubmatch) into the corpus's canonical id. It
// reports false when the raw text does not normalize to a valid id shape;
// the extractor then demotes the citation to the unknown kind instead of
// dropping it.
type Normalizer func(match []string) (string, bool)

// Pattern is one entry in an adapter's ordered pattern table. Earlier
// patterns take priority: a match overlapping the claimed range of an
// earlier pattern's match is discarded.
type Pattern struct {
	Expr      *regexp.Regexp
	Kind      types.RelationshipKind
	Normalize Normalizer
}

// Adapter is the full citation configuration for one corpus. An adapter
// with zero patterns is valid: the corpus has no detectable citations.
type Adapter struct {
	ID          string
	DisplayName string
	Patterns    []Pattern

	// IDShape recognizes syntactically valid canonical ids for this corpus.
	// Targets matching IDShape may still be dangling; existence in the
	// primary store is not required.
	IDShape *regexp.Regexp
}

// Adapter validation errors. A malformed adapter is fatal before any
// document is processed; it would otherwise silently under-extract an
// entire corpus.
var (
	ErrAdapterNoID         = errors.New("adapter has no corpus id")
	ErrAdapterNoIDShape    = errors.New("adapter has no id shape")
	ErrPatternNil          = errors.New("adapter pattern has no expression")
	ErrPatternKindInvalid  = errors.New("adapter pattern has an invalid relationship kind")
	ErrPatternNoNormalizer = errors.New("adapter pattern has no normalizer")
)

// Validate checks the adapter's structural invariants.
func (a Adapter) Validate() error {
	if a.ID == "" {
		return ErrAdapterNoID
	}
	if a.IDShape == nil {
		return ErrAdapterNoIDShape
	}
	for _, p := range a.Patterns {
		if p.Expr == nil {
			return ErrPatternNil
		}
		if !p.Kind.Valid() {
			return ErrPatternKindInvalid
		}
		if p.Normalize == nil {
			return ErrPatternNoNormalizer
		}
	}
	return nil
}

// ValidID reports whether id is a syntactically valid canonical id for this
// corpus.
func (a Adapter) ValidID(id string) bool {
	return a.IDShape.MatchString(id)
}

// shapeNormalizer returns a Normalizer that accepts the first submatch
// verbatim when it matches shape. Most corpora use canonical ids directly
// in their citation text.
func shapeNormalizer(shape *regexp.Regexp) Normalizer {
	return func(match []string) (string, bool) {
		if len(match) < 2 {
			return "", false
		}
		raw := match[1]
		if !shape.MatchString(raw) {
			return "", false
		}
		return raw, true
	}
}
