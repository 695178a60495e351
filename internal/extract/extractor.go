// Package extract scans document text against a corpus adapter's pattern
// table and produces raw citation occurrences in ascending offset order.
//
// Extraction is total: malformed citation text never aborts a build. A
// match whose target fails normalization is demoted to the unknown
// relationship kind with its raw text retained as the target, and counted
// so operators can audit extraction quality from the corpus stats.
package extract

import (
	"sort"

	"github.com/IntXgers/lexgraph/internal/corpus"
	"github.com/IntXgers/lexgraph/pkg/types"
)

// snippetWidth is the maximum context window length in bytes, centered on
// the match and trimmed at word boundaries.
const snippetWidth = 100

// RawCitation is one pattern match against a document body.
type RawCitation struct {
	TargetRaw  string                 // The matched substring before normalization.
	Target     string                 // Canonical id, or TargetRaw when Kind is unknown.
	Kind       types.RelationshipKind // Pattern kind, or unknown on normalization failure.
	ByteOffset int                    // Match start in the body text.
	Snippet    string                 // Context window around the match.
}

// Result holds everything extracted from one document.
type Result struct {
	Citations         []RawCitation
	NormalizeFailures int
}

// span is a claimed byte range in the body text.
type span struct{ start, end int }

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// Extract runs the adapter's patterns over body in priority order. A match
// overlapping a range already claimed by an earlier pattern is discarded,
// so "as defined in section 2913.01" yields one defines edge rather than a
// defines edge plus a shadow cross-reference from the bare "section"
// pattern. The surviving citations are returned in ascending offset order.
func Extract(body string, adapter corpus.Adapter) Result {
	var res Result
	var claimed []span

	for _, p := range adapter.Patterns {
		for _, idx := range p.Expr.FindAllStringSubmatchIndex(body, -1) {
			s := span{idx[0], idx[1]}
			if overlapsAny(claimed, s) {
				continue
			}
			claimed = append(claimed, s)

			match := submatches(body, idx)
			cit := RawCitation{
				TargetRaw:  match[0],
				Kind:       p.Kind,
				ByteOffset: s.start,
				Snippet:    snippet(body, s.start, s.end),
			}
			if target, ok := p.Normalize(match); ok {
				cit.Target = target
			} else {
				cit.Target = cit.TargetRaw
				cit.Kind = types.KindUnknown
				res.NormalizeFailures++
			}
			res.Citations = append(res.Citations, cit)
		}
	}

	sort.SliceStable(res.Citations, func(i, j int) bool {
		return res.Citations[i].ByteOffset < res.Citations[j].ByteOffset
	})
	return res
}

// Edges converts extracted citations into citation edges for the assembler.
func (r Result) Edges() []types.CitationEdge {
	edges := make([]types.CitationEdge, 0, len(r.Citations))
	for _, c := range r.Citations {
		edges = append(edges, types.CitationEdge{
			TargetID:       c.Target,
			Kind:           c.Kind,
			ContextSnippet: c.Snippet,
			ByteOffset:     c.ByteOffset,
		})
	}
	return edges
}

func overlapsAny(claimed []span, s span) bool {
	for _, c := range claimed {
		if c.overlaps(s) {
			return true
		}
	}
	return false
}

// submatches converts a FindAllStringSubmatchIndex entry into the string
// slice form normalizers expect. Absent optional groups become "".
func submatches(body string, idx []int) []string {
	out := make([]string, 0, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, body[idx[i]:idx[i+1]])
	}
	return out
}
