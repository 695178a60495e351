package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntXgers/lexgraph/pkg/types"
)

func edge(target string, offset int) types.CitationEdge {
	return types.CitationEdge{
		TargetID:   target,
		Kind:       types.KindCrossReference,
		ByteOffset: offset,
	}
}

func TestAddDocumentNoEdges(t *testing.T) {
	a := NewAssembler()
	assert.Nil(t, a.AddDocument("2913.02", nil))
	assert.Empty(t, a.ForwardRefs())
	assert.Empty(t, a.ReverseEntries())
}

func TestAddDocumentDeduplicatesDirectReferences(t *testing.T) {
	a := NewAssembler()
	entry := a.AddDocument("2913.02", []types.CitationEdge{
		edge("2913.01", 10),
		edge("2913.71", 40),
		edge("2913.01", 90),
	})

	require.NotNil(t, entry)
	assert.Equal(t, []string{"2913.01", "2913.71"}, entry.DirectReferences)
	assert.Equal(t, 3, entry.ReferenceCount, "per-offset edges are preserved, not collapsed")
	assert.Len(t, entry.ReferencesDetails, 3)
}

func TestReverseEntriesSortedAndConsistent(t *testing.T) {
	a := NewAssembler()
	a.AddDocument("9.01", []types.CitationEdge{edge("1.01", 0)})
	a.AddDocument("5.01", []types.CitationEdge{edge("1.01", 0), edge("9.01", 5)})
	a.AddDocument("1.01", []types.CitationEdge{edge("9.01", 0)})

	rev := a.ReverseEntries()
	require.Contains(t, rev, "1.01")
	assert.Equal(t, []string{"5.01", "9.01"}, rev["1.01"].CitedBy,
		"cited_by is sorted lexicographically, not insertion order")
	assert.Equal(t, 2, rev["1.01"].CitedByCount)
	assert.Equal(t, []string{"1.01", "5.01"}, rev["9.01"].CitedBy)

	// Central consistency invariant: cited_by of T equals the set of
	// sources whose direct references contain T.
	for target, entry := range rev {
		var want []string
		for _, src := range a.SourceIDs() {
			for _, ref := range a.ForwardRefs()[src] {
				if ref == target {
					want = append(want, src)
				}
			}
		}
		assert.ElementsMatch(t, want, entry.CitedBy, target)
	}
}

func TestSelfLoopRetained(t *testing.T) {
	a := NewAssembler()
	entry := a.AddDocument("1.01", []types.CitationEdge{edge("1.01", 0)})

	require.NotNil(t, entry)
	assert.Equal(t, []string{"1.01"}, entry.DirectReferences)
	rev := a.ReverseEntries()
	assert.Equal(t, []string{"1.01"}, rev["1.01"].CitedBy)
}

func TestLoadForwardMatchesAddDocument(t *testing.T) {
	edges := []types.CitationEdge{edge("1.01", 0), edge("2.02", 9)}

	fresh := NewAssembler()
	entry := fresh.AddDocument("9.09", edges)

	resumed := NewAssembler()
	resumed.LoadForward("9.09", *entry)

	assert.Equal(t, fresh.ForwardRefs(), resumed.ForwardRefs())
	assert.Equal(t, fresh.ReverseEntries(), resumed.ReverseEntries())
}

func TestSourceIDsSorted(t *testing.T) {
	a := NewAssembler()
	a.AddDocument("9.01", []types.CitationEdge{edge("1.01", 0)})
	a.AddDocument("1.01", []types.CitationEdge{edge("9.01", 0)})
	a.AddDocument("5.01", []types.CitationEdge{edge("1.01", 0)})

	assert.Equal(t, []string{"1.01", "5.01", "9.01"}, a.SourceIDs())
}
