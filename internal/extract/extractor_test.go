package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntXgers/lexgraph/internal/corpus"
	"github.com/IntXgers/lexgraph/pkg/types"
)

func revisedCode(t *testing.T) corpus.Adapter {
	t.Helper()
	a, err := corpus.Lookup(corpus.RevisedCode)
	require.NoError(t, err)
	return a
}

func TestExtractDefines(t *testing.T) {
	body := "No person shall knowingly obtain property as defined in section 2913.01 of the Revised Code."
	res := Extract(body, revisedCode(t))

	require.Len(t, res.Citations, 1)
	c := res.Citations[0]
	assert.Equal(t, "2913.01", c.Target)
	assert.Equal(t, types.KindDefines, c.Kind)
	assert.Equal(t, strings.Index(body, "as defined"), c.ByteOffset)
	assert.Zero(t, res.NormalizeFailures)
}

func TestExtractPriorityShadowsCatchAll(t *testing.T) {
	// The bare "section N" pattern also matches inside the defines phrase;
	// pattern priority must keep only the defines edge.
	body := "as defined in section 2913.01, and section 2913.71 applies"
	res := Extract(body, revisedCode(t))

	require.Len(t, res.Citations, 2)
	assert.Equal(t, types.KindDefines, res.Citations[0].Kind)
	assert.Equal(t, "2913.01", res.Citations[0].Target)
	assert.Equal(t, types.KindCrossReference, res.Citations[1].Kind)
	assert.Equal(t, "2913.71", res.Citations[1].Target)
}

func TestExtractAscendingOffsets(t *testing.T) {
	body := "section 1.01 then amended section 9.02 then as used in section 5.03"
	res := Extract(body, revisedCode(t))

	require.Len(t, res.Citations, 3)
	for i := 1; i < len(res.Citations); i++ {
		assert.Greater(t, res.Citations[i].ByteOffset, res.Citations[i-1].ByteOffset)
	}
	assert.Equal(t, "1.01", res.Citations[0].Target)
	assert.Equal(t, "9.02", res.Citations[1].Target)
	assert.Equal(t, types.KindAmends, res.Citations[1].Kind)
	assert.Equal(t, "5.03", res.Citations[2].Target)
	assert.Equal(t, types.KindDefines, res.Citations[2].Kind)
}

func TestExtractDemotesToUnknown(t *testing.T) {
	// "13.1" matches no valid section shape; the citation is retained with
	// the raw text as target rather than dropped.
	body := "as defined in section 13.19f something"
	a := revisedCode(t)
	res := Extract(body, a)

	require.Len(t, res.Citations, 1)
	assert.Equal(t, types.KindDefines, res.Citations[0].Kind)

	// Force a normalization failure through an adapter whose normalizer
	// always rejects.
	reject := a
	reject.Patterns = []corpus.Pattern{{
		Expr: a.Patterns[0].Expr,
		Kind: a.Patterns[0].Kind,
		Normalize: func([]string) (string, bool) {
			return "", false
		},
	}}
	res = Extract(body, reject)
	require.Len(t, res.Citations, 1)
	assert.Equal(t, types.KindUnknown, res.Citations[0].Kind)
	assert.Equal(t, res.Citations[0].TargetRaw, res.Citations[0].Target)
	assert.Equal(t, 1, res.NormalizeFailures)
}

func TestExtractZeroPatternAdapter(t *testing.T) {
	a := revisedCode(t)
	a.Patterns = nil
	res := Extract("section 2913.01 everywhere", a)
	assert.Empty(t, res.Citations)
}

func TestExtractMultipleOffsetsPreserved(t *testing.T) {
	body := "section 2913.01 applies; later section 2913.01 applies again"
	res := Extract(body, revisedCode(t))

	require.Len(t, res.Citations, 2)
	assert.Equal(t, res.Citations[0].Target, res.Citations[1].Target)
	assert.NotEqual(t, res.Citations[0].ByteOffset, res.Citations[1].ByteOffset)
}

func TestSnippetWordBoundaries(t *testing.T) {
	long := strings.Repeat("antecedent ", 20) + "as defined in section 2913.01 " + strings.Repeat("subsequent ", 20)
	res := Extract(long, revisedCode(t))
	require.Len(t, res.Citations, 1)

	snip := res.Citations[0].Snippet
	assert.LessOrEqual(t, len(snip), snippetWidth)
	assert.Contains(t, snip, "section 2913.01")
	for _, word := range strings.Fields(snip) {
		assert.Contains(t, []string{"antecedent", "as", "defined", "in", "section", "2913.01", "subsequent"}, word,
			"snippet must not contain truncated words")
	}
}

func TestSnippetAtBodyEdges(t *testing.T) {
	body := "as defined in section 2913.01"
	res := Extract(body, revisedCode(t))
	require.Len(t, res.Citations, 1)
	assert.Equal(t, body, res.Citations[0].Snippet)
}

func TestResultEdges(t *testing.T) {
	body := "as defined in section 2913.01"
	res := Extract(body, revisedCode(t))
	edges := res.Edges()

	require.Len(t, edges, 1)
	assert.Equal(t, "2913.01", edges[0].TargetID)
	assert.Equal(t, types.KindDefines, edges[0].Kind)
	assert.Equal(t, res.Citations[0].ByteOffset, edges[0].ByteOffset)
	assert.Equal(t, res.Citations[0].Snippet, edges[0].ContextSnippet)
}
