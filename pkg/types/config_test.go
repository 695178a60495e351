package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuildConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultBuildConfig().Validate())
}

func TestBuildConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BuildConfig)
		want   error
	}{
		{
			name:   "zero batch size",
			mutate: func(c *BuildConfig) { c.BatchSize = 0 },
			want:   ErrBatchSizeInvalid,
		},
		{
			name:   "negative workers",
			mutate: func(c *BuildConfig) { c.Workers = -1 },
			want:   ErrWorkersInvalid,
		},
		{
			name:   "zero max depth",
			mutate: func(c *BuildConfig) { c.MaxDepth = 0 },
			want:   ErrMaxDepthInvalid,
		},
		{
			name:   "zero max nodes",
			mutate: func(c *BuildConfig) { c.MaxNodes = 0 },
			want:   ErrMaxNodesInvalid,
		},
		{
			name:   "complex depth above max depth",
			mutate: func(c *BuildConfig) { c.ComplexDepth = c.MaxDepth + 1 },
			want:   ErrComplexDepthInvalid,
		},
		{
			name:   "complex size above max nodes",
			mutate: func(c *BuildConfig) { c.ComplexSize = c.MaxNodes + 1 },
			want:   ErrComplexSizeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBuildConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestRelationshipKindValid(t *testing.T) {
	for _, k := range []RelationshipKind{
		KindDefines, KindCrossReference, KindCites,
		KindAmends, KindSupersedes, KindUnknown,
	} {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, RelationshipKind("refers").Valid())
	assert.False(t, RelationshipKind("").Valid())
}

func TestDocumentBodyText(t *testing.T) {
	doc := Document{Body: []string{"first paragraph.", "second paragraph."}}
	assert.Equal(t, "first paragraph.\nsecond paragraph.", doc.BodyText())
	assert.Equal(t, 4, doc.CountWords())

	empty := Document{}
	assert.Equal(t, "", empty.BodyText())
	assert.Equal(t, 0, empty.CountWords())
}
