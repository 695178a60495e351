package corpus

import (
	"regexp"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Administrative Code rule numbers look like "3701-17-01": agency, chapter,
// rule, hyphen-separated.
var adminCodeID = regexp.MustCompile(`^\d{3,4}-\d{1,2}-\d{2}$`)

// adminCodeAdapter extracts citations from Ohio Administrative Code rule
// text. Rules also cite Revised Code sections; those targets use the
// statute id format and are dangling within this corpus, which readers
// handle as a normal missing-key lookup.
var adminCodeAdapter = Adapter{
	ID:          AdminCode,
	DisplayName: "Ohio Administrative Code",
	IDShape:     adminCodeID,
	Patterns: []Pattern{
		{
			Expr:      regexp.MustCompile(`(?i)as (?:defined|used) in rules? (\d{3,4}-\d{1,2}-\d{2})`),
			Kind:      types.KindDefines,
			Normalize: shapeNormalizer(adminCodeID),
		},
		{
			Expr:      regexp.MustCompile(`(?i)amend(?:s|ed|ing)? rules? (\d{3,4}-\d{1,2}-\d{2})`),
			Kind:      types.KindAmends,
			Normalize: shapeNormalizer(adminCodeID),
		},
		{
			Expr:      regexp.MustCompile(`(?i)rules? (\d{3,4}-\d{1,2}-\d{2})(?: of the Administrative Code)?`),
			Kind:      types.KindCrossReference,
			Normalize: shapeNormalizer(adminCodeID),
		},
		{
			Expr:      regexp.MustCompile(`(?i)sections? (\d{1,4}\.\d{2,3}) of the Revised Code`),
			Kind:      types.KindCites,
			Normalize: shapeNormalizer(revisedCodeID),
		},
	},
}
