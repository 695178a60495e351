package corpus

import (
	"regexp"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Revised Code section numbers look like "2913.02" or "2913.021": a chapter
// number, a dot, and a two- or three-digit section suffix.
var revisedCodeID = regexp.MustCompile(`^\d{1,4}\.\d{2,3}$`)

// revisedCodeAdapter extracts citations from Ohio Revised Code statute text.
//
// Pattern priority, first wins on overlap:
//  1. "as defined in section X" / "as used in section X" — the cited
//     section supplies a definition the citing section depends on.
//  2. "amended by section X" and inflections.
//  3. bare "section X" / "sections X" — generic cross-reference, the
//     catch-all that the two specific forms shadow.
var revisedCodeAdapter = Adapter{
	ID:          RevisedCode,
	DisplayName: "Ohio Revised Code",
	IDShape:     revisedCodeID,
	Patterns: []Pattern{
		{
			Expr:      regexp.MustCompile(`(?i)as (?:defined|used) in sections? (\d{1,4}\.\d{2,3})`),
			Kind:      types.KindDefines,
			Normalize: shapeNormalizer(revisedCodeID),
		},
		{
			Expr:      regexp.MustCompile(`(?i)amend(?:s|ed|ing)? sections? (\d{1,4}\.\d{2,3})`),
			Kind:      types.KindAmends,
			Normalize: shapeNormalizer(revisedCodeID),
		},
		{
			Expr:      regexp.MustCompile(`(?i)sections? (\d{1,4}\.\d{2,3})(?: of the Revised Code)?`),
			Kind:      types.KindCrossReference,
			Normalize: shapeNormalizer(revisedCodeID),
		},
	},
}
