package corpus

import (
	"regexp"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Opinion ids use the WebCite form "2023-Ohio-1234".
var caseLawID = regexp.MustCompile(`^\d{4}-Ohio-\d{1,5}$`)

// caseLawAdapter extracts citations from Ohio court opinions. Opinions cite
// other opinions by WebCite and statutes by "R.C. 2913.02"; statute targets
// are dangling within this corpus.
var caseLawAdapter = Adapter{
	ID:          CaseLaw,
	DisplayName: "Ohio Case Law",
	IDShape:     caseLawID,
	Patterns: []Pattern{
		{
			Expr:      regexp.MustCompile(`(?i)overrul(?:es|ed|ing) .{0,40}?(\d{4}-Ohio-\d{1,5})`),
			Kind:      types.KindSupersedes,
			Normalize: shapeNormalizer(caseLawID),
		},
		{
			Expr:      regexp.MustCompile(`(\d{4}-Ohio-\d{1,5})`),
			Kind:      types.KindCites,
			Normalize: shapeNormalizer(caseLawID),
		},
		{
			Expr:      regexp.MustCompile(`R\.C\.\s+(\d{1,4}\.\d{2,3})`),
			Kind:      types.KindCites,
			Normalize: shapeNormalizer(revisedCodeID),
		},
	},
}
