package corpus

import (
	"regexp"
	"strings"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Constitution sections use the canonical form "<article>.<section>", e.g.
// "Article I, Section 1" normalizes to "I.1".
var constitutionID = regexp.MustCompile(`^[IVXLC]+\.\d+[a-z]?$`)

// normalizeArticleSection joins the article and section submatches into the
// canonical dotted id.
func normalizeArticleSection(match []string) (string, bool) {
	if len(match) < 3 {
		return "", false
	}
	id := strings.ToUpper(match[1]) + "." + match[2]
	if !constitutionID.MatchString(id) {
		return "", false
	}
	return id, true
}

// constitutionAdapter extracts citations from Ohio Constitution text.
var constitutionAdapter = Adapter{
	ID:          Constitution,
	DisplayName: "Ohio Constitution",
	IDShape:     constitutionID,
	Patterns: []Pattern{
		{
			Expr:      regexp.MustCompile(`(?i)amend(?:s|ed|ing)? Article ([IVXLCivxlc]+), Section (\d+[a-z]?)`),
			Kind:      types.KindAmends,
			Normalize: normalizeArticleSection,
		},
		{
			Expr:      regexp.MustCompile(`(?i)Article ([IVXLCivxlc]+), Section (\d+[a-z]?)`),
			Kind:      types.KindCrossReference,
			Normalize: normalizeArticleSection,
		},
	},
}
