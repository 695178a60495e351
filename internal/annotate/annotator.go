// Package annotate applies deterministic, rule-based metadata to documents:
// a one-line summary, a coarse classification, practice-area tags, a
// complexity score, and an offense degree for criminal material. No
// randomness, no external calls; identical input always yields identical
// enrichment, which rebuild idempotence depends on.
package annotate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// classKeywords maps classifications to the body keywords that vote for
// them. The classification with the most hits wins; ties resolve in the
// order criminal, definitional, procedural, civil. Zero hits yields
// ClassOther.
var classKeywords = []struct {
	class    string
	keywords []string
}{
	{types.ClassCriminalStatute, []string{
		"guilty of", "felony", "misdemeanor", "imprisonment", "convicted",
		"no person shall", "whoever violates",
	}},
	{types.ClassDefinitional, []string{
		"as used in this", "definitions", "means the following", "has the same meaning",
	}},
	{types.ClassProcedural, []string{
		"procedure", "hearing", "petition", "motion", "appeal", "notice shall be",
	}},
	{types.ClassCivilStatute, []string{
		"liable", "damages", "civil action", "cause of action", "injunction",
	}},
}

// practiceAreaKeywords maps practice-area tags to trigger keywords.
var practiceAreaKeywords = map[string][]string{
	"criminal":       {"theft", "offense", "felony", "misdemeanor", "sentence"},
	"health":         {"health", "hospital", "patient", "medical", "sanitary"},
	"tax":            {"tax", "levy", "assessment", "revenue"},
	"motor_vehicles": {"motor vehicle", "driver", "license plate", "highway"},
	"family":         {"marriage", "custody", "divorce", "child support", "adoption"},
	"commercial":     {"contract", "commercial", "merchant", "secured party", "negotiable"},
	"real_property":  {"real property", "deed", "easement", "landlord", "tenant"},
	"employment":     {"employee", "employer", "wages", "workers' compensation"},
	"elections":      {"election", "ballot", "voter", "candidate"},
	"environmental":  {"pollution", "solid waste", "water quality", "emissions"},
}

// offensePattern captures "felony of the third degree" and the misdemeanor
// equivalent, in either word order the codes use.
var offensePattern = regexp.MustCompile(`(?i)(felony|misdemeanor) of the (first|second|third|fourth|fifth) degree`)

// degreeOrdinals maps the spelled-out degree to its numeral.
var degreeOrdinals = map[string]string{
	"first":  "1",
	"second": "2",
	"third":  "3",
	"fourth": "4",
	"fifth":  "5",
}

// Annotate derives the enrichment record for one document. citationCount is
// the number of extracted citation occurrences, which feeds the complexity
// score. Every field of the result is independently optional.
func Annotate(doc types.Document, citationCount int) types.Enrichment {
	body := strings.ToLower(doc.BodyText())

	e := types.Enrichment{
		Summary:         summarize(doc),
		Classification:  classify(body),
		PracticeAreas:   practiceAreas(body),
		ComplexityScore: complexity(doc, citationCount),
	}
	if e.Classification == types.ClassCriminalStatute {
		e.OffenseDegree = offenseDegree(body)
	}
	return e
}

// summarize produces the one-line summary: the display title on a single
// line, falling back to the document id.
func summarize(doc types.Document) string {
	title := strings.Join(strings.Fields(doc.DisplayTitle), " ")
	if title == "" {
		return doc.ID
	}
	return title
}

// classify votes each classification's keywords against the lowercased
// body. Earlier entries win ties.
func classify(body string) string {
	best := types.ClassOther
	bestHits := 0
	for _, c := range classKeywords {
		hits := 0
		for _, kw := range c.keywords {
			if strings.Contains(body, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = c.class
			bestHits = hits
		}
	}
	return best
}

// practiceAreas returns the sorted tags whose keywords appear in the body.
func practiceAreas(body string) []string {
	var tags []string
	for tag, keywords := range practiceAreaKeywords {
		for _, kw := range keywords {
			if strings.Contains(body, kw) {
				tags = append(tags, tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// complexity computes the documented score:
//
//	word_count/250 + 2*citation_count + paragraph_count/10
//
// Longer sections, citation-dense sections, and heavily subdivided
// sections all score higher; the weights keep citation density dominant.
func complexity(doc types.Document, citationCount int) int {
	words := doc.WordCount
	if words == 0 {
		words = doc.CountWords()
	}
	return words/250 + 2*citationCount + len(doc.Body)/10
}

// offenseDegree extracts the offense level from criminal statute text:
// "felony of the third degree" becomes "F3", "misdemeanor of the first
// degree" becomes "M1". The first match in body order wins. Returns ""
// when no degree is stated.
func offenseDegree(body string) string {
	m := offensePattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	prefix := "F"
	if strings.EqualFold(m[1], "misdemeanor") {
		prefix = "M"
	}
	return prefix + degreeOrdinals[strings.ToLower(m[2])]
}
