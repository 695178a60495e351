package types

// Document classifications produced by the annotator.
const (
	ClassCriminalStatute = "criminal_statute"
	ClassCivilStatute    = "civil_statute"
	ClassDefinitional    = "definitional"
	ClassProcedural      = "procedural"
	ClassOther           = "other"
)

// Enrichment is the rule-based metadata attached to each primary record.
// Every field is independently optional; an absent classification is valid
// output, never an error. Identical input always yields identical enrichment.
type Enrichment struct {
	Summary         string   `json:"summary,omitempty"`          // One-line summary derived from title/id.
	Classification  string   `json:"classification,omitempty"`   // One of the Class constants.
	PracticeAreas   []string `json:"practice_areas,omitempty"`   // Zero or more keyword-derived tags, sorted.
	ComplexityScore int      `json:"complexity_score"`           // Documented formula over words, citations, paragraphs.
	OffenseDegree   string   `json:"offense_degree,omitempty"`   // F1-F5 / M1-M4, criminal documents only.
}
