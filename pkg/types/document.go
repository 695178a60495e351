package types

import "strings"

// Document is one legal unit: a statute section, an administrative rule, a
// constitutional section, or a court opinion. Documents are immutable once
// ingested; a rebuild replaces the persisted record wholesale.
type Document struct {
	ID           string   `json:"id"`            // Corpus-specific id, the sole join key across stores.
	CorpusID     string   `json:"corpus_id"`     // Owning corpus (e.g. "revised_code").
	SourceURL    string   `json:"source_url"`    // Where the scraper fetched the document from.
	DisplayTitle string   `json:"display_title"` // Human-readable title.
	Body         []string `json:"body"`          // Ordered paragraphs, never rewritten.
	WordCount    int      `json:"word_count"`    // Whitespace-delimited word count over Body.
}

// BodyText returns the document body joined into one searchable string.
// Paragraphs are separated by a single newline so byte offsets into the
// returned text are stable for a given Body.
func (d Document) BodyText() string {
	return strings.Join(d.Body, "\n")
}

// CountWords returns the whitespace-delimited word count of the body.
func (d Document) CountWords() int {
	n := 0
	for _, p := range d.Body {
		n += len(strings.Fields(p))
	}
	return n
}

// PrimaryRecord is the value stored in the primary store: the document
// together with its rule-based enrichment.
type PrimaryRecord struct {
	Document
	Enrichment Enrichment `json:"enrichment"`
}
