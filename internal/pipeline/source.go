package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// maxLineBytes bounds a single input line. Statute sections run long but
// never near this; anything larger is scraper output gone wrong.
const maxLineBytes = 16 * 1024 * 1024

// Source streams documents into one corpus build. Next returns ok=false at
// end of stream. Skipped reports how many malformed input records were
// dropped so far; builds never fail on them, they are counted into the
// corpus stats instead.
type Source interface {
	Next() (doc types.Document, ok bool, err error)
	Skipped() int
}

// JSONLSource streams scraper output: one JSON document object per line
// with the fields id, source_url, display_title, and body (ordered
// paragraphs). Lines that do not parse, or parse without an id, are
// skipped and counted.
type JSONLSource struct {
	f        *os.File
	scanner  *bufio.Scanner
	corpusID string
	skipped  int
}

// OpenJSONL opens the document stream at path for the given corpus.
func OpenJSONL(path, corpusID string) (*JSONLSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &JSONLSource{f: f, scanner: scanner, corpusID: corpusID}, nil
}

// Next returns the next well-formed document.
func (s *JSONLSource) Next() (types.Document, bool, error) {
	for s.scanner.Scan() {
		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var doc types.Document
		if err := json.Unmarshal(line, &doc); err != nil {
			s.skipped++
			continue
		}
		if doc.ID == "" {
			s.skipped++
			continue
		}
		if doc.CorpusID == "" {
			doc.CorpusID = s.corpusID
		}
		if doc.WordCount == 0 {
			doc.WordCount = doc.CountWords()
		}
		return doc, true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return types.Document{}, false, fmt.Errorf("reading documents: %w", err)
	}
	return types.Document{}, false, nil
}

// Skipped reports the malformed-record count so far.
func (s *JSONLSource) Skipped() int { return s.skipped }

// Close releases the underlying file.
func (s *JSONLSource) Close() error { return s.f.Close() }

// SliceSource serves documents from memory. Used by tests and callers that
// already hold a corpus.
type SliceSource struct {
	Docs []types.Document
	next int
}

// Next returns the next document in the slice.
func (s *SliceSource) Next() (types.Document, bool, error) {
	if s.next >= len(s.Docs) {
		return types.Document{}, false, nil
	}
	doc := s.Docs[s.next]
	s.next++
	if doc.WordCount == 0 {
		doc.WordCount = doc.CountWords()
	}
	return doc, true, nil
}

// Skipped always reports zero; slices hold no malformed records.
func (s *SliceSource) Skipped() int { return 0 }

// Reset rewinds the source so it can feed another run.
func (s *SliceSource) Reset() { s.next = 0 }
