// CLI integration tests for lexgraph.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the lexgraph binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "lexgraph-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "lexgraph")
	SetLexgraphBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/lexgraph")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

// revisedCodeLines is a small revised-code corpus: a definitions section,
// a theft section citing it, and an unrelated section.
var revisedCodeLines = []string{
	`{"id":"2913.01","corpus_id":"revised_code","source_url":"https://codes.ohio.gov/orc/2913.01","display_title":"Theft and fraud general definitions","body":["As used in this chapter:","\"Deception\" means knowingly deceiving another."]}`,
	`{"id":"2913.02","corpus_id":"revised_code","source_url":"https://codes.ohio.gov/orc/2913.02","display_title":"Theft","body":["No person shall knowingly obtain property as defined in section 2913.01 of the Revised Code.","Theft is a felony of the fifth degree."]}`,
	`{"id":"9.68","corpus_id":"revised_code","source_url":"https://codes.ohio.gov/orc/9.68","display_title":"Right to bear arms","body":["The individual right to keep and bear arms is a fundamental individual right."]}`,
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunLexgraph("version")
	if !strings.Contains(result.Stdout, "lexgraph v") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}

func TestCorporaListsAdapters(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunLexgraph("corpora")
	for _, id := range []string{"revised_code", "admin_code", "constitution", "case_law"} {
		if !strings.Contains(result.Stdout, id) {
			t.Errorf("corpora output missing %q:\n%s", id, result.Stdout)
		}
	}
}

func TestBuildAndQueryRevisedCode(t *testing.T) {
	env := NewTestEnv(t)
	input := env.WriteJSONL("revised_code.jsonl", revisedCodeLines)

	result := env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)
	if !strings.Contains(result.Stdout, "Built revised_code: 3 documents") {
		t.Errorf("unexpected build output: %q", result.Stdout)
	}

	// The database file lives under the data directory, named by corpus.
	if _, err := os.Stat(filepath.Join(env.DataDir, "revised_code.db")); err != nil {
		t.Fatalf("expected database file: %v", err)
	}

	// Primary store: enriched document record.
	result = env.MustRunLexgraph("get", "primary", "2913.02", "--corpus", "revised_code")
	record := ParseJSON[PrimaryRecord](t, result.Stdout)
	if record.ID != "2913.02" {
		t.Errorf("primary record id = %q, want 2913.02", record.ID)
	}
	if record.Enrichment.Classification != "criminal_statute" {
		t.Errorf("classification = %q, want criminal_statute", record.Enrichment.Classification)
	}
	if record.Enrichment.OffenseDegree != "F5" {
		t.Errorf("offense degree = %q, want F5", record.Enrichment.OffenseDegree)
	}

	// Citations store: 2913.02 cites 2913.01 via a defines relationship.
	result = env.MustRunLexgraph("get", "citations", "2913.02", "--corpus", "revised_code")
	fwd := ParseJSON[ForwardEntry](t, result.Stdout)
	if fwd.ReferenceCount != 1 || len(fwd.DirectReferences) != 1 || fwd.DirectReferences[0] != "2913.01" {
		t.Errorf("unexpected forward entry: %+v", fwd)
	}
	if len(fwd.ReferencesDetails) != 1 || fwd.ReferencesDetails[0].RelationshipKind != "defines" {
		t.Errorf("unexpected references details: %+v", fwd.ReferencesDetails)
	}

	// Reverse store: 2913.01 is cited by 2913.02.
	result = env.MustRunLexgraph("get", "reverse_citations", "2913.01", "--corpus", "revised_code")
	rev := ParseJSON[ReverseEntry](t, result.Stdout)
	if rev.CitedByCount != 1 || len(rev.CitedBy) != 1 || rev.CitedBy[0] != "2913.02" {
		t.Errorf("unexpected reverse entry: %+v", rev)
	}

	// Absence is a signal: 9.68 has no outbound citations, exit code stays 0.
	result = env.MustRunLexgraph("get", "citations", "9.68", "--corpus", "revised_code")
	if !strings.Contains(result.Stdout, "No entry") {
		t.Errorf("expected absence message, got %q", result.Stdout)
	}

	// Metadata store: one corpus_info record.
	result = env.MustRunLexgraph("get", "metadata", "corpus_info", "--corpus", "revised_code")
	info := ParseJSON[CorpusInfo](t, result.Stdout)
	if info.CorpusID != "revised_code" || info.TotalDocuments != 3 {
		t.Errorf("unexpected corpus info: %+v", info)
	}
	if info.DocumentsWithOutbound != 1 || info.DocumentsWithInbound != 1 {
		t.Errorf("unexpected citation totals: %+v", info)
	}
	if info.BuildID == "" || info.BuiltAt == "" {
		t.Errorf("corpus info missing build provenance: %+v", info)
	}
}

func TestStatsAfterBuild(t *testing.T) {
	env := NewTestEnv(t)
	input := env.WriteJSONL("revised_code.jsonl", revisedCodeLines)

	// Before any build, stats reports no completed build.
	result := env.MustRunLexgraph("stats", "--corpus", "revised_code")
	if !strings.Contains(result.Stdout, "no completed build") {
		t.Errorf("expected no-build message, got %q", result.Stdout)
	}

	env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)

	result = env.MustRunLexgraph("stats", "--corpus", "revised_code")
	if !strings.Contains(result.Stdout, "Documents:              3") {
		t.Errorf("unexpected stats output:\n%s", result.Stdout)
	}
}

func TestBuildSkipsMalformedLines(t *testing.T) {
	env := NewTestEnv(t)
	lines := append([]string{}, revisedCodeLines...)
	lines = append(lines, `{not json at all`, `{"corpus_id":"revised_code","body":["missing id"]}`)
	input := env.WriteJSONL("dirty.jsonl", lines)

	result := env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)
	if !strings.Contains(result.Stdout, "2 skipped input lines") {
		t.Errorf("expected skipped-line report, got %q", result.Stdout)
	}

	result = env.MustRunLexgraph("get", "metadata", "corpus_info", "--corpus", "revised_code")
	info := ParseJSON[CorpusInfo](t, result.Stdout)
	if info.TotalDocuments != 3 || info.SkippedInputLines != 2 {
		t.Errorf("unexpected corpus info: %+v", info)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	env := NewTestEnv(t)
	input := env.WriteJSONL("revised_code.jsonl", revisedCodeLines)

	env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)
	first := env.MustRunLexgraph("get", "citations", "2913.02", "--corpus", "revised_code")

	env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)
	second := env.MustRunLexgraph("get", "citations", "2913.02", "--corpus", "revised_code")

	if first.Stdout != second.Stdout {
		t.Errorf("rebuild changed citations value:\nfirst:  %s\nsecond: %s", first.Stdout, second.Stdout)
	}
}

func TestUnknownCorpusFails(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunLexgraph("stats", "--corpus", "klingon_code")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for unknown corpus")
	}
}

func TestUnknownStoreFails(t *testing.T) {
	env := NewTestEnv(t)
	input := env.WriteJSONL("revised_code.jsonl", revisedCodeLines)
	env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)

	result := env.RunLexgraph("get", "sidecars", "2913.01", "--corpus", "revised_code")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for unknown store")
	}
}

func TestCorporaIsolated(t *testing.T) {
	env := NewTestEnv(t)
	input := env.WriteJSONL("revised_code.jsonl", revisedCodeLines)
	env.MustRunLexgraph("build", "--corpus", "revised_code", "--input", input)

	caseLines := []string{
		`{"id":"2020-Ohio-1234","corpus_id":"case_law","display_title":"State v. Example","body":["The court applies R.C. 2913.02 and overrules 2015-Ohio-99."]}`,
		`{"id":"2015-Ohio-99","corpus_id":"case_law","display_title":"State v. Earlier","body":["Earlier holding."]}`,
	}
	caseInput := env.WriteJSONL("case_law.jsonl", caseLines)
	env.MustRunLexgraph("build", "--corpus", "case_law", "--input", caseInput)

	// Each corpus gets its own database file.
	for _, name := range []string{"revised_code.db", "case_law.db"} {
		if _, err := os.Stat(filepath.Join(env.DataDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	// The case-law build does not leak into the revised-code stores.
	result := env.MustRunLexgraph("get", "metadata", "corpus_info", "--corpus", "revised_code")
	info := ParseJSON[CorpusInfo](t, result.Stdout)
	if info.TotalDocuments != 3 {
		t.Errorf("revised_code corpus changed after case_law build: %+v", info)
	}

	// Cross-corpus R.C. references stay inside the case-law graph as edges.
	result = env.MustRunLexgraph("get", "citations", "2020-Ohio-1234", "--corpus", "case_law")
	fwd := ParseJSON[ForwardEntry](t, result.Stdout)
	if fwd.ReferenceCount != 2 {
		t.Errorf("unexpected case-law forward entry: %+v", fwd)
	}
}
