// Package integration provides CLI integration tests for lexgraph.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// lexgraphBin is the path to the built lexgraph binary.
	lexgraphBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetLexgraphBin sets the path to the lexgraph binary (called from TestMain).
func SetLexgraphBin(path string) {
	lexgraphBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build lexgraph: %v", buildErr)
	}
	if lexgraphBin == "" {
		t.Fatal("lexgraph binary not built (lexgraphBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "data_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// WriteJSONL writes one JSON object per line to a file in the temp dir
// and returns its path. Lines are written verbatim so tests can include
// malformed input.
func (e *TestEnv) WriteJSONL(name string, lines []string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CmdResult holds the result of a lexgraph command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunLexgraph executes the lexgraph CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunLexgraph(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(lexgraphBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run lexgraph: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunLexgraph executes the lexgraph CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunLexgraph(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunLexgraph(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("lexgraph %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// PrimaryRecord mirrors the primary store value for JSON parsing,
// trimmed to the fields the tests assert on.
type PrimaryRecord struct {
	ID         string `json:"id"`
	Enrichment struct {
		Classification string `json:"classification"`
		OffenseDegree  string `json:"offense_degree"`
	} `json:"enrichment"`
}

// ForwardEntry mirrors the citations store value for JSON parsing.
type ForwardEntry struct {
	DirectReferences  []string `json:"direct_references"`
	ReferenceCount    int      `json:"reference_count"`
	ReferencesDetails []struct {
		TargetID         string `json:"target_id"`
		RelationshipKind string `json:"relationship_kind"`
		ContextSnippet   string `json:"context_snippet"`
		ByteOffset       int    `json:"byte_offset"`
	} `json:"references_details"`
}

// ReverseEntry mirrors the reverse_citations store value for JSON parsing.
type ReverseEntry struct {
	CitedBy      []string `json:"cited_by"`
	CitedByCount int      `json:"cited_by_count"`
}

// ChainEntry mirrors the chains store value for JSON parsing.
type ChainEntry struct {
	ChainSections []string            `json:"chain_sections"`
	ChainDepth    int                 `json:"chain_depth"`
	CompleteChain map[string][]string `json:"complete_chain"`
}

// CorpusInfo mirrors the metadata store value for JSON parsing.
type CorpusInfo struct {
	CorpusID              string `json:"corpus_id"`
	TotalDocuments        int    `json:"total_documents"`
	DocumentsWithOutbound int    `json:"documents_with_outbound"`
	DocumentsWithInbound  int    `json:"documents_with_inbound"`
	ComplexChainCount     int    `json:"complex_chain_count"`
	UnknownCitationCount  int    `json:"unknown_citation_count"`
	SkippedInputLines     int    `json:"skipped_input_lines"`
	BuiltAt               string `json:"built_at"`
	BuilderVersion        string `json:"builder_version"`
	BuildID               string `json:"build_id"`
}
