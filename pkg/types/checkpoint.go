package types

// Checkpoint is the resume state persisted after every committed batch. A
// completed build clears its checkpoint, so a present checkpoint always
// means an interrupted build. Restarting with a checkpoint skips documents
// up to and including LastCommittedID and continues with the recorded
// aggregates.
type Checkpoint struct {
	BuildID            string `json:"build_id"`            // UUID v7 of the interrupted run.
	LastCommittedID    string `json:"last_committed_id"`   // Final document id of the last committed batch.
	DocumentsCommitted int    `json:"documents_committed"` // Running total of committed documents.
	UnknownCitations   int    `json:"unknown_citations"`   // Running extraction-failure count.
	SkippedInputLines  int    `json:"skipped_input_lines"` // Running malformed-input count.
	UpdatedAt          string `json:"updated_at"`          // RFC 3339 time of the last batch commit.
}
