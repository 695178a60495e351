package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Batch is one atomic group of store writes. The pipeline commits one batch
// per document batch (primary + forward rows + checkpoint) and one final
// batch (reverse + chains + stats + checkpoint removal).
type Batch struct {
	tx *sql.Tx
}

// put upserts canonical JSON under key. encoding/json emits struct fields
// in declaration order and map keys sorted, so identical values marshal to
// identical bytes; rebuild idempotence rests on this.
func (b *Batch) put(table, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s[%s]: %w", table, key, err)
	}
	_, err = b.tx.Exec(
		fmt.Sprintf(`INSERT INTO %s (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, table),
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("writing %s[%s]: %w", table, key, err)
	}
	return nil
}

// PutPrimary writes one document with its enrichment.
func (b *Batch) PutPrimary(rec types.PrimaryRecord) error {
	if rec.ID == "" {
		return types.ErrInvalidDocument
	}
	return b.put("primary_docs", rec.ID, rec)
}

// PutForward writes one forward index entry. Callers must not write
// entries for documents without outbound citations; absence is the signal.
func (b *Batch) PutForward(id string, entry types.ForwardIndexEntry) error {
	return b.put("citations", id, entry)
}

// PutReverse writes one reverse index entry.
func (b *Batch) PutReverse(id string, entry types.ReverseIndexEntry) error {
	return b.put("reverse_citations", id, entry)
}

// PutChain writes one materialized chain.
func (b *Batch) PutChain(id string, chain types.Chain) error {
	return b.put("chains", id, chain)
}

// PutStats writes the corpus stats singleton under the corpus_info key.
func (b *Batch) PutStats(stats types.CorpusStats) error {
	return b.put("metadata", types.MetadataKey, stats)
}

// SaveCheckpoint upserts the resume state.
func (b *Batch) SaveCheckpoint(cp types.Checkpoint) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}
	_, err = b.tx.Exec(
		`INSERT INTO checkpoint (id, value) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET value = excluded.value`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	return nil
}

// ClearCheckpoint removes the resume state. Done in the final batch so a
// completed build is distinguishable from an interrupted one.
func (b *Batch) ClearCheckpoint() error {
	if _, err := b.tx.Exec(`DELETE FROM checkpoint`); err != nil {
		return fmt.Errorf("clearing checkpoint: %w", err)
	}
	return nil
}

// Commit makes the batch visible atomically.
func (b *Batch) Commit() error {
	return b.tx.Commit()
}

// Rollback abandons the batch. Safe to call after Commit.
func (b *Batch) Rollback() error {
	err := b.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
