package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/IntXgers/lexgraph/pkg/types"
)

// Store is one corpus's persisted citation graph. It is the sole writer of
// persisted state; the build pipeline owns the commit boundary through
// Begin/Commit batches, and downstream readers do point lookups with Get.
type Store struct {
	mu       sync.RWMutex
	db       *sql.DB
	corpusID string
	path     string
	closed   bool
}

// Open opens (creating if needed) the database for corpusID under dataDir.
// WAL mode lets the query service read while a build is committing.
func Open(dataDir, corpusID string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, corpusID+".db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA synchronous = NORMAL;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configuring %s: %w", path, err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}

	return &Store{db: db, corpusID: corpusID, path: path}, nil
}

// CorpusID returns the corpus this store persists.
func (s *Store) CorpusID() string { return s.corpusID }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Get does a point lookup in the named store. found is false when the key
// is absent, which is a normal outcome, not an error.
func (s *Store) Get(store, key string) (value string, found bool, err error) {
	table, err := tableFor(store)
	if err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, types.ErrStoreClosed
	}

	row := s.db.QueryRow(fmt.Sprintf(`SELECT value FROM %s WHERE key = ?`, table), key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s[%s]: %w", store, key, err)
	}
	return value, true, nil
}

// Keys returns every key in the named store in lexicographic order.
func (s *Store) Keys(store string) ([]string, error) {
	table, err := tableFor(store)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(fmt.Sprintf(`SELECT key FROM %s ORDER BY key`, table))
	if err != nil {
		return nil, fmt.Errorf("listing %s keys: %w", store, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Count returns the number of keys in the named store.
func (s *Store) Count(store string) (int, error) {
	table, err := tableFor(store)
	if err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, types.ErrStoreClosed
	}

	var n int
	err = s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&n)
	return n, err
}

// GetPrimary fetches and decodes one primary record.
func (s *Store) GetPrimary(id string) (*types.PrimaryRecord, bool, error) {
	value, found, err := s.Get(types.StorePrimary, id)
	if err != nil || !found {
		return nil, false, err
	}
	var rec types.PrimaryRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return nil, false, fmt.Errorf("decoding primary[%s]: %w", id, err)
	}
	return &rec, true, nil
}

// GetStats fetches and decodes the corpus stats record. Absence means no
// complete build has finished.
func (s *Store) GetStats() (*types.CorpusStats, bool, error) {
	value, found, err := s.Get(types.StoreMetadata, types.MetadataKey)
	if err != nil || !found {
		return nil, false, err
	}
	var st types.CorpusStats
	if err := json.Unmarshal([]byte(value), &st); err != nil {
		return nil, false, fmt.Errorf("decoding corpus stats: %w", err)
	}
	return &st, true, nil
}

// ForwardEntries loads the entire citations store. Used on resume to
// rebuild the assembler's maps from documents committed before an
// interruption.
func (s *Store) ForwardEntries() (map[string]types.ForwardIndexEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(`SELECT key, value FROM citations`)
	if err != nil {
		return nil, fmt.Errorf("scanning citations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]types.ForwardIndexEntry)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		var entry types.ForwardIndexEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			return nil, fmt.Errorf("decoding citations[%s]: %w", key, err)
		}
		out[key] = entry
	}
	return out, rows.Err()
}

// LoadCheckpoint returns the persisted resume state, if any. A present
// checkpoint always means an interrupted build.
func (s *Store) LoadCheckpoint() (*types.Checkpoint, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, types.ErrStoreClosed
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM checkpoint WHERE id = 1`).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading checkpoint: %w", err)
	}
	var cp types.Checkpoint
	if err := json.Unmarshal([]byte(value), &cp); err != nil {
		return nil, false, fmt.Errorf("decoding checkpoint: %w", err)
	}
	return &cp, true, nil
}

// Reset clears all five stores and the checkpoint. A fresh (non-resumed)
// build starts here so a rebuild replaces persisted state wholesale.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, table := range storeTables {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if _, err := tx.Exec(`DELETE FROM checkpoint`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing checkpoint: %w", err)
	}
	return tx.Commit()
}

// Begin starts a write batch. All writes in a batch become visible
// atomically on Commit, together with the checkpoint update, so readers
// never observe a half-committed batch.
func (s *Store) Begin() (*Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning batch: %w", err)
	}
	return &Batch{tx: tx}, nil
}
