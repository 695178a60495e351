// Package pipeline orchestrates one corpus build: streaming documents from
// a source, extracting and annotating them on a worker pool, assembling
// the citation graph single-threaded, and committing the five stores in
// checkpointed batches so long builds survive interruption.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IntXgers/lexgraph/internal/annotate"
	"github.com/IntXgers/lexgraph/internal/corpus"
	"github.com/IntXgers/lexgraph/internal/extract"
	"github.com/IntXgers/lexgraph/internal/graph"
	"github.com/IntXgers/lexgraph/internal/sqlite"
	"github.com/IntXgers/lexgraph/pkg/types"
)

// BuilderVersion is stamped into every CorpusStats record.
const BuilderVersion = "0.3.0"

// Builder runs one corpus build end to end. Zero-value optional fields get
// defaults in Run: Logger from slog.Default, Clock from time.Now, BuildID
// a fresh UUID v7.
type Builder struct {
	Adapter corpus.Adapter
	Store   *sqlite.Store
	Config  types.BuildConfig

	Logger  *slog.Logger
	Clock   func() time.Time
	BuildID string
}

// docResult is the per-document output of the parallel stage.
type docResult struct {
	edges      []types.CitationEdge
	failures   int
	enrichment types.Enrichment
}

// Run executes the build. If the store holds a checkpoint from an
// interrupted run, the build resumes: previously committed documents are
// skipped by id and their forward entries reloaded from the citations
// store, so the final state matches an uninterrupted run. A canceled
// context stops the build between batches, leaving a resumable checkpoint.
func (b *Builder) Run(ctx context.Context, src Source) (*types.CorpusStats, error) {
	if err := b.Config.Validate(); err != nil {
		return nil, fmt.Errorf("build config: %w", err)
	}
	if err := b.Adapter.Validate(); err != nil {
		return nil, fmt.Errorf("adapter %s: %w", b.Adapter.ID, err)
	}

	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("corpus", b.Adapter.ID)
	clock := b.Clock
	if clock == nil {
		clock = time.Now
	}
	buildID := b.BuildID
	if buildID == "" {
		buildID = uuid.Must(uuid.NewV7()).String()
	}

	asm := graph.NewAssembler()
	totalDocs := 0
	unknownCitations := 0

	cp, resuming, err := b.Store.LoadCheckpoint()
	if err != nil {
		return nil, err
	}
	if resuming {
		forward, err := b.Store.ForwardEntries()
		if err != nil {
			return nil, fmt.Errorf("reloading forward index: %w", err)
		}
		for id, entry := range forward {
			asm.LoadForward(id, entry)
		}
		totalDocs = cp.DocumentsCommitted
		unknownCitations = cp.UnknownCitations
		buildID = cp.BuildID
		logger.Info("resuming interrupted build",
			"build_id", buildID,
			"last_committed", cp.LastCommittedID,
			"documents_committed", totalDocs)
	} else {
		// Fresh build: replace persisted state wholesale.
		if err := b.Store.Reset(); err != nil {
			return nil, fmt.Errorf("resetting stores: %w", err)
		}
		logger.Info("starting build", "build_id", buildID)
	}

	skipping := resuming
	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("build canceled, checkpoint retained", "documents_committed", totalDocs)
			return nil, err
		}

		batch, err := b.readBatch(src, &skipping, cp)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		results := b.processBatch(batch)

		wb, err := b.Store.Begin()
		if err != nil {
			return nil, err
		}
		for i, doc := range batch {
			res := results[i]
			if err := wb.PutPrimary(types.PrimaryRecord{Document: doc, Enrichment: res.enrichment}); err != nil {
				wb.Rollback()
				return nil, err
			}
			if entry := asm.AddDocument(doc.ID, res.edges); entry != nil {
				if err := wb.PutForward(doc.ID, *entry); err != nil {
					wb.Rollback()
					return nil, err
				}
			}
			unknownCitations += res.failures
		}
		totalDocs += len(batch)

		if err := wb.SaveCheckpoint(types.Checkpoint{
			BuildID:            buildID,
			LastCommittedID:    batch[len(batch)-1].ID,
			DocumentsCommitted: totalDocs,
			UnknownCitations:   unknownCitations,
			SkippedInputLines:  src.Skipped(),
			UpdatedAt:          clock().UTC().Format(time.RFC3339),
		}); err != nil {
			wb.Rollback()
			return nil, err
		}
		if err := wb.Commit(); err != nil {
			return nil, fmt.Errorf("committing batch: %w", err)
		}
		logger.Info("batch committed",
			"batch_size", len(batch),
			"documents_committed", totalDocs,
			"unknown_citations", unknownCitations)
	}

	stats, err := b.finalize(asm, buildID, totalDocs, unknownCitations, src.Skipped(), clock)
	if err != nil {
		return nil, err
	}
	logger.Info("build complete",
		"documents", stats.TotalDocuments,
		"with_outbound", stats.DocumentsWithOutbound,
		"with_inbound", stats.DocumentsWithInbound,
		"complex_chains", stats.ComplexChainCount,
		"unknown_citations", stats.UnknownCitationCount,
		"skipped_input_lines", stats.SkippedInputLines)
	return stats, nil
}

// readBatch pulls up to BatchSize documents, skipping already-committed
// documents when resuming. Skipping ends after the last committed id is
// seen; if the input never yields it, everything is treated as committed
// and the build proceeds straight to finalize.
func (b *Builder) readBatch(src Source, skipping *bool, cp *types.Checkpoint) ([]types.Document, error) {
	var batch []types.Document
	for len(batch) < b.Config.BatchSize {
		doc, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if *skipping {
			if doc.ID == cp.LastCommittedID {
				*skipping = false
			}
			continue
		}
		batch = append(batch, doc)
	}
	return batch, nil
}

// processBatch runs extraction and annotation across the worker pool.
// Document extraction depends only on the document's own text and the
// adapter, so the stage parallelizes freely; results are indexed by input
// position so the assembler sees a deterministic order afterward.
func (b *Builder) processBatch(batch []types.Document) []docResult {
	results := make([]docResult, len(batch))
	sem := make(chan struct{}, b.Config.Workers)
	var wg sync.WaitGroup

	for i := range batch {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			doc := batch[i]
			res := extract.Extract(doc.BodyText(), b.Adapter)
			results[i] = docResult{
				edges:      res.Edges(),
				failures:   res.NormalizeFailures,
				enrichment: annotate.Annotate(doc, len(res.Citations)),
			}
		}(i)
	}
	wg.Wait()
	return results
}

// finalize writes the reverse index, the materialized chains, and the
// corpus stats, then clears the checkpoint, all in one batch. The stats
// record is what marks the build complete for readers.
func (b *Builder) finalize(asm *graph.Assembler, buildID string, totalDocs, unknownCitations, skippedLines int, clock func() time.Time) (*types.CorpusStats, error) {
	reverse := asm.ReverseEntries()
	refs := asm.ForwardRefs()
	detector := graph.NewChainDetector(b.Config)

	fb, err := b.Store.Begin()
	if err != nil {
		return nil, err
	}
	defer fb.Rollback()

	for id, entry := range reverse {
		if err := fb.PutReverse(id, *entry); err != nil {
			return nil, err
		}
	}

	complexChains := 0
	for _, id := range asm.SourceIDs() {
		chain, complex := detector.Detect(id, refs)
		if !complex {
			continue
		}
		chain.CompleteChain, err = b.materialize(chain.ChainSections)
		if err != nil {
			return nil, err
		}
		if err := fb.PutChain(id, chain); err != nil {
			return nil, err
		}
		complexChains++
	}

	stats := types.CorpusStats{
		CorpusID:              b.Adapter.ID,
		TotalDocuments:        totalDocs,
		DocumentsWithOutbound: len(refs),
		DocumentsWithInbound:  len(reverse),
		ComplexChainCount:     complexChains,
		UnknownCitationCount:  unknownCitations,
		SkippedInputLines:     skippedLines,
		BuiltAt:               clock().UTC().Format(time.RFC3339),
		BuilderVersion:        BuilderVersion,
		BuildID:               buildID,
	}
	if err := fb.PutStats(stats); err != nil {
		return nil, err
	}
	if err := fb.ClearCheckpoint(); err != nil {
		return nil, err
	}
	if err := fb.Commit(); err != nil {
		return nil, fmt.Errorf("committing final batch: %w", err)
	}
	return &stats, nil
}

// materialize reads the full bodies for every chain section from the
// primary store. Dangling section ids get no entry; readers treat the
// missing key as expected.
func (b *Builder) materialize(sections []string) (map[string][]string, error) {
	bodies := make(map[string][]string, len(sections))
	for _, id := range sections {
		rec, found, err := b.Store.GetPrimary(id)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		bodies[id] = rec.Body
	}
	return bodies, nil
}
