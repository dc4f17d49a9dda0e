package scan

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// Scanner runs the content-identity phases in order: walk the tree fully,
// fingerprint every candidate, then finalize the duplicate groups. Grouping
// requires total file-set knowledge, so no phase starts consuming before the
// prior one completes.
type Scanner struct {
	// Algorithm computes the content digests.
	Algorithm Algorithm

	// BlockSize is the streaming chunk size; DefaultBlockSize when zero.
	BlockSize int

	// Workers bounds the parallel fingerprint goroutines. Fingerprinting is
	// independent per file; runtime.NumCPU when zero or negative.
	Workers int

	// Log receives per-file warnings.
	Log zerolog.Logger
}

// Result is the outcome of one scan: the finalized duplicate groups and the
// counts of what the walk and fingerprint phases saw.
type Result struct {
	Root   string
	Groups []domain.DigestGroup
	Stats  domain.ScanStats
}

// Scan walks root with the given filter, fingerprints every emitted file and
// returns the finalized duplicate groups. Per-file read failures exclude the
// file and the scan continues; only a bad root or context cancellation
// aborts.
func (s *Scanner) Scan(ctx context.Context, root string, filter Filter) (*Result, error) {
	walker, err := NewWalker(root, filter, s.Log)
	if err != nil {
		return nil, err
	}

	// Phase 1: the walk runs to completion before any hashing starts.
	var records []domain.FileRecord
	if err := walker.Walk(ctx, func(rec domain.FileRecord) {
		records = append(records, rec)
	}); err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	s.Log.Debug().Int("candidates", len(records)).Int("skipped", walker.Skipped()).Msg("walk complete")

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Phase 2: fingerprint in parallel, accumulate into the grouper. The
	// discovery index carried into Add keeps member order deterministic.
	grouper := NewGrouper(s.Algorithm.Name)
	var hashFailed atomic.Int64

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range records {
		i := i
		eg.Go(func() error {
			digest, herr := s.Algorithm.SumFile(gctx, records[i].Path, s.BlockSize)
			if herr != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				hashFailed.Add(1)
				s.Log.Warn().Err(herr).Str("path", records[i].Path).Msg("cannot hash file, excluded from grouping")
				return nil
			}
			rec := records[i]
			rec.Digest = digest
			grouper.Add(i, rec)
			return nil
		})
	}
	// Barrier: no group is closed until every file has been fingerprinted.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		Root:   walker.Root(),
		Groups: grouper.Finalize(),
		Stats: domain.ScanStats{
			Scanned: len(records) - int(hashFailed.Load()),
			Skipped: walker.Skipped(),
			Failed:  walker.Failed() + int(hashFailed.Load()),
		},
	}, nil
}
