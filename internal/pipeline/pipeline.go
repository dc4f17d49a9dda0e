// Package pipeline orchestrates one deduplication run: walk, fingerprint,
// group, decide retention, report, confirm and remove. Phases run strictly
// in that order; nothing persists across runs.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dupeclean/internal/domain"
	"github.com/bft-labs/dupeclean/internal/ports"
	"github.com/bft-labs/dupeclean/internal/remove"
	"github.com/bft-labs/dupeclean/internal/retain"
	"github.com/bft-labs/dupeclean/internal/scan"
)

// Options configures one run.
type Options struct {
	// Root is the directory to scan. Must exist and be a directory.
	Root string

	// Filter restricts candidate files (extensions, size bounds).
	Filter scan.Filter

	// Algorithm computes content digests.
	Algorithm scan.Algorithm

	// BlockSize is the streaming chunk size; default when zero.
	BlockSize int

	// Workers bounds parallel fingerprinting; NumCPU when zero.
	Workers int

	// Policy selects the kept member of each group.
	Policy retain.Policy

	// Remove enables the removal phase. When false the run is scan-and-
	// report only.
	Remove bool

	// Mode picks trash relocation or permanent deletion.
	Mode remove.Mode

	// TrashDir is the trash root for trash mode.
	TrashDir string

	// DryRun reports intended removals without mutating anything.
	DryRun bool

	// Confirmer gates non-dry-run permanent removal. Required in that
	// configuration; its absence aborts the removal phase unmutated.
	Confirmer ports.Confirmer

	// Sinks receive the structured report after grouping. Sink failures
	// are logged, not fatal.
	Sinks []ports.ReportSink

	// Log receives run progress and per-file warnings.
	Log zerolog.Logger
}

// Result is the complete outcome of one run.
type Result struct {
	// Report is the structured duplicate report handed to the sinks.
	Report domain.Report

	// Decisions holds the keep/remove partition of every group.
	Decisions []domain.RetentionDecision

	// Removals holds one entry per processed remove candidate. Empty when
	// the removal phase did not run.
	Removals []domain.RemovalResult

	// RemovalStats counts removal outcomes separately (attempted, trashed,
	// deleted, dry-run, failed).
	RemovalStats domain.RemovalStats
}

// Run executes the pipeline. It returns domain.ErrConfirmationDeclined when
// the operator withholds the destructive confirmation; in that case zero
// mutation has been performed and the report is still populated.
func Run(ctx context.Context, opts Options) (*Result, error) {
	scanner := &scan.Scanner{
		Algorithm: opts.Algorithm,
		BlockSize: opts.BlockSize,
		Workers:   opts.Workers,
		Log:       opts.Log,
	}
	scanRes, err := scanner.Scan(ctx, opts.Root, opts.Filter)
	if err != nil {
		return nil, err
	}

	decisions, err := retain.SelectAll(scanRes.Groups, opts.Policy)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Report:    buildReport(scanRes, decisions, opts.Algorithm.Name),
		Decisions: decisions,
	}

	for _, sink := range opts.Sinks {
		if serr := sink.Write(ctx, res.Report); serr != nil {
			opts.Log.Error().Err(serr).Msg("report sink failed")
		}
	}

	if !opts.Remove {
		return res, nil
	}

	candidates := 0
	for _, d := range decisions {
		candidates += len(d.Remove)
	}

	// Confirmation gate: irreversible deletion of more than zero files
	// needs an explicit affirmative signal before any mutation begins.
	if opts.Mode == remove.ModePermanent && !opts.DryRun && candidates > 0 {
		ok := false
		if opts.Confirmer != nil {
			ok, err = opts.Confirmer.Confirm(ctx, candidates)
			if err != nil {
				return res, fmt.Errorf("confirmation: %w", err)
			}
		}
		if !ok {
			opts.Log.Info().Msg("removal cancelled, nothing was modified")
			return res, domain.ErrConfirmationDeclined
		}
	}

	executor := remove.NewExecutor(opts.Mode, opts.TrashDir, opts.DryRun, opts.Log)
	removals, stats, err := executor.Execute(ctx, decisions)
	res.Removals = removals
	res.RemovalStats = stats
	if err != nil {
		return res, err
	}
	return res, nil
}

func buildReport(scanRes *scan.Result, decisions []domain.RetentionDecision, algorithm string) domain.Report {
	report := domain.Report{
		Root:        scanRes.Root,
		Algorithm:   algorithm,
		GeneratedAt: time.Now(),
		TotalGroups: len(decisions),
		Scan:        scanRes.Stats,
		Groups:      make([]domain.GroupReport, 0, len(decisions)),
	}
	for _, d := range decisions {
		gr := domain.BuildGroupReport(d)
		report.Groups = append(report.Groups, gr)
		report.Duplicates += len(d.Remove)
		report.WastedBytes += gr.Wasted
	}
	return report
}
