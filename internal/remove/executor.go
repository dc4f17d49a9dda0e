// Package remove performs the removal phase of a deduplication run:
// relocating non-kept duplicates into a trash directory or deleting them
// permanently, with dry-run simulation and per-file failure isolation.
package remove

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/dupeclean/internal/domain"
)

// Mode is the closed set of destructive modes.
type Mode int

const (
	// ModeTrash relocates files into the trash root; the operator can undo
	// by moving them back. The undo window is unbounded.
	ModeTrash Mode = iota

	// ModePermanent deletes files irreversibly, with no rollback.
	ModePermanent
)

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "trash":
		return ModeTrash, nil
	case "permanent":
		return ModePermanent, nil
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownMode, name)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTrash:
		return "trash"
	case ModePermanent:
		return "permanent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Executor carries out retention decisions. Each remove candidate is
// attempted independently: one failure is logged, terminal and never
// retried, and the batch continues with the next candidate.
type Executor struct {
	mode    Mode
	dryRun  bool
	trash   *trashDir
	log     zerolog.Logger
	nowFunc func() time.Time
}

// NewExecutor returns an executor for the given mode. trashRoot is only
// used in trash mode; it is created with owner-only access on first use.
func NewExecutor(mode Mode, trashRoot string, dryRun bool, log zerolog.Logger) *Executor {
	return &Executor{
		mode:    mode,
		dryRun:  dryRun,
		trash:   newTrashDir(trashRoot),
		log:     log,
		nowFunc: time.Now,
	}
}

// Execute processes every remove candidate of every decision, in order.
// The context is checked between candidates, never mid-move. It returns one
// result per candidate plus the separate outcome counters.
func (e *Executor) Execute(ctx context.Context, decisions []domain.RetentionDecision) ([]domain.RemovalResult, domain.RemovalStats, error) {
	var (
		results []domain.RemovalResult
		stats   domain.RemovalStats
	)
	for _, d := range decisions {
		for _, candidate := range d.Remove {
			if err := ctx.Err(); err != nil {
				return results, stats, err
			}
			res := e.removeOne(candidate)
			stats.Attempted++
			switch res.State {
			case domain.RemovalTrashed:
				stats.Trashed++
			case domain.RemovalDeleted:
				stats.Deleted++
			case domain.RemovalDryRunNoted:
				stats.DryRun++
			case domain.RemovalFailed:
				stats.Failed++
			}
			results = append(results, res)
		}
	}
	return results, stats, nil
}

// removeOne drives one candidate through the state machine
// PENDING -> {TRASHED | DELETED | DRY_RUN_NOTED | FAILED}.
func (e *Executor) removeOne(candidate domain.FileRecord) domain.RemovalResult {
	res := domain.RemovalResult{Path: candidate.Path, State: domain.RemovalPending}

	if e.dryRun {
		e.log.Info().Str("path", candidate.Path).Str("mode", e.mode.String()).Msg("dry run: would remove")
		res.State = domain.RemovalDryRunNoted
		return res
	}

	switch e.mode {
	case ModeTrash:
		entry, err := e.trash.relocate(candidate.Path, e.nowFunc())
		if err != nil {
			e.log.Error().Err(err).Str("path", candidate.Path).Msg("trash move failed, file left untouched")
			res.State = domain.RemovalFailed
			res.Err = err
			return res
		}
		e.log.Info().Str("path", candidate.Path).Str("trash", entry.TrashPath).Msg("moved to trash")
		res.State = domain.RemovalTrashed
		res.Trash = &entry
	case ModePermanent:
		if err := deleteFile(candidate.Path); err != nil {
			e.log.Error().Err(err).Str("path", candidate.Path).Msg("delete failed, file left untouched")
			res.State = domain.RemovalFailed
			res.Err = err
			return res
		}
		e.log.Info().Str("path", candidate.Path).Msg("deleted")
		res.State = domain.RemovalDeleted
	default:
		res.State = domain.RemovalFailed
		res.Err = fmt.Errorf("%w: %s", domain.ErrUnknownMode, e.mode)
	}
	return res
}
