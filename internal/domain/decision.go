package domain

// RetentionDecision is the keep/remove partition of one duplicate group.
// It is computed once per group and never revised: exactly one member is
// kept, every other member appears exactly once in Remove.
type RetentionDecision struct {
	// Group is the finalized group the decision was computed from.
	Group DigestGroup

	// Keep is the single member selected for preservation.
	Keep FileRecord

	// Remove lists the members selected for removal. For the first/last
	// policies the order is discovery order minus the kept member; for
	// oldest/newest it is the mtime-sorted order used during selection.
	Remove []FileRecord
}

// RemovalState is the terminal (or pending) state of one remove candidate.
// Each candidate starts at RemovalPending and moves to exactly one of the
// terminal states; a failed candidate is never retried.
type RemovalState int

const (
	RemovalPending RemovalState = iota
	RemovalTrashed
	RemovalDeleted
	RemovalDryRunNoted
	RemovalFailed
)

// String returns the state name used in logs and reports.
func (s RemovalState) String() string {
	switch s {
	case RemovalPending:
		return "pending"
	case RemovalTrashed:
		return "trashed"
	case RemovalDeleted:
		return "deleted"
	case RemovalDryRunNoted:
		return "dry_run"
	case RemovalFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RemovalResult is the outcome of one remove candidate.
type RemovalResult struct {
	// Path is the candidate's original path.
	Path string

	// State is the terminal state the candidate reached.
	State RemovalState

	// Trash is set when State is RemovalTrashed.
	Trash *TrashEntry

	// Err is set when State is RemovalFailed.
	Err error
}

// RemovalStats counts remove candidates by outcome. The counters are kept
// separate so callers can derive whichever aggregate they need; nothing in
// the core conflates successes with failures.
type RemovalStats struct {
	// Attempted counts every candidate handed to the executor.
	Attempted int

	// Trashed counts candidates relocated into the trash.
	Trashed int

	// Deleted counts candidates permanently deleted.
	Deleted int

	// DryRun counts candidates noted without mutation.
	DryRun int

	// Failed counts candidates whose removal failed; the files are intact.
	Failed int
}

// Succeeded returns the count of candidates whose removal action completed,
// including dry-run notices.
func (s RemovalStats) Succeeded() int {
	return s.Trashed + s.Deleted + s.DryRun
}
